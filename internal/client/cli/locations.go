package cli

import (
	"context"
	"fmt"
	"os"

	"locshare/internal/client/api"
)

func printLocations(prefix string, locations []api.Location) {
	for _, l := range locations {
		printlnFn(fmt.Sprintf("%s[%d] %s %s", prefix, l.ID, l.Name, l.Address))
	}
}

func (a *App) List(ctx context.Context) error {
	visible, err := a.client.Locations(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printLocations("owned ", visible.Owned)
	printLocations("admin ", visible.Admin)
	printLocations("read  ", visible.Read)
	return nil
}

func (a *App) AddLocation(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter location name", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	address, err := GetSimpleText(a.reader, "Enter address", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	location, err := a.client.AddLocation(ctx, name, address)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Added [%d] %s", location.ID, location.Name))
	return nil
}

func (a *App) Members(ctx context.Context) error {

	locationID, err := GetID(a.reader, "Enter location id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	members, err := a.client.LocationMembers(ctx, locationID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(members) == 0 {
		printlnFn("No other users on this location")
		return nil
	}
	for _, m := range members {
		printlnFn(fmt.Sprintf("[%d] %s (%s)", m.ID, m.Name, m.Login))
	}
	return nil
}

func (a *App) DeleteLocation(ctx context.Context) error {

	locationID, err := GetID(a.reader, "Enter location id to delete", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.client.DeleteLocation(ctx, locationID); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Deleted")
	return nil
}
