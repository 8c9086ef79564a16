package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) Candidates(ctx context.Context) error {

	targetID, err := GetID(a.reader, "Enter target user id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	candidates, err := a.client.ShareCandidates(ctx, targetID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(candidates) == 0 {
		printlnFn("Nothing to share with this user")
		return nil
	}
	printLocations("", candidates)
	return nil
}

func (a *App) Share(ctx context.Context) error {

	locationID, err := GetID(a.reader, "Enter location id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	targetID, err := GetID(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	level, err := GetSimpleText(a.reader, "Enter level (ADMIN or READ)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	access, err := a.client.Share(ctx, locationID, targetID, strings.ToUpper(level))
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Shared location %d with user %d as %s", access.LocationID, access.UserID, access.Level))
	return nil
}

func (a *App) ChangeAccess(ctx context.Context) error {

	locationID, err := GetID(a.reader, "Enter location id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	targetID, err := GetID(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	access, err := a.client.ChangeAccess(ctx, locationID, targetID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("User %d now has %s on location %d", access.UserID, access.Level, access.LocationID))
	return nil
}
