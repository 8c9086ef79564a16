package cli

import (
	"context"
	"os"
	"strings"
)

func (a *App) DeleteAccount(ctx context.Context) error {

	confirm, err := GetSimpleText(a.reader, "Delete your account? Locations you own must be deleted first. (yes/no)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if strings.ToLower(confirm) != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.client.DeleteAccount(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}

	a.user = nil
	printlnFn("Account deleted")
	return nil
}
