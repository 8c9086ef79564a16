package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Register(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	login, err := GetSimpleText(a.reader, "Enter login", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := a.client.Register(ctx, name, login, password)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Registered %s (id=%d). Use 'login' to sign in.", user.Login, user.ID))
	return nil
}

func (a *App) Login(ctx context.Context) error {

	login, err := GetSimpleText(a.reader, "Enter login", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := a.client.Login(ctx, login, password)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	a.user = user
	printlnFn("Success!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.SetToken("")
	a.user = nil
	printlnFn("Logged out")
	return nil
}
