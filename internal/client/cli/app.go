// Package cli implements the interactive locshare client. It is a small
// REPL over the HTTP API: read a command, call the server, print the result.
package cli

import (
	"bufio"
	"context"
	"os"

	"locshare/internal/client/api"
	"locshare/internal/client/config"
)

type App struct {
	config *config.Config
	client *api.Client
	user   *api.User
	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerURL),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.client.HasToken()
}

func (a *App) showLogin() string {
	if a.user == nil {
		return "not logged in"
	}
	return a.user.Login
}

func (a *App) Run(ctx context.Context) {
	printlnFn("locshare CLI (type 'help' for commands)")
	runREPL(ctx, a, a.showLogin, bufio.NewScanner(os.Stdin))
}
