package cli

import (
	"errors"
	"fmt"

	"github.com/hardchor/snoozr/internal/keyring"
	"github.com/hardchor/snoozr/internal/storage/postgres"
)

type ConfigCmd struct {
	SetConnectionString    SetConnectionStringCmd    `cmd:"" name:"set-connection-string" help:"Store the PostgreSQL connection string in the OS keyring."`
	DeleteConnectionString DeleteConnectionStringCmd `cmd:"" name:"delete-connection-string" help:"Remove the stored PostgreSQL connection string."`
}

type SetConnectionStringCmd struct {
	ConnString string `arg:"" help:"PostgreSQL connection string (credentials allowed here; they go to the keyring, not disk)."`
}

func (c *SetConnectionStringCmd) Run(ctx *Context) error {
	if _, err := postgres.ValidateConnString(c.ConnString); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return err
	}
	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type DeleteConnectionStringCmd struct{}

func (c *DeleteConnectionStringCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
