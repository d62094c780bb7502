package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/hardchor/snoozr/internal/cli"
	"github.com/hardchor/snoozr/internal/constants"
	"github.com/hardchor/snoozr/internal/errors"
	"github.com/hardchor/snoozr/internal/logger"
	"github.com/hardchor/snoozr/internal/presets"
	"github.com/hardchor/snoozr/internal/storage"
	"github.com/hardchor/snoozr/internal/storage/postgres"
	"github.com/hardchor/snoozr/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path or PostgreSQL connection string. Credentials must NOT be embedded in a connection string; use SNOOZR_DB_CONNECTION or the OS keyring instead." default:"~/.config/snoozr/snoozr.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize snoozr storage."`
	List     cli.ListCmd     `cmd:"" help:"List presets with their rendered titles." default:"1"`
	Wake     cli.WakeCmd     `cmd:"" help:"Compute the wake time for a preset."`
	Reset    cli.ResetCmd    `cmd:"" help:"Restore the default preset catalog."`
	Settings cli.SettingsCmd `cmd:"" help:"View or update schedule settings."`
	ConfigCmd cli.ConfigCmd `cmd:"" name:"config" help:"Manage stored database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Tab snoozing schedule engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	// "--config postgres" resolves the connection string from the
	// environment or the OS keyring instead of the command line.
	// Resolved strings may carry credentials; command-line ones may not.
	resolved := false
	if configPath == "postgres" {
		connStr, err := postgres.ResolveConnString("")
		if err != nil {
			errors.Fatal(err)
		}
		configPath = connStr
		resolved = true
	}

	var store storage.Provider
	if strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://") {
		if !resolved {
			if _, err := postgres.ValidateConnString(configPath); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				fmt.Fprintf(os.Stderr, "       Store credentials with 'snoozr config set-connection-string' or the SNOOZR_DB_CONNECTION environment variable.\n")
				os.Exit(1)
			}
		}
		store = postgres.New(configPath)
	} else if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = sqlite.NewStore(configPath)
	}

	logDir := filepath.Dir(configPath)
	if strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://") {
		logDir = expandHome(filepath.Dir(constants.DefaultConfigPath))
	}
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: logDir,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:   store,
		Presets: presets.NewService(store),
	}

	// Init handles its own lifecycle and config only touches the keyring;
	// everything else needs a loaded store.
	command := ctx.Command()
	if !strings.HasPrefix(command, "init") && !strings.HasPrefix(command, "config") {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err := ctx.Run(appCtx)
	_ = store.Close()
	errors.Fatal(err)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
