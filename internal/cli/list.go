package cli

import (
	"fmt"

	"github.com/hardchor/snoozr/internal/scheduler"
)

type ListCmd struct {
	At string `help:"Reference instant (RFC3339) for live wording; defaults to now."`
}

func (c *ListCmd) Run(ctx *Context) error {
	at, err := parseAt(c.At)
	if err != nil {
		return err
	}

	settings := ctx.Settings()
	list := ctx.Presets.Load()
	if len(list) == 0 {
		fmt.Println("No presets configured.")
		return nil
	}

	for _, p := range list {
		title := scheduler.RenderTitle(p, settings, at)
		fmt.Printf("%-14s %s\n", p.ID, title)
	}

	return nil
}
