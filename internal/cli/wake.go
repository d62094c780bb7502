package cli

import (
	"fmt"
	"time"

	"github.com/hardchor/snoozr/internal/presets"
	"github.com/hardchor/snoozr/internal/scheduler"
)

type WakeCmd struct {
	ID string `arg:"" help:"Preset ID, e.g. tonight or next_week."`
	At string `help:"Reference instant (RFC3339); defaults to now."`
}

func (c *WakeCmd) Run(ctx *Context) error {
	at, err := parseAt(c.At)
	if err != nil {
		return err
	}

	list := ctx.Presets.Load()
	preset, ok := presets.Find(list, c.ID)
	if !ok {
		return fmt.Errorf("unknown preset: %s", c.ID)
	}

	settings := ctx.Settings()
	wake := scheduler.WakeTime(preset, settings, at)

	fmt.Printf("%s\n", scheduler.RenderTitle(preset, settings, at))
	fmt.Printf("Wakes at: %s\n", wake.Format(time.RFC1123))

	return nil
}
