package cli

import "fmt"

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.Presets.Reset(); err != nil {
		return fmt.Errorf("failed to reset presets: %w", err)
	}
	fmt.Println("Presets restored to defaults.")
	return nil
}
