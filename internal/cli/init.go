package cli

import (
	"fmt"
	"os"
)

type InitCmd struct{}

// Run creates the data directory and ensures both log tables exist. Safe to
// run repeatedly; an existing database is left untouched.
func (c *InitCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if existed {
		fmt.Printf("Storage already initialized at: %s\n", path)
	} else {
		fmt.Printf("Initialized trackit storage at: %s\n", path)
		fmt.Printf("Time capsule log: %s\n", ctx.Capsule.Path())
	}
	fmt.Println("Log your first entry with 'trackit habit log' or launch 'trackit tui'.")
	return nil
}
