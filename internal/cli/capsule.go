package cli

import "fmt"

type CapsuleSaveCmd struct {
	Message string `arg:"" help:"Message to your future self."`
	Unlock  string `short:"u" help:"Unlock date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *CapsuleSaveCmd) Run(ctx *Context) error {
	unlock, err := resolveDate(c.Unlock)
	if err != nil {
		return err
	}

	if err := ctx.Capsule.Save(unlock, c.Message); err != nil {
		return err
	}

	fmt.Printf("Time capsule saved! (check %s)\n", ctx.Capsule.Path())
	return nil
}
