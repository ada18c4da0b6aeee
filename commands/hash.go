package commands

import "fmt"

type hashCmd struct {
	c *commandeer
}

func (cmd *hashCmd) Execute(args []string) error {
	d, err := cmd.c.newDeps()
	if err != nil {
		return err
	}

	h, err := d.Conf.Hash()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.c.out, "%016x\n", h)

	return nil
}
