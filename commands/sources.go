package commands

import "fmt"

type sourcesCmd struct {
	DocNames bool `long:"docnames" description:"print document names instead of paths"`

	c *commandeer
}

func (cmd *sourcesCmd) Execute(args []string) error {
	d, err := cmd.c.newDeps()
	if err != nil {
		return err
	}

	files, err := d.SourceFiles()
	if err != nil {
		return err
	}

	for _, f := range files {
		if cmd.DocNames {
			fmt.Fprintln(cmd.c.out, f.DocName())
		} else {
			fmt.Fprintln(cmd.c.out, f.Path())
		}
	}

	return nil
}
