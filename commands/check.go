package commands

import "fmt"

type checkCmd struct {
	c *commandeer
}

func (cmd *checkCmd) Execute(args []string) error {
	d, err := cmd.c.newDeps()
	if err != nil {
		return err
	}

	source := "built-in settings"
	if len(d.ConfigFiles) > 0 {
		source = d.ConfigFiles[0]
	}
	fmt.Fprintf(cmd.c.out, "%s: OK (project %q, theme %q)\n", source, d.Conf.Project, d.Conf.HTMLTheme)

	return nil
}
