package commands

import (
	"fmt"

	"github.com/sunwei/docs-playground/helpers"
	"github.com/sunwei/docs-playground/parser/metadecoders"
)

type printCmd struct {
	Format string `short:"f" long:"format" default:"toml" choice:"toml" choice:"yaml" choice:"json" description:"output format"`
	Output string `short:"o" long:"output" description:"write to this file instead of stdout"`

	c *commandeer
}

func (cmd *printCmd) Execute(args []string) error {
	d, err := cmd.c.newDeps()
	if err != nil {
		return err
	}

	format := metadecoders.FormatFromString(cmd.Format)

	if cmd.Output == "" {
		return d.Conf.Marshal(cmd.c.out, format)
	}

	filename := helpers.AbsPathify(d.Fs.WorkingDir, cmd.Output)
	f, err := helpers.OpenFileForWriting(d.Fs.Source, filename)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", filename, err)
	}

	if err := d.Conf.Marshal(f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %q: %w", filename, err)
	}
	d.Log.Info().Printf("Wrote %q", filename)

	return nil
}
