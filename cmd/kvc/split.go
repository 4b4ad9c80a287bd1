package main

import (
	"fmt"

	"github.com/signadot/plistkvc/kvcpath"

	"github.com/scott-cotton/cli"
)

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		cfg.Split.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: split requires at least one path", cli.ErrUsage)
	}
	for i, path := range args {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		for _, c := range kvcpath.Split(path) {
			if _, err := fmt.Fprintln(cc.Out, componentLine(c)); err != nil {
				return err
			}
		}
	}
	return nil
}

func componentLine(c kvcpath.Component) string {
	kind := c.Kind.String()
	if c.Operator {
		kind = "operator"
	}
	return kind + "\t" + c.Text
}
