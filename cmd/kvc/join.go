package main

import (
	"fmt"
	"strings"

	"github.com/signadot/plistkvc/kvcpath"

	"github.com/scott-cotton/cli"
)

func join(cfg *JoinConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Join.Parse(cc, args)
	if err != nil {
		cfg.Join.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: join requires at least one component", cli.ErrUsage)
	}
	cs := make([]kvcpath.Component, len(args))
	for i, arg := range args {
		cs[i] = componentArg(arg)
	}
	_, err = fmt.Fprintln(cc.Out, kvcpath.Join(cs...))
	return err
}

// componentArg reads "[i]" as an index, "@op" as an operator and anything
// else as a key.
func componentArg(arg string) kvcpath.Component {
	switch {
	case strings.HasPrefix(arg, "["):
		return kvcpath.Index(strings.TrimSuffix(arg[1:], "]"))
	case strings.HasPrefix(arg, "@") && len(arg) > 1:
		return kvcpath.Operator(arg)
	default:
		return kvcpath.Key(arg)
	}
}
