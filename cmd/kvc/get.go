package main

import (
	"fmt"

	"github.com/signadot/plistkvc/encode"
	"github.com/signadot/plistkvc/eval"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	path := args[0]
	if cfg.Where != "" {
		if _, err := eval.Compile(cfg.Where); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for _, file := range files(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := doc.Get(path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		if cfg.Where != "" {
			res, err = eval.Filter(res, cfg.Where)
			if err != nil {
				return fmt.Errorf("error filtering %s from %s: %w", path, file, err)
			}
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
