package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "kvc").
		WithSynopsis("kvc [opts] command [opts]").
		WithDescription("kvc reads and edits property list style documents with key-value coding paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kvcMain(cfg, cc, args)
		}).
		WithSubs(
			SplitCommand(cfg),
			JoinCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			RmCommand(cfg))
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithAliases("sp").
		WithSynopsis("split <path>...").
		WithDescription("print the components of key paths, one per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
}

func JoinCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JoinConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Join, "join").
		WithAliases("j").
		WithSynopsis("join <component>...").
		WithDescription(joinDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return join(cfg, cc, args)
		})
}

const joinDescription = `join composes a key path from components.

Arguments of the form [i] are indices, arguments starting with @ are
operators and anything else is a key. Keys are escaped as needed, so

  kvc join a.b '[0]' @count

prints a\.b[0]@count.`

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-where expr] <path> [files]").
		WithDescription(getDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

const getDescription = `get prints what a key path addresses in each file, or stdin.

A key applied to an array collects that key from every element. Operators
aggregate arrays: @count, @sum, @avg, @min, @max, @unionOfObjects and
@distinctUnionOfObjects.

-where filters an array result with a boolean expression evaluated against
each element. Object fields are variables and the element itself is 'it':

  kvc get -where 'price > 2' items plist.json`

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-d] [-w] [-add] <path> <value> [files]").
		WithDescription("set the value at a key path; the value is read as YAML or JSON").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Rm, "rm").
		WithAliases("remove", "del").
		WithSynopsis("rm [-d] [-w] <path> [files]").
		WithDescription("remove what a key path addresses").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
}
