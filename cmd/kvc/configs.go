package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/plistkvc/encode"
	"github.com/signadot/plistkvc/format"
	"github.com/signadot/plistkvc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// format returns the selected format, or nil to detect input and write
// JSON.
func (cfg *MainConfig) format() *format.Format {
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	default:
		return nil
	}
	return &f
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if f := cfg.format(); f != nil {
		return []parse.ParseOption{parse.ParseFormat(*f)}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if f := cfg.format(); f != nil {
		res = append(res, encode.EncodeFormat(*f))
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colors reports whether output to w is colored: always with -color, never
// with -color=false, otherwise when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type SplitConfig struct {
	*MainConfig

	Split *cli.Command
}

type JoinConfig struct {
	*MainConfig

	Join *cli.Command
}

type GetConfig struct {
	*MainConfig
	Where string `cli:"name=where aliases=w desc='keep array elements for which expr is true'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d aliases=diff desc='print a diff instead of the result'"`
	Write bool `cli:"name=w desc='write the result back to each file'"`
	Add   bool `cli:"name=add desc='insert into arrays instead of replacing'"`

	Set *cli.Command
}

type RmConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d aliases=diff desc='print a diff instead of the result'"`
	Write bool `cli:"name=w desc='write the result back to each file'"`

	Rm *cli.Command
}
