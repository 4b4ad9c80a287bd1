package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/plistkvc/edit"
	"github.com/signadot/plistkvc/encode"
	"github.com/signadot/plistkvc/format"
	"github.com/signadot/plistkvc/ir"
	"github.com/signadot/plistkvc/kvcpath"
	"github.com/signadot/plistkvc/libdiff"
	"github.com/signadot/plistkvc/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a key path and a value", cli.ErrUsage)
	}
	val, err := parse.Value(args[1])
	if err != nil {
		return fmt.Errorf("%w: bad value %q: %w", cli.ErrUsage, args[1], err)
	}
	op := edit.Op{Kind: setKind(args[0], cfg.Add), Path: args[0], Value: val}
	ed := &editor{MainConfig: cfg.MainConfig, diff: cfg.Diff, write: cfg.Write}
	return ed.run(cc, args[2:], op)
}

// setKind replaces array elements unless adding; object keys are added,
// which replaces existing ones.
func setKind(path string, add bool) edit.Kind {
	if add {
		return edit.Add
	}
	last, ok := kvcpath.Split(path).Last()
	if ok && last.Kind == kvcpath.IndexKind && last.Text != "-" {
		return edit.Replace
	}
	return edit.Add
}

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires a key path", cli.ErrUsage)
	}
	ed := &editor{MainConfig: cfg.MainConfig, diff: cfg.Diff, write: cfg.Write}
	return ed.run(cc, args[1:], edit.Op{Kind: edit.Remove, Path: args[0]})
}

type editor struct {
	*MainConfig
	diff  bool
	write bool
}

func (ed *editor) run(cc *cli.Context, args []string, ops ...edit.Op) error {
	for _, op := range ops {
		if kvcpath.Split(op.Path).HasOperator() {
			return fmt.Errorf("%w: %w: %q", cli.ErrUsage, edit.ErrOperatorPath, op.Path)
		}
	}
	for _, file := range files(args) {
		if ed.write && file == "-" {
			return fmt.Errorf("%w: -w needs file arguments", cli.ErrUsage)
		}
		if err := ed.file(cc, file, ops); err != nil {
			return err
		}
	}
	return nil
}

func (ed *editor) file(cc *cli.Context, file string, ops []edit.Op) error {
	d, err := readObjFile(cc, file)
	if err != nil {
		return err
	}
	fmat := parse.Detect(d)
	if f := ed.format(); f != nil {
		fmat = *f
	}
	doc, err := parse.Parse(d, parse.ParseFormat(fmat))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	res, err := edit.Apply(doc, ops...)
	if err != nil {
		return fmt.Errorf("error editing %s: %w", file, err)
	}
	if ed.write {
		out, err := encodeString(res, fmat)
		if err != nil {
			return err
		}
		if err := os.WriteFile(file, []byte(out), 0644); err != nil {
			return err
		}
		theLog.Info("wrote", "file", file)
	}
	if ed.diff {
		return ed.printDiff(cc, doc, res, fmat)
	}
	if ed.write {
		return nil
	}
	if err := encode.Encode(res, cc.Out, ed.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func (ed *editor) printDiff(cc *cli.Context, from, to *ir.Node, fmat format.Format) error {
	a, err := encodeString(from, fmat)
	if err != nil {
		return err
	}
	b, err := encodeString(to, fmat)
	if err != nil {
		return err
	}
	return libdiff.Write(cc.Out, libdiff.Lines(a, b), ed.colors(cc.Out))
}

func encodeString(node *ir.Node, fmat format.Format) (string, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, encode.EncodeFormat(fmat)); err != nil {
		return "", fmt.Errorf("error encoding result: %w", err)
	}
	return buf.String(), nil
}
