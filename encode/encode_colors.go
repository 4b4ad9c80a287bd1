package encode

import (
	"github.com/signadot/plistkvc/ir"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	KeyColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type Colors struct {
	Map map[Colorable]func(string, ...any) string
}

// NewColors returns the default palette. The palette is enabled even when
// stdout is not a terminal; callers decide whether to use it.
func NewColors() *Colors {
	colors := &Colors{Map: map[Colorable]func(string, ...any) string{}}
	set := func(able Colorable, c *color.Color) {
		c.EnableColor()
		colors.Map[able] = c.SprintfFunc()
	}
	set(Colorable{Type: ir.StringType, Attr: KeyColor}, color.RGB(74, 92, 138))
	set(Colorable{Type: ir.StringType, Attr: ValueColor}, color.RGB(8, 196, 16))
	set(Colorable{Type: ir.NumberType, Attr: ValueColor}, color.RGB(128, 216, 236))
	set(Colorable{Type: ir.BoolType, Attr: ValueColor}, color.RGB(196, 96, 16))
	set(Colorable{Type: ir.NullType, Attr: ValueColor}, color.RGB(168, 0, 196))
	return colors
}

// Color renders s in the color for able, or leaves it unchanged.
func (c *Colors) Color(able Colorable, s string) string {
	f := c.Map[able]
	if f == nil {
		return s
	}
	return f("%s", s)
}
