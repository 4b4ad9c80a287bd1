package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Write renders lines with +, - and space prefixes. With colors, inserted
// lines are green and deleted lines red regardless of the terminal.
func Write(w io.Writer, lines []Line, colors bool) error {
	paint := map[Op]func(string, ...any) string{}
	if colors {
		ins := color.New(color.FgGreen)
		ins.EnableColor()
		del := color.New(color.FgRed)
		del.EnableColor()
		paint[Insert] = ins.SprintfFunc()
		paint[Delete] = del.SprintfFunc()
	}
	for i := range lines {
		line := &lines[i]
		s := line.Op.Prefix() + line.Text
		if f := paint[line.Op]; f != nil {
			s = f("%s", s)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
