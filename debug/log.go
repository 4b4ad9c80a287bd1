package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var logOut io.Writer = os.Stderr

// Logf writes a diagnostic line to stderr. Maps, slices and json.Number
// arguments are rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(logOut, msg, args...)
}
