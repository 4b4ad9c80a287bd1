package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk  bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("KVC_DEBUG_WALK")
	d.Patch = boolEnv("KVC_DEBUG_PATCH")
	d.Eval = boolEnv("KVC_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Walk reports whether document walks should be traced.
func Walk() bool {
	return d.Walk
}

func Patch() bool {
	return d.Patch
}

func Eval() bool {
	return d.Eval
}
