package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Eval  bool
	Diff  bool
	Merge bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SCONF_DEBUG_PARSE")
	d.Eval = boolEnv("SCONF_DEBUG_EVAL")
	d.Diff = boolEnv("SCONF_DEBUG_DIFF")
	d.Merge = boolEnv("SCONF_DEBUG_MERGE")
	d.LSP = boolEnv("SCONF_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
func Merge() bool {
	return d.Merge
}
func LSP() bool {
	return d.LSP
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
