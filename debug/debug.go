package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Pointer bool
	Patch   bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("OV_DEBUG_PARSE")
	d.Encode = boolEnv("OV_DEBUG_ENCODE")
	d.Pointer = boolEnv("OV_DEBUG_POINTER")
	d.Patch = boolEnv("OV_DEBUG_PATCH")
	d.Eval = boolEnv("OV_DEBUG_EVAL")
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

// Encode enables encoder tracing and turns encoder size mismatches into
// panics.
func Encode() bool {
	return d.Encode
}
func Pointer() bool {
	return d.Pointer
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

// SetParse overrides the OV_DEBUG_PARSE setting, for tests.
func SetParse(v bool) {
	d.Parse = v
}

// SetEncode overrides the OV_DEBUG_ENCODE setting, for tests.
func SetEncode(v bool) {
	d.Encode = v
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
