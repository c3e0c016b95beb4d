package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Compile bool
	Merge   bool
	Bind    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("D_DEBUG_PARSE")
	d.Compile = boolEnv("D_DEBUG_COMPILE")
	d.Merge = boolEnv("D_DEBUG_MERGE")
	d.Bind = boolEnv("D_DEBUG_BIND")
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
func Compile() bool {
	return d.Compile
}
func Merge() bool {
	return d.Merge
}
func Bind() bool {
	return d.Bind
}
