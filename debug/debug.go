package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Find  bool
	Merge bool
	RPC   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Find = boolEnv("MJ_DEBUG_FIND")
	d.Merge = boolEnv("MJ_DEBUG_MERGE")
	d.RPC = boolEnv("MJ_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Find() bool {
	return d.Find
}
func Merge() bool {
	return d.Merge
}
func RPC() bool {
	return d.RPC
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
