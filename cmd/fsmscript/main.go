package main

import (
	"fmt"
	"os"

	"github.com/brenns10/fsm/internal/flog"
)

func main() {
	if len(os.Args) != 2 {
		flog.Fatalf("usage: fsmscript <script-file>")
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		flog.Fatalf("reading %s: %v", os.Args[1], err)
	}
	script, err := Parse(string(data))
	if err != nil {
		flog.Fatalf("parsing %s: %v", os.Args[1], err)
	}
	env := NewEnv(func(format string, args ...interface{}) {
		fmt.Printf(format, args...)
	})
	if err := env.Run(script); err != nil {
		flog.Fatalf("%v", err)
	}
}
