// Command jsrw parses and regenerates JavaScript source.
package main

import (
	"fmt"
	"os"

	"github.com/jsrewrite/jsrw/cmd/jsrw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
