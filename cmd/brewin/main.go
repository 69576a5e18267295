// Command brewin runs the Brewin interpreter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/brewinlang/brewin/cmd/brewin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
