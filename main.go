// f is a front end for fd(1) with friendlier defaults.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jparise/f/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "f:", err)
			os.Exit(1)
		}
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "f:", exitErr.Err)
		}
		os.Exit(exitErr.Code)
	}
}
