package main

import (
	"fmt"
	"os"

	"github.com/pathq/pathq/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if cli.GetExitCode(err) == cli.ExitCommandError {
			// Command errors already printed through the formatter.
			os.Exit(cli.ExitCommandError)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
