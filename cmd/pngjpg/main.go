// Command pngjpg converts a static site's PNG images to JPEG and rewrites
// the references to them in the site's text files.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "1.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and maps its outcome to an exit code:
// 0 on completion (per-file failures included), 1 on invalid settings or a
// missing blog layout.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "pngjpg: %v\n", err)
		}
		return 1
	}
	return 0
}
