// Command complabel labels the 4-connected components of a random image,
// once depth-first and once breadth-first, and prints both results.
//
// Exit status is 0 on success, 130 when interrupted (SIGINT, SIGTERM, or
// ctrl+c at the prompt) and 1 on any other error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/complabel/internal/cli"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line against out and errOut and maps the
// outcome to an exit status.
func execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := cli.New(errOut, cli.LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled), errors.Is(err, cli.ErrPromptAborted):
		return exitInterrupted
	}
	fmt.Fprintf(errOut, "complabel: %v\n", err)

	return exitFailure
}
