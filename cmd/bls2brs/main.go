// Command bls2brs converts Blockland saves to Brickadia saves.
//
// Saves can be passed as arguments or dropped onto the executable; see
// internal/cli for the commands and flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/bls2brs/internal/cli"
	bserrors "github.com/matzehuels/bls2brs/pkg/errors"
)

// Exit statuses.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130 // 128 + SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the command line and maps its outcome to an exit status.
// Errors go to stderr unless the command already showed them, as
// convert --pause does before waiting for Enter.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	c := cli.New(stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case cli.Reported(err):
		return exitFailure
	}
	fmt.Fprintln(stderr, bserrors.UserMessage(err))
	return exitFailure
}
