// Command shatter breaks the top of an image into displaced, depth-shaded
// blocks.
//
// Usage:
//
//	shatter render photo.png -o out.png --seed 42
//	shatter render photo.png -o out.svg
//	shatter animate photo.png -o out.gif --frames 30 --easing out-bounce
//	shatter text hello -o hello.png
//	shatter palette photo.png
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/shatter/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
