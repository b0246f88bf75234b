package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Serve Serve `embed:""`
}

func main() {
	var cli CLI

	kong.Parse(&cli,
		kong.Name("filterwatch"),
		kong.Description("Monitors a host's reachability and withdraws its route advertisement via a device prefix-list while it is down."),
	)

	err := serve(&cli)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "filterwatch:", err)
		os.Exit(1)
	}
}
