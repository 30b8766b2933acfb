package main

import (
	"flag"
	"fmt"
	"os"
)

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	pretty := fs.Bool("pretty", false, "Indent JSON output")
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: atlas status [-pretty] <analysis-id>")
		os.Exit(1)
	}

	_, c := setup()
	ctx, cancel := signalContext()
	defer cancel()

	status, err := c.FetchStatus(ctx, fs.Arg(0))
	if err != nil {
		fatalf("%v", err)
	}
	printJSON(status, *pretty)
}

func runHealth() {
	fs := flag.NewFlagSet("health", flag.ExitOnError)
	fs.Parse(os.Args[1:])

	cfg, c := setup()
	ctx, cancel := signalContext()
	defer cancel()

	if _, err := c.Health(ctx); err != nil {
		fatalf("%s: %v", cfg.BaseURL, err)
	}
	fmt.Printf("%s: ok\n", cfg.BaseURL)
}
