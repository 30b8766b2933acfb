package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/atlas/internal/client"
	"golang.org/x/sync/errgroup"
)

func runReport() {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	pretty := fs.Bool("pretty", false, "Indent JSON output")
	fs.Parse(os.Args[1:])

	ids := fs.Args()
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "usage: atlas report [-pretty] <analysis-id> [analysis-id...]")
		os.Exit(1)
	}

	_, c := setup()
	ctx, cancel := signalContext()
	defer cancel()

	reports := make([]client.Payload, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			p, err := c.FetchReport(ctx, id)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			reports[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fatalf("%v", err)
	}

	if len(reports) == 1 {
		printJSON(reports[0], *pretty)
		return
	}
	printJSON(reports, *pretty)
}
