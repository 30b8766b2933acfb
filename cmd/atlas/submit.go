package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/atlas/internal/client"
	"github.com/abelbrown/atlas/internal/input"
	"github.com/abelbrown/atlas/internal/logging"
	"golang.org/x/sync/errgroup"
)

func runSubmit() {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	subject := fs.String("subject", "", "Override the subject_id of every request")
	pretty := fs.Bool("pretty", false, "Indent JSON output")
	fs.Parse(os.Args[1:])

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: atlas submit [-subject id] [-pretty] <file> [file...]")
		os.Exit(1)
	}

	// Validate every file before sending anything.
	reqs := make([]client.AnalysisRequest, len(files))
	for i, path := range files {
		req, err := input.Load(path, input.WithSubject(*subject))
		if err != nil {
			fatalf("%v", err)
		}
		reqs[i] = req
	}

	_, c := setup()
	ctx, cancel := signalContext()
	defer cancel()

	handles := make([]client.Payload, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			h, err := c.SubmitAnalysis(ctx, req)
			if err != nil {
				return fmt.Errorf("%s: %w", files[i], err)
			}
			logging.Info("submitted", "file", files[i], "documents", len(req.Documents))
			handles[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fatalf("%v", err)
	}

	printJSON(handles, *pretty)
}
