package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/abelbrown/atlas/internal/client"
	"github.com/abelbrown/atlas/internal/report"
	"github.com/abelbrown/atlas/internal/ui"
)

func runRender() {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	threshold := fs.Float64("threshold", math.NaN(), "Flag reports whose confidence is below this value (0-1)")
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: atlas render [-threshold t] <report.json|analysis-id>")
		os.Exit(1)
	}
	arg := fs.Arg(0)

	var payload client.Payload
	if _, err := os.Stat(arg); err == nil {
		payload, err = readPayload(arg)
		if err != nil {
			fatalf("%v", err)
		}
	} else {
		_, c := setup()
		ctx, cancel := signalContext()
		defer cancel()

		payload, err = c.FetchReport(ctx, arg)
		if err != nil {
			fatalf("%v", err)
		}
	}

	var t *float64
	if !math.IsNaN(*threshold) {
		t = threshold
	}

	v := report.Extract(payload)
	for p := ui.PanelOverview; p <= ui.PanelStateMachine; p++ {
		fmt.Println(ui.Title.Render(p.String()))
		fmt.Println(ui.RenderPanel(v, p, t))
	}
}

// readPayload decodes a saved report, keeping numbers exact.
func readPayload(path string) (client.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var p client.Payload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}
