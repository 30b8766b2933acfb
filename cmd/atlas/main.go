// Command atlas submits documents to the analysis service and renders the
// reports it produces.
//
// Usage:
//
//	atlas                       Show help
//	atlas submit <file...>      Submit analysis requests
//	atlas report <id...>        Fetch reports as JSON
//	atlas status <id>           Show job status
//	atlas health                Check the service
//	atlas render <file|id>      Print a report to the terminal
//	atlas view <id>             Interactive report viewer
package main

import (
	"fmt"
	"os"
)

const usage = `atlas - analysis report client

Usage:
  atlas <command> [flags]

Commands:
  submit      Submit analysis requests from JSON or YAML files
  report      Fetch one or more reports and print them as JSON
  status      Show the status of an analysis job
  health      Check that the analysis service is up
  render      Render a report (file or analysis ID) to the terminal
  view        Interactive report viewer

Environment:
  ATLAS_BASE_URL     Analysis service root (default: http://localhost:8000)
  ATLAS_RATE_LIMIT   Requests per second, 0 for unlimited
  ATLAS_BURST        Rate limiter burst size
  ATLAS_LOG_LEVEL    debug, info, warn or error
  ATLAS_LOG_FILE     Log file used by the viewer

Run 'atlas <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "submit":
		runSubmit()
	case "report":
		runReport()
	case "status":
		runStatus()
	case "health":
		runHealth()
	case "render":
		runRender()
	case "view":
		runView()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "atlas: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
