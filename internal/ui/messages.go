// Package ui provides the Bubble Tea report viewer for Atlas.
package ui

import "github.com/abelbrown/atlas/internal/client"

// ReportLoaded is sent when a report fetch finishes.
type ReportLoaded struct {
	ID      string
	Payload client.Payload
	Err     error
}
