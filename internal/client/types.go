package client

import "time"

// Source tags the kind of document a piece of text came from.
type Source string

const (
	SourceEmail  Source = "email"
	SourceChat   Source = "chat"
	SourceDoc    Source = "doc"
	SourceTicket Source = "ticket"
	SourceNote   Source = "note"
)

// Document is one text submitted for analysis. IDs are opaque.
type Document struct {
	DocumentID string    `json:"document_id" yaml:"document_id"`
	AuthorID   string    `json:"author_id" yaml:"author_id" validate:"required"`
	Source     Source    `json:"source,omitempty" yaml:"source,omitempty" validate:"omitempty,oneof=email chat doc ticket note"`
	Content    string    `json:"content" yaml:"content" validate:"required"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
}

// Options tunes an analysis. Nil fields are left to the service's defaults.
type Options struct {
	Language            string   `json:"language,omitempty" yaml:"language,omitempty"`
	RetainRawText       *bool    `json:"retain_raw_text,omitempty" yaml:"retain_raw_text,omitempty"`
	ConfidenceThreshold *float64 `json:"confidence_threshold,omitempty" yaml:"confidence_threshold,omitempty" validate:"omitempty,min=0,max=1"`
}

// AnalysisRequest is the body of POST /api/v1/analysis. Documents are sent
// in the order given.
type AnalysisRequest struct {
	SubjectID string     `json:"subject_id" yaml:"subject_id" validate:"required"`
	Documents []Document `json:"documents" yaml:"documents" validate:"required,min=1,dive"`
	Options   *Options   `json:"options,omitempty" yaml:"options,omitempty"`
}

// Payload is a decoded JSON response whose shape belongs to the analysis
// service: a job handle, a status or a report. Objects decode to
// map[string]any and numbers to json.Number, so nothing is renamed or
// rounded on the way through.
type Payload = any
