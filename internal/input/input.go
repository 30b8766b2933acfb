// Package input loads analysis requests from JSON or YAML files.
package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abelbrown/atlas/internal/client"
	"github.com/go-playground/validator"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Option adjusts a loaded request before it is validated.
type Option func(*client.AnalysisRequest)

// WithSubject sets the subject ID, overriding the file's. Needed when the
// file is a bare list of documents. An empty id is ignored.
func WithSubject(id string) Option {
	return func(r *client.AnalysisRequest) {
		if id != "" {
			r.SubjectID = id
		}
	}
}

// Load reads a request from path. Files ending in .yaml or .yml are YAML;
// anything else is JSON. The file holds either a full request object or a
// list of documents.
func Load(path string, opts ...Option) (client.AnalysisRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return client.AnalysisRequest{}, fmt.Errorf("input: %w", err)
	}

	var req client.AnalysisRequest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		req, err = parseYAML(data)
	default:
		req, err = parseJSON(data)
	}
	if err != nil {
		return client.AnalysisRequest{}, fmt.Errorf("input: failed to parse %s: %w", path, err)
	}

	for _, opt := range opts {
		opt(&req)
	}

	if err := AssignIDs(req.Documents); err != nil {
		return client.AnalysisRequest{}, err
	}

	if err := Validate(req); err != nil {
		return client.AnalysisRequest{}, fmt.Errorf("input: invalid request in %s: %w", path, err)
	}
	return req, nil
}

func parseJSON(data []byte) (client.AnalysisRequest, error) {
	var req client.AnalysisRequest
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		err := json.Unmarshal(data, &req.Documents)
		return req, err
	}
	err := json.Unmarshal(data, &req)
	return req, err
}

func parseYAML(data []byte) (client.AnalysisRequest, error) {
	var req client.AnalysisRequest

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return req, err
	}
	if len(doc.Content) == 0 {
		return req, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		err := root.Decode(&req.Documents)
		return req, err
	}
	err := root.Decode(&req)
	return req, err
}

// AssignIDs gives every document without a document_id a fresh nanoid.
// Existing IDs and document order are left alone.
func AssignIDs(docs []client.Document) error {
	for i := range docs {
		if docs[i].DocumentID != "" {
			continue
		}
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("input: failed to generate document id: %w", err)
		}
		docs[i].DocumentID = id
	}
	return nil
}

// Validate checks the request's shape: a subject, at least one document,
// each with an author and content, a known source tag if one is set, and a
// threshold within [0, 1]. ID formats are not checked.
func Validate(req client.AnalysisRequest) error {
	return validate.Struct(req)
}
