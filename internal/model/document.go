package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Run is one generation pass: the opinions sampled into the prompt and the
// articles the model produced from them.
type Run struct {
	RunIndex        int        `json:"run_index,omitempty"`
	SampledOpinions []string   `json:"sampled_opinions"`
	Articles        []*Article `json:"articles"`

	// RawOutput holds the model's free-form text when no article JSON could
	// be extracted from it.
	RawOutput string `json:"raw_output,omitempty"`
}

// Document is the top-level shape of a corpus file: either a list of runs or
// a single run object. The original shape is remembered so a rewrite
// round-trips it.
type Document struct {
	Runs   []*Run
	single bool
}

// NewDocument wraps runs into a list-shaped document.
func NewDocument(runs []*Run) *Document {
	return &Document{Runs: runs}
}

// DecodeDocument parses a corpus file, normalizing a bare run object into a
// one-element run list.
func DecodeDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	if trimmed[0] == '[' {
		var runs []*Run
		if err := json.Unmarshal(data, &runs); err != nil {
			return nil, err
		}
		return &Document{Runs: runs}, nil
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, err
	}
	return &Document{Runs: []*Run{&run}, single: true}, nil
}

// Single reports whether the source file held a bare run object.
func (d *Document) Single() bool {
	return d.single
}

// Encode serializes the document back into its original top-level shape.
func (d *Document) Encode() ([]byte, error) {
	if d.single {
		if len(d.Runs) != 1 {
			return nil, fmt.Errorf("single-run document holds %d runs", len(d.Runs))
		}
		return json.MarshalIndent(d.Runs[0], "", "  ")
	}
	return json.MarshalIndent(d.Runs, "", "  ")
}
