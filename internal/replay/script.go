// Package replay executes scripted tracker sessions: a yaml list of
// create/submit/get operations run against a fresh Tracker. It backs the
// `evtrack replay` command and doubles as an end-to-end exercise of the
// tracker's lifecycle semantics.
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Op is one scripted operation.
type Op struct {
	// Op is one of "create", "submit", "get".
	Op string `yaml:"op"`
	// Type is the event kind the operation applies to.
	Type string `yaml:"type"`
	// Target selects the record for a submit: "all" (default when empty),
	// "last" (the run's most recently created record of this type), or a
	// literal record id.
	Target string `yaml:"target,omitempty"`
	// ID is the record id for a get.
	ID string `yaml:"id,omitempty"`
	// Data is the submit payload, passed through as-is.
	Data any `yaml:"data,omitempty"`
}

// Script is a parsed replay file.
type Script struct {
	Ops []Op `yaml:"ops"`
}

// Parse decodes and validates a script.
func Parse(b []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse script: %w", err)
	}
	for i, op := range s.Ops {
		switch op.Op {
		case "create", "submit", "get":
		default:
			return s, fmt.Errorf("op %d: unknown op %q", i, op.Op)
		}
		if op.Type == "" {
			return s, fmt.Errorf("op %d: missing type", i)
		}
	}
	return s, nil
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	return Parse(b)
}
