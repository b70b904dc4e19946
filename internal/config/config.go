// Package config loads expedition definitions from HCL files.
//
// An expedition names one exploration session: which server to talk to,
// which message (maze) to explore, and where to deliver the results.
package config

import (
	"fmt"
	"time"
)

// DefaultTimeout is the per-request timeout applied when an expedition
// does not set one.
const DefaultTimeout = 30 * time.Second

// Sink is one configured output: a render or archive block. Options carry
// the block's free-form attributes, all coerced to strings.
type Sink struct {
	Type    string
	Options map[string]string
}

// Option returns a named option and whether it was set.
func (s Sink) Option(name string) (string, bool) {
	v, ok := s.Options[name]
	return v, ok
}

// Expedition is one fully validated exploration session definition.
type Expedition struct {
	Name    string
	Server  string
	Message string
	Timeout time.Duration

	Renders  []Sink
	Archives []Sink
}

// Known sink types per block kind.
var (
	renderTypes  = map[string]bool{"svg": true}
	archiveTypes = map[string]bool{"redis": true}
)

// requiredSinkOptions names the option each sink type cannot do without.
var requiredSinkOptions = map[string]string{
	"svg":   "output",
	"redis": "addr",
}

func (e *Expedition) validate() error {
	if e.Server == "" {
		return fmt.Errorf("expedition %q: server is required", e.Name)
	}
	if e.Message == "" {
		return fmt.Errorf("expedition %q: message is required", e.Name)
	}
	for _, s := range e.Renders {
		if !renderTypes[s.Type] {
			return fmt.Errorf("expedition %q: unknown render type %q", e.Name, s.Type)
		}
		if err := s.requireOption(); err != nil {
			return fmt.Errorf("expedition %q: %w", e.Name, err)
		}
	}
	for _, s := range e.Archives {
		if !archiveTypes[s.Type] {
			return fmt.Errorf("expedition %q: unknown archive type %q", e.Name, s.Type)
		}
		if err := s.requireOption(); err != nil {
			return fmt.Errorf("expedition %q: %w", e.Name, err)
		}
	}
	return nil
}

func (s Sink) requireOption() error {
	name := requiredSinkOptions[s.Type]
	if v, ok := s.Options[name]; !ok || v == "" {
		return fmt.Errorf("%s block requires the %q option", s.Type, name)
	}
	return nil
}
