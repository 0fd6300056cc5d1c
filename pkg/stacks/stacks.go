// Package stacks implements the stack catalog: named, curated bundles
// of packages installed together for a use case (machine learning, web
// development, ...). The catalog is loaded once from a JSON document
// and is immutable afterwards.
package stacks

import (
	"strings"
)

// HardwareAny is the hardware requirement meaning "no constraint".
const HardwareAny = "any"

// Distinguished stack identifiers for hardware variant resolution.
const (
	// MLStackID is the GPU-accelerated machine learning stack.
	MLStackID = "ml"
	// MLCPUStackID is its CPU-only sibling.
	MLCPUStackID = "ml-cpu"
)

// Stack is a single catalog entry. Entries are immutable once loaded.
type Stack struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Packages    []string `json:"packages"`
	Tags        []string `json:"tags,omitempty"`
	Hardware    string   `json:"hardware,omitempty"`
}

// HardwareRequirement returns the stack's hardware tag, defaulting to
// "any" when the catalog entry left it unset.
func (s Stack) HardwareRequirement() string {
	if s.Hardware == "" {
		return HardwareAny
	}
	return s.Hardware
}

// HasTag reports whether the stack carries the given tag.
func (s Stack) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Summary returns a one-line summary used in list output.
func (s Stack) Summary() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if s.Description != "" {
		b.WriteString(" - ")
		b.WriteString(s.Description)
	}
	return b.String()
}
