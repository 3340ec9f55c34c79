// Package ai drafts résumé section text with a language model. Providers
// return raw markdown; ParseBullets turns it into lines the template engine
// understands.
package ai

import (
	"context"
	"errors"
)

var (
	ErrEmptyOutput        = errors.New("ai returned no content")
	ErrUnsupportedSection = errors.New("section cannot be generated")
	ErrProvider           = errors.New("ai provider failed")
)

// Request asks for text for one section. Context is what the user already
// wrote about the entry (role, company, notes).
type Request struct {
	Section  string `json:"section"`
	Context  string `json:"context"`
	Language string `json:"language,omitempty"`
}

type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
