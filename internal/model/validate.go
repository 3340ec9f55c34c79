package model

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

var ErrInvalidResume = errors.New("resume does not match schema")

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// Validate checks a decoded résumé against the embedded schema.
func Validate(v ResumeValues) error {
	return validate(gojsonschema.NewGoLoader(v))
}

// ValidateJSON checks raw request bytes before they are decoded.
func ValidateJSON(raw []byte) error {
	return validate(gojsonschema.NewBytesLoader(raw))
}

func validate(doc gojsonschema.JSONLoader) error {
	res, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResume, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidResume, strings.Join(msgs, "; "))
}
