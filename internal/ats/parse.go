package ats

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
)

// ParseResume decodes a raw resume document. Absent sections and fields are fine;
// a document of the wrong shape fails with an InvalidResumeError.
func ParseResume(data []byte) (*types.ResumeData, error) {
	if !json.Valid(data) {
		return nil, &InvalidResumeError{Message: "document is not valid JSON"}
	}

	if err := schemas.ValidateResume(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			first := validationErr.First()
			return nil, &InvalidResumeError{Field: first.Field, Message: first.Message, Cause: err}
		}
		return nil, &InvalidResumeError{Message: "schema check failed", Cause: err}
	}

	var resume types.ResumeData
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, &InvalidResumeError{Message: "failed to decode resume", Cause: err}
	}
	return &resume, nil
}

// LoadResume reads and parses a resume document from disk.
func LoadResume(path string) (*types.ResumeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseResume(data)
}
