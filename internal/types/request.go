package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxJobDescriptionLength bounds the job description accepted for one scoring request.
const MaxJobDescriptionLength = 200000

// ScoreRequest is one unit of scoring work.
type ScoreRequest struct {
	ID             string      `json:"id" validate:"required"`
	Resume         *ResumeData `json:"resume" validate:"required"`
	JobDescription string      `json:"job_description,omitempty" validate:"max=200000"`
	RoleLevel      RoleLevel   `json:"role_level,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BatchItem is the outcome of scoring one resume in a batch.
type BatchItem struct {
	ID          string       `json:"id"`
	Report      *ScoreReport `json:"report,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// BatchResult is the envelope written by a batch run.
type BatchResult struct {
	RunID      uuid.UUID   `json:"run_id"`
	RoleLevel  RoleLevel   `json:"role_level"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Items      []BatchItem `json:"items"`
}

// Failed returns how many items could not be scored.
func (b *BatchResult) Failed() int {
	n := 0
	for _, item := range b.Items {
		if item.Error != "" {
			n++
		}
	}
	return n
}
