package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gookit/validate"
)

var ErrInvalidRecord = errors.New("invalid record")

// Record is one journal entry. Field names follow the persisted layout.
type Record struct {
	ID        string   `json:"id"`
	Timestamp int64    `json:"timestamp"`
	Category  Category `json:"bristolType"`
	Photo     string   `json:"photo,omitempty"`
	Note      string   `json:"note,omitempty"`
	Duration  int      `json:"duration,omitempty"`
}

// RecordInput carries the caller-supplied part of a new record; id and
// timestamp are assigned by the journal.
type RecordInput struct {
	Category int    `json:"bristolType" validate:"required|min:1|max:7"`
	Note     string `json:"note" validate:"maxLen:2000"`
	Photo    string `json:"photo"`
	Duration int    `json:"duration" validate:"min:0|max:1440"`
}

func (in *RecordInput) Validate() error {
	v := validate.Struct(in)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, v.Errors.One())
	}
	if in.Photo != "" && !strings.HasPrefix(in.Photo, "data:") {
		return fmt.Errorf("%w: photo must be a data URI", ErrInvalidRecord)
	}
	return nil
}

// Build turns validated input into a record with the given identity.
func (in *RecordInput) Build(id string, timestamp int64) Record {
	return Record{
		ID:        id,
		Timestamp: timestamp,
		Category:  Category(in.Category),
		Photo:     in.Photo,
		Note:      strings.TrimSpace(in.Note),
		Duration:  in.Duration,
	}
}
