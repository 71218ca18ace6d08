package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SummaryRecord is one persisted transcript/summary pair plus metadata.
// Records are insert-only: no handler updates or deletes them.
type SummaryRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Transcript      string             `bson:"transcript" json:"transcript"`
	Summary         string             `bson:"summary" json:"summary"`
	CustomPrompt    string             `bson:"customPrompt" json:"customPrompt"`
	EmailRecipients string             `bson:"emailRecipients" json:"emailRecipients"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewSummaryRecord builds a record with write-time timestamps. Transcript and
// summary must both be present; optional fields default to empty strings.
func NewSummaryRecord(transcript, summary, customPrompt, emailRecipients string) (*SummaryRecord, error) {
	if transcript == "" || summary == "" {
		return nil, ErrMissingSummaryFields
	}
	now := time.Now().UTC()
	return &SummaryRecord{
		Transcript:      transcript,
		Summary:         summary,
		CustomPrompt:    customPrompt,
		EmailRecipients: emailRecipients,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
