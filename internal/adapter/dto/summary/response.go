package summary

import "time"

// GenerateResponse carries the generated summary text
type GenerateResponse struct {
	Summary string `json:"summary"`
}

// SaveResponse acknowledges a save request. ID is absent in degraded mode.
type SaveResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// RecordPreview is one listed summary with a truncated transcript
type RecordPreview struct {
	ID              string    `json:"id"`
	Transcript      string    `json:"transcript"`
	Summary         string    `json:"summary"`
	CustomPrompt    string    `json:"customPrompt"`
	EmailRecipients string    `json:"emailRecipients"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListResponse is the body for GET /api/get-summaries
type ListResponse struct {
	Success   bool            `json:"success"`
	Summaries []RecordPreview `json:"summaries"`
	Message   string          `json:"message,omitempty"`
}

// SendEmailsResponse acknowledges a validated dispatch request; actual
// delivery happens in the browser.
type SendEmailsResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Summary    string   `json:"summary"`
	Recipients []string `json:"recipients"`
}

// DiagnosticsResponse is the body for GET /api/test-db
type DiagnosticsResponse struct {
	Success     bool     `json:"success,omitempty"`
	Message     string   `json:"message,omitempty"`
	Collections []string `json:"collections,omitempty"`
	HasURI      bool     `json:"hasUri"`
	Error       string   `json:"error,omitempty"`
	Details     string   `json:"details,omitempty"`
}
