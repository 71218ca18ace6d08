package summary

// GenerateRequest is the body for POST /api/generate-summary
type GenerateRequest struct {
	Transcript   string `json:"transcript" validate:"required"`
	CustomPrompt string `json:"customPrompt"`
}

// SaveRequest is the body for POST /api/save-summary
type SaveRequest struct {
	Transcript      string `json:"transcript" validate:"required"`
	Summary         string `json:"summary" validate:"required"`
	CustomPrompt    string `json:"customPrompt"`
	EmailRecipients string `json:"emailRecipients"`
}

// SendEmailsRequest is the body for POST /api/send-emails
type SendEmailsRequest struct {
	Summary    string   `json:"summary" validate:"required"`
	Recipients []string `json:"recipients" validate:"required,min=1"`
}
