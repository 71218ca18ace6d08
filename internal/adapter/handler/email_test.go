package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendEmails_EmptyRecipients(t *testing.T) {
	e := newTestEcho()
	h := NewEmailHandler(nil)

	rec, body := doJSON(t, e, http.MethodPost, "/api/send-emails",
		`{"summary":"s","recipients":[]}`, h.SendEmails)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Summary and recipients are required", body["error"])
}

func TestSendEmails_WhitespaceOnlyRecipients(t *testing.T) {
	e := newTestEcho()
	h := NewEmailHandler(nil)

	rec, body := doJSON(t, e, http.MethodPost, "/api/send-emails",
		`{"summary":"s","recipients":["   ","\t",""]}`, h.SendEmails)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Summary and recipients are required", body["error"])
}

func TestSendEmails_MissingSummary(t *testing.T) {
	e := newTestEcho()
	h := NewEmailHandler(nil)

	rec, body := doJSON(t, e, http.MethodPost, "/api/send-emails",
		`{"recipients":["a@b.com"]}`, h.SendEmails)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Summary and recipients are required", body["error"])
}

func TestSendEmails_Success(t *testing.T) {
	e := newTestEcho()
	h := NewEmailHandler(nil)

	rec, body := doJSON(t, e, http.MethodPost, "/api/send-emails",
		`{"summary":"the summary","recipients":[" alice@example.com ","bob@example.com"]}`, h.SendEmails)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Ready to send email to 2 recipient(s)", body["message"])
	require.Equal(t, "the summary", body["summary"])

	recipients, ok := body["recipients"].([]interface{})
	require.True(t, ok)
	require.Equal(t, []interface{}{"alice@example.com", "bob@example.com"}, recipients)
}

func TestFilterRecipients(t *testing.T) {
	out := filterRecipients([]string{" a@b.com ", "", "  ", "c@d.com"})
	require.Equal(t, []string{"a@b.com", "c@d.com"}, out)
}
