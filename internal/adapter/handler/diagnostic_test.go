package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTestDB_NotConfigured(t *testing.T) {
	e := newTestEcho()
	svc := &fakeService{configured: false}
	h := NewDiagnosticHandler(svc, nil)

	rec, body := doJSON(t, e, http.MethodGet, "/api/test-db", "", h.TestDB)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "MONGODB_URI not found in environment variables", body["error"])
	require.Equal(t, false, body["hasUri"])
}

func TestTestDB_Success(t *testing.T) {
	e := newTestEcho()
	svc := &fakeService{configured: true, cols: []string{"summaries"}}
	h := NewDiagnosticHandler(svc, nil)

	rec, body := doJSON(t, e, http.MethodGet, "/api/test-db", "", h.TestDB)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["success"])
	require.Equal(t, "MongoDB connection successful", body["message"])
	require.Equal(t, []interface{}{"summaries"}, body["collections"])
	require.Equal(t, true, body["hasUri"])
}

func TestTestDB_ConnectionFailure(t *testing.T) {
	e := newTestEcho()
	svc := &fakeService{configured: true, colsErr: context.DeadlineExceeded}
	h := NewDiagnosticHandler(svc, nil)

	rec, body := doJSON(t, e, http.MethodGet, "/api/test-db", "", h.TestDB)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "MongoDB connection failed", body["error"])
	require.NotEmpty(t, body["details"])
	require.Equal(t, true, body["hasUri"])
}
