package errors

// ErrorCode classifies application failures for logging and API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK              ErrorCode = 0
	ErrorCode_INTERNAL             ErrorCode = 1
	ErrorCode_INVALID_PAYLOAD      ErrorCode = 2
	ErrorCode_VALIDATION           ErrorCode = 3
	ErrorCode_GENERATION_FAILED    ErrorCode = 10
	ErrorCode_PERSISTENCE_FAILED   ErrorCode = 11
	ErrorCode_LIST_FAILED          ErrorCode = 12
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 20
	ErrorCode_DB_NOT_CONFIGURED    ErrorCode = 21
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:              "HTTP_OK",
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_PAYLOAD:      "INVALID_PAYLOAD",
	ErrorCode_VALIDATION:           "VALIDATION",
	ErrorCode_GENERATION_FAILED:    "GENERATION_FAILED",
	ErrorCode_PERSISTENCE_FAILED:   "PERSISTENCE_FAILED",
	ErrorCode_LIST_FAILED:          "LIST_FAILED",
	ErrorCode_DB_CONNECTION_FAILED: "DB_CONNECTION_FAILED",
	ErrorCode_DB_NOT_CONFIGURED:    "DB_NOT_CONFIGURED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
