package api

import (
	"net/http"
	"time"

	"github.com/housika/email-gateway/internal/pkg/httputil"
	"github.com/housika/email-gateway/internal/zeptomail"
)

// Envelope is the uniform JSON shape returned to every caller: a boolean
// success flag, the request-start timestamp, and either message+result or
// error+message.
type Envelope struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Error     string           `json:"error,omitempty"`
	Result    zeptomail.Result `json:"result,omitempty"`
	Timestamp string           `json:"timestamp"`
}

// successEnvelope is the wire shape of a success response. Result has no
// omitempty: a success always carries the key, as "{}" when the provider
// body was empty or unparseable.
type successEnvelope struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	Result    zeptomail.Result `json:"result"`
	Timestamp string           `json:"timestamp"`
}

// isoTimestamp formats a time the way the envelope contract requires:
// UTC ISO-8601 with millisecond precision.
func isoTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func respondSuccess(w http.ResponseWriter, message string, result zeptomail.Result, timestamp string) {
	if result == nil {
		result = zeptomail.Result{}
	}
	httputil.JSON(w, http.StatusOK, successEnvelope{
		Success:   true,
		Message:   message,
		Result:    result,
		Timestamp: timestamp,
	})
}

func respondError(w http.ResponseWriter, status int, code, message, timestamp string) {
	httputil.JSON(w, status, Envelope{
		Success:   false,
		Error:     code,
		Message:   message,
		Timestamp: timestamp,
	})
}
