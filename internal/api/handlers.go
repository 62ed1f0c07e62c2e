// Package api exposes the email-dispatch HTTP surface: one POST endpoint
// per business category, each driven by the declarative category table,
// plus a health endpoint.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/housika/email-gateway/internal/pkg/httputil"
	"github.com/housika/email-gateway/internal/pkg/logger"
	"github.com/housika/email-gateway/internal/zeptomail"
)

// Error codes returned in the envelope.
const (
	errInvalidJSON   = "INVALID_JSON"
	errMissingFields = "MISSING_FIELDS"
	errEmailService  = "EMAIL_SERVICE_ERROR"
	errRequest       = "REQUEST_ERROR"
)

// Mailer sends one rendered email through the delivery provider.
type Mailer interface {
	Send(ctx context.Context, req zeptomail.SendRequest) (zeptomail.Result, error)
}

// Renderer produces the HTML body for a category from its bindings.
type Renderer interface {
	Render(category string, bindings map[string]any) (string, error)
}

// Handlers holds the dependencies shared by all category handlers.
type Handlers struct {
	mailer   Mailer
	renderer Renderer
}

// NewHandlers creates the handler set.
func NewHandlers(mailer Mailer, renderer Renderer) *Handlers {
	return &Handlers{mailer: mailer, renderer: renderer}
}

// HealthCheck responds with a plain-text "ok".
//
//	GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.Text(w, http.StatusOK, "ok")
}

// EmailHandler returns the handler for one category. The pipeline is
// parse → validate → render → dispatch → respond; validation failures are
// reported before any rendering or network activity.
func (h *Handlers) EmailHandler(cat Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timestamp := isoTimestamp(time.Now())

		fields, ok := decodeFields(r)
		if !ok {
			respondError(w, http.StatusBadRequest, errInvalidJSON,
				"Request body must be valid JSON.", timestamp)
			return
		}

		if !hasRequiredFields(fields, cat.Required) {
			respondError(w, http.StatusBadRequest, errMissingFields,
				fmt.Sprintf("Required fields: %s must be provided.", cat.RequiredLabel), timestamp)
			return
		}

		sender, err := zeptomail.SenderFor(cat.Sender)
		if err != nil {
			h.fail(w, cat.Name, err, timestamp)
			return
		}

		bindings := cat.Bindings(fields)
		bindings["contactAddress"] = sender.Address
		htmlBody, err := h.renderer.Render(cat.Name, bindings)
		if err != nil {
			h.fail(w, cat.Name, err, timestamp)
			return
		}

		to := normalizeRecipients(fields["to"])
		messageID := uuid.NewString()
		logger.Info("dispatching email",
			"category", cat.Name,
			"message_id", messageID,
			"recipients", len(to),
		)

		result, err := h.mailer.Send(r.Context(), zeptomail.SendRequest{
			Sender:        sender,
			To:            to,
			Subject:       cat.Subject(fields),
			HTMLBody:      htmlBody,
			RecipientName: cat.RecipientName(fields),
		})
		if err != nil {
			logger.Error("dispatch failed",
				"category", cat.Name,
				"message_id", messageID,
				"error", err,
			)
			h.fail(w, cat.Name, err, timestamp)
			return
		}

		respondSuccess(w, cat.SuccessMsg, result, timestamp)
	}
}

// fail maps a dispatch failure to the envelope error taxonomy: typed
// delivery errors become EMAIL_SERVICE_ERROR, anything else REQUEST_ERROR.
func (h *Handlers) fail(w http.ResponseWriter, category string, err error, timestamp string) {
	code := errRequest
	var derr *zeptomail.Error
	if errors.As(err, &derr) {
		code = errEmailService
	}
	msg := err.Error()
	if msg == "" {
		msg = "Unexpected error."
	}
	respondError(w, http.StatusInternalServerError, code, msg, timestamp)
}

// decodeFields parses the request body as a JSON object. An absent body,
// invalid JSON, a non-object document, or trailing content after the
// object all report false.
func decodeFields(r *http.Request) (Fields, bool) {
	if r.Body == nil {
		return nil, false
	}
	dec := json.NewDecoder(r.Body)
	var fields Fields
	if err := dec.Decode(&fields); err != nil {
		return nil, false
	}
	if fields == nil {
		// Body was the JSON literal "null"
		return nil, false
	}
	// The body must be exactly one JSON document
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return fields, true
}

// hasRequiredFields checks every required key is present and truthy.
// All-or-nothing: the first falsy field fails the request.
func hasRequiredFields(f Fields, required []string) bool {
	for _, key := range required {
		if isFalsy(f[key]) {
			return false
		}
	}
	return true
}

// normalizeRecipients converts the to field into a recipient list: a
// string becomes a one-element list, a JSON array is flattened. Entries
// that are not strings pass through to the delivery client's recipient
// check, which rejects them.
func normalizeRecipients(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprintf("%v", e))
			}
		}
		return out
	}
	return []string{fmt.Sprintf("%v", v)}
}
