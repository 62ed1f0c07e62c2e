// Package zeptomail wraps the single outbound call to the ZeptoMail
// transactional-email API: payload construction, credential attachment,
// and mapping of the provider's response into a uniform result or a
// typed delivery error. No retry, no batching, no persistence.
package zeptomail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/housika/email-gateway/internal/config"
	"github.com/housika/email-gateway/internal/pkg/logger"
)

// authScheme is the credential prefix ZeptoMail expects in the
// Authorization header.
const authScheme = "Zoho-enczapikey"

// HTTPDoer abstracts *http.Client so tests can intercept the provider call.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the delivery client. The API key is resolved lazily on the
// first send; the outcome (key or configuration error) is sticky for the
// process lifetime, and concurrent first callers converge on the single
// resolution via sync.Once.
type Client struct {
	baseURL    string
	httpClient HTTPDoer

	resolveKey func() (string, error)
	once       sync.Once
	apiKey     string
	keyErr     error
}

// NewClient creates a delivery client from configuration. The key is not
// checked here: readiness is established on first use.
func NewClient(cfg config.ZeptoMailConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		resolveKey: func() (string, error) {
			if cfg.APIKey != "" {
				return cfg.APIKey, nil
			}
			if key := os.Getenv("ZEPTO_API_KEY"); key != "" {
				return key, nil
			}
			return "", newError(KindConfig, "ZeptoMail API key missing.")
		},
	}
}

// ensureReady resolves the API key at most once per process lifetime.
func (c *Client) ensureReady() (string, error) {
	c.once.Do(func() {
		c.apiKey, c.keyErr = c.resolveKey()
		if c.keyErr != nil {
			logger.Error("zeptomail credential resolution failed", "error", c.keyErr)
		}
	})
	return c.apiKey, c.keyErr
}

// Send performs exactly one synchronous POST to the provider. A non-2xx
// status or transport fault is returned as a service-kind *Error carrying
// the provider's diagnostic body; a successful call returns the parsed
// response verbatim.
func (c *Client) Send(ctx context.Context, req SendRequest) (Result, error) {
	key, err := c.ensureReady()
	if err != nil {
		return nil, err
	}

	recipients, err := formatRecipients(req.To, req.RecipientName)
	if err != nil {
		return nil, err
	}

	if req.Sender.Address == "" || req.Sender.Name == "" || len(recipients) == 0 || req.Subject == "" || req.HTMLBody == "" {
		return nil, newError(KindConfig, "Missing required email fields.")
	}

	payload := transmission{
		From:     req.Sender,
		To:       recipients,
		Subject:  req.Subject,
		HTMLBody: req.HTMLBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, wrapError(KindService, "encoding transmission: "+err.Error(), err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, wrapError(KindService, "creating request: "+err.Error(), err)
	}
	httpReq.Header.Set("Authorization", authHeader(key))
	httpReq.Header.Set("Content-Type", "application/json")

	logger.Info("sending email via zeptomail",
		"url", c.baseURL,
		"sender", req.Sender.Address,
		"recipients", len(recipients),
		"subject", req.Subject,
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("zeptomail request failed", "sender", req.Sender.Address, "error", err)
		return nil, wrapError(KindService, "Unexpected email error.", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	data := Result{}
	if err := json.Unmarshal(raw, &data); err != nil {
		data = Result{}
	}

	logger.Info("zeptomail api response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("Email failed with status %d", resp.StatusCode)
		if m, ok := data["message"].(string); ok && m != "" {
			msg = m
		}
		logger.Error("zeptomail rejected send",
			"sender", req.Sender.Address,
			"status", resp.StatusCode,
			"detail", string(raw),
		)
		return nil, &Error{Kind: KindService, Message: msg, Data: data}
	}

	return data, nil
}

// authHeader prefixes the credential with the scheme token unless the key
// already carries it.
func authHeader(key string) string {
	if strings.HasPrefix(key, authScheme) {
		return key
	}
	return authScheme + " " + key
}

// formatRecipients converts addresses into the provider's recipient shape.
// Every entry must contain "@"; the check runs before any network call.
func formatRecipients(to []string, name string) ([]recipient, error) {
	if name == "" {
		name = "User"
	}
	out := make([]recipient, 0, len(to))
	for _, addr := range to {
		if !strings.Contains(addr, "@") {
			return nil, newError(KindInvalidRecipient, fmt.Sprintf("Invalid recipient: %s", addr))
		}
		out = append(out, recipient{EmailAddress: emailAddress{Address: addr, Name: name}})
	}
	return out, nil
}
