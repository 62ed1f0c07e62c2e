// Package templates renders the per-category HTML email bodies using the
// Liquid template language. Rendering is pure: given the same bindings and
// clock, two renders produce byte-identical output.
package templates

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/osteele/liquid"
)

// Category template keys. Each maps to one compiled template.
const (
	CategoryAdmin        = "admin"
	CategoryCEO          = "ceo"
	CategoryCustomerCare = "customercare"
	CategoryBookings     = "bookings"
	CategoryPayments     = "payments"
	CategoryProperties   = "properties"
	CategoryNoReply      = "noreply"
	CategoryInfo         = "info"
)

// Engine holds one compiled Liquid template per category plus the clock
// used for templates that embed the current date.
type Engine struct {
	engine    *liquid.Engine
	templates map[string]*liquid.Template
	now       func() time.Time
}

// New creates an engine with the wall clock.
func New() *Engine {
	return NewWithClock(time.Now)
}

// NewWithClock creates an engine with an injectable clock, so tests can
// pin the "Notification Date" the properties template embeds.
// Template sources are compiled once here; a syntax error is a programmer
// error and panics.
func NewWithClock(now func() time.Time) *Engine {
	lq := liquid.NewEngine()
	registerFilters(lq)

	e := &Engine{
		engine:    lq,
		templates: make(map[string]*liquid.Template, len(sources)),
		now:       now,
	}
	for name, src := range sources {
		tpl, err := lq.ParseString(src)
		if err != nil {
			panic(fmt.Sprintf("templates: parsing %s template: %v", name, err))
		}
		e.templates[name] = tpl
	}
	return e
}

// Render produces the HTML body for a category. Bindings are embedded
// without HTML escaping, matching the gateway's existing output contract;
// the escape filter is available for templates that opt in.
func (e *Engine) Render(category string, bindings map[string]any) (string, error) {
	tpl, ok := e.templates[category]
	if !ok {
		return "", fmt.Errorf("no template for category %q", category)
	}

	ctx := make(map[string]any, len(bindings)+1)
	for k, v := range bindings {
		ctx[k] = v
	}
	ctx["today"] = FormatLocaleDate(e.now())

	out, err := tpl.RenderString(ctx)
	if err != nil {
		return "", fmt.Errorf("rendering %s template: %w", category, err)
	}
	return out, nil
}

// registerFilters adds the gateway's Liquid filters.
func registerFilters(lq *liquid.Engine) {
	// Newline to paragraph break: {{ bodyMessage | paragraphs }}.
	// The only text transform applied to plain-text body fields.
	lq.RegisterFilter("paragraphs", func(s string) string {
		return strings.ReplaceAll(s, "\n", "</p><p>")
	})

	// HTML escape: {{ user_input | escape }}
	lq.RegisterFilter("escape", func(s string) string {
		return html.EscapeString(s)
	})
}
