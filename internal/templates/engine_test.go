package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
}

func TestRenderPaymentsDeterministic(t *testing.T) {
	engine := NewWithClock(fixedClock)
	bindings := map[string]any{
		"recipientName":  "Payer",
		"transactionId":  "TX1",
		"amount":         "500",
		"paymentDate":    "1/15/2024, 10:30:00 AM",
		"contactAddress": "payments@housika.co.ke",
	}

	first, err := engine.Render(CategoryPayments, bindings)
	require.NoError(t, err)
	second, err := engine.Render(CategoryPayments, bindings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "TX1")
	assert.Contains(t, first, "Ksh 500")
	assert.Contains(t, first, "Dear Payer,")
	assert.Contains(t, first, "payments@housika.co.ke")
}

func TestRenderParagraphsFilter(t *testing.T) {
	engine := NewWithClock(fixedClock)
	out, err := engine.Render(CategoryNoReply, map[string]any{
		"recipientName": "Jane",
		"bodyMessage":   "first line\nsecond line",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "first line</p><p>second line")
}

func TestRenderPropertiesEmbedsClock(t *testing.T) {
	engine := NewWithClock(fixedClock)
	out, err := engine.Render(CategoryProperties, map[string]any{
		"recipientName": "Owner",
		"propertyId":    "P42",
		"updateType":    "Price Change",
		"bodyMessage":   "New rates apply.",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "1/15/2024")
	assert.Contains(t, out, "P42")
	assert.Contains(t, out, "Price Change")
}

func TestRenderUnknownCategory(t *testing.T) {
	engine := NewWithClock(fixedClock)
	_, err := engine.Render("marketing", map[string]any{})
	assert.Error(t, err)
}

func TestRenderAllCategoriesCompile(t *testing.T) {
	engine := NewWithClock(fixedClock)
	for name := range sources {
		out, err := engine.Render(name, map[string]any{"recipientName": "Jane"})
		require.NoError(t, err, "category %s", name)
		assert.Contains(t, out, "HOUSIKA", "category %s", name)
	}
}

func TestFormatLocaleDate(t *testing.T) {
	assert.Equal(t, "1/1/2024", FormatLocaleDate("2024-01-01"))
	assert.Equal(t, "3/15/2024", FormatLocaleDate("2024-03-15T08:00:00Z"))
	assert.Equal(t, "1/15/2024", FormatLocaleDate(fixedClock()))
	assert.Equal(t, InvalidDate, FormatLocaleDate("next tuesday"))
	assert.Equal(t, InvalidDate, FormatLocaleDate(nil))
}

func TestFormatDateString(t *testing.T) {
	assert.Equal(t, "Mon Jan 01 2024", FormatDateString("2024-01-01"))
	assert.Equal(t, InvalidDate, FormatDateString("garbage"))
}

func TestFormatLocaleDateTime(t *testing.T) {
	assert.Equal(t, "1/1/2024, 3:30:05 PM", FormatLocaleDateTime("2024-01-01T15:30:05Z"))
	assert.Equal(t, "1/1/2024, 12:00:00 AM", FormatLocaleDateTime("2024-01-01"))
	assert.Equal(t, InvalidDate, FormatLocaleDateTime("garbage"))
}

func TestFormatEpochMillis(t *testing.T) {
	// 2024-01-15T12:00:00Z as epoch milliseconds. The rendered date is in
	// local time, so only pin the year.
	millis := float64(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC).UnixMilli())
	got := FormatLocaleDate(millis)
	assert.NotEqual(t, InvalidDate, got)
	assert.Contains(t, got, "/2024")
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "500", FieldString(float64(500)))
	assert.Equal(t, "500.5", FieldString(500.5))
	assert.Equal(t, "TX1", FieldString("TX1"))
	assert.Equal(t, "", FieldString(nil))
	assert.Equal(t, "true", FieldString(true))
}
