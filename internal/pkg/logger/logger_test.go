package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactEmail(t *testing.T) {
	assert.Equal(t, "jo***@example.com", RedactEmail("john.doe@example.com"))
	assert.Equal(t, "***@example.com", RedactEmail("ab@example.com"))
	assert.Equal(t, "***@***", RedactEmail("not-an-address"))
}

func TestRedactPIIValue(t *testing.T) {
	assert.Equal(t, "jo***@example.com", redactPIIValue("to", "john@example.com"))
	assert.Equal(t, "jo***@example.com", redactPIIValue("recipient_address", "john@example.com"))
	assert.Equal(t, "sent to jo***@example.com ok", redactPIIValue("detail", "sent to john@example.com ok"))
	assert.Equal(t, "plain text", redactPIIValue("detail", "plain text"))
}

func TestRedactPIIValueKeepsCounts(t *testing.T) {
	assert.Equal(t, "2", redactPIIValue("recipients", "2"))
	assert.Equal(t, "0", redactPIIValue("recipient_count", "0"))
	assert.Equal(t, "jo***@example.com", redactPIIValue("recipients", "john@example.com"))
}
