package zeptomail

// ErrorKind classifies a delivery failure.
type ErrorKind int

const (
	// KindConfig marks failures local to the gateway: the API key could
	// not be resolved, a sender identity is unknown, or the rendered
	// email is structurally incomplete.
	KindConfig ErrorKind = iota
	// KindInvalidRecipient marks a recipient address that failed the
	// basic shape check before any network call was made.
	KindInvalidRecipient
	// KindService marks failures attributable to the provider: a non-2xx
	// response, or a transport fault reaching the API.
	KindService
)

// Error is the typed failure returned by the delivery client. Data carries
// the provider's parsed response body when one was received.
type Error struct {
	Kind    ErrorKind
	Message string
	Data    map[string]any
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func wrapError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, cause: cause}
}
