package zeptomail

// SendRequest describes one rendered email handed to the delivery client.
type SendRequest struct {
	Sender        Sender
	To            []string
	Subject       string
	HTMLBody      string
	RecipientName string // display-name fallback applied to every recipient
}

// Result is the provider's parsed response body, returned verbatim on a
// successful send. The gateway treats it as opaque beyond existence.
type Result map[string]any

// transmission is the wire shape of the ZeptoMail send call.
type transmission struct {
	From     Sender      `json:"from"`
	To       []recipient `json:"to"`
	Subject  string      `json:"subject"`
	HTMLBody string      `json:"htmlbody"`
}

type recipient struct {
	EmailAddress emailAddress `json:"email_address"`
}

type emailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}
