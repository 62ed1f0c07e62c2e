package api

import (
	"fmt"

	"github.com/housika/email-gateway/internal/templates"
	"github.com/housika/email-gateway/internal/zeptomail"
)

// Fields is the decoded JSON request body.
type Fields map[string]any

func (f Fields) str(key string) string {
	return templates.FieldString(f[key])
}

// stringOr returns the string value at key, or fallback when the field is
// absent or empty.
func stringOr(f Fields, key, fallback string) string {
	if s, ok := f[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// isFalsy mirrors the truthiness rule applied to required fields: null,
// empty string, false, and numeric zero all count as missing.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}

// Category declares one email category: its required-field set, sender
// identity, subject synthesis, template bindings, and response message.
// The generic handler is driven entirely by this table.
type Category struct {
	// Name is the route segment and template key.
	Name   string
	Sender zeptomail.SenderKey
	// Required lists the validation keys; RequiredLabel is the
	// human-readable enumeration used in the MISSING_FIELDS message.
	Required      []string
	RequiredLabel string
	Subject       func(f Fields) string
	Bindings      func(f Fields) map[string]any
	// RecipientName is the display-name fallback passed to delivery.
	RecipientName func(f Fields) string
	SuccessMsg    string
}

var categories = []Category{
	{
		Name:          templates.CategoryAdmin,
		Sender:        zeptomail.SenderAdmin,
		Required:      []string{"to", "subject", "bodyMessage"},
		RequiredLabel: "to, subject, and bodyMessage (plain text)",
		Subject:       func(f Fields) string { return f.str("subject") },
		Bindings: func(f Fields) map[string]any {
			return map[string]any{
				"recipientName": stringOr(f, "recipientName", "Valued Recipient"),
				"subject":       f.str("subject"),
				"bodyMessage":   f.str("bodyMessage"),
			}
		},
		RecipientName: func(f Fields) string { return stringOr(f, "recipientName", "Admin Recipient") },
		SuccessMsg:    "Admin email sent successfully.",
	},
	{
		Name:          templates.CategoryCEO,
		Sender:        zeptomail.SenderCEO,
		Required:      []string{"to", "message", "sendTime"},
		RequiredLabel: "to, message (plain text), and sendTime",
		Subject: func(f Fields) string {
			return "Executive Communication – " + templates.FormatLocaleDate(f["sendTime"])
		},
		Bindings: func(f Fields) map[string]any {
			return map[string]any{
				"recipientName": "Valued Stakeholder",
				"message":       f.str("message"),
				"sendDate":      templates.FormatLocaleDate(f["sendTime"]),
			}
		},
		RecipientName: func(f Fields) string { return "Valued Stakeholder" },
		SuccessMsg:    "Executive email sent successfully.",
	},
	{
		Name:          templates.CategoryCustomerCare,
		Sender:        zeptomail.SenderCustomerCare,
		Required:      []string{"to", "bodyMessage", "caseId"},
		RequiredLabel: "to, bodyMessage (plain text), and caseId",
		Subject: func(f Fields) string {
			return fmt.Sprintf("Your Support Ticket #%s Response", f.str("caseId"))
		},
		Bindings: func(f Fields) map[string]any {
			return map[string]any{
				"recipientName": stringOr(f, "recipientName", "Valued Customer"),
				"caseId":        f.str("caseId"),
				"bodyMessage":   f.str("bodyMessage"),
			}
		},
		RecipientName: func(f Fields) string { return stringOr(f, "recipientName", "Customer") },
		SuccessMsg:    "Customer Care email sent successfully.",
	},
	{
		Name:          templates.CategoryBookings,
		Sender:        zeptomail.SenderBookings,
		Required:      []string{"to", "bookingId", "date", "propertyName"},
		RequiredLabel: "to, bookingId, date, and propertyName",
		Subject: func(f Fields) string {
			return "Booking Confirmation - " + f.str("propertyName")
		},
		Bindings: func(f Fields) map[string]any {
			totalAmount := "Not Specified"
			if !isFalsy(f["totalAmount"]) {
				totalAmount = "Ksh " + f.str("totalAmount")
			}
			return map[string]any{
				"recipientName": stringOr(f, "recipientName", "Valued Client"),
				"bookingId":     f.str("bookingId"),
				"propertyName":  f.str("propertyName"),
				"bookingDate":   templates.FormatDateString(f["date"]),
				"totalAmount":   totalAmount,
			}
		},
		RecipientName: func(f Fields) string { return stringOr(f, "recipientName", "Client") },
		SuccessMsg:    "Booking email sent successfully.",
	},
	{
		Name:          templates.CategoryPayments,
		Sender:        zeptomail.SenderPayments,
		Required:      []string{"to", "transactionId", "amount", "date"},
		RequiredLabel: "to, transactionId, amount, and date",
		Subject: func(f Fields) string {
			return "Payment Confirmation - Ksh " + f.str("amount")
		},
		Bindings: func(f Fields) map[string]any {
			return map[string]any{
				"recipientName": stringOr(f, "recipientName", "Valued Customer"),
				"transactionId": f.str("transactionId"),
				"amount":        f.str("amount"),
				"paymentDate":   templates.FormatLocaleDateTime(f["date"]),
			}
		},
		RecipientName: func(f Fields) string { return stringOr(f, "recipientName", "Payer") },
		SuccessMsg:    "Payment email sent successfully.",
	},
	{
		Name:          templates.CategoryProperties,
		Sender:        zeptomail.SenderProperties,
		Required:      []string{"to", "propertyId", "updateType", "bodyMessage"},
		RequiredLabel: "to, propertyId, updateType, and bodyMessage (plain text)",
		Subject: func(f Fields) string {
			return fmt.Sprintf("Property Update: ID %s - %s", f.str("propertyId"), f.str("updateType"))
		},
		Bindings: func(f Fields) map[string]any {
			return map[string]any{
				"recipientName": stringOr(f, "recipientName", "Property Contact"),
				"propertyId":    f.str("propertyId"),
				"updateType":    f.str("updateType"),
				"bodyMessage":   f.str("bodyMessage"),
			}
		},
		RecipientName: func(f Fields) string { return stringOr(f, "recipientName", "Property Contact") },
		SuccessMsg:    "Property email sent successfully.",
	},
	{
		Name:          templates.CategoryNoReply,
		Sender:        zeptomail.SenderNoReply,
		Required:      []string{"to", "subject", "bodyMessage"},
		RequiredLabel: "to, subject, and bodyMessage (plain text)",
		Subject:       func(f Fields) string { return f.str("subject") },
		Bindings: func(f Fields) map[string]any {
			return map[string]any{
				"recipientName": stringOr(f, "recipientName", "Valued User"),
				"subject":       f.str("subject"),
				"bodyMessage":   f.str("bodyMessage"),
			}
		},
		RecipientName: func(f Fields) string { return stringOr(f, "recipientName", "User") },
		SuccessMsg:    "NoReply email sent successfully.",
	},
	{
		Name:          templates.CategoryInfo,
		Sender:        zeptomail.SenderNoReply,
		Required:      []string{"to", "subject", "bodyMessage"},
		RequiredLabel: "to, subject, and bodyMessage (plain text)",
		Subject:       func(f Fields) string { return f.str("subject") },
		Bindings: func(f Fields) map[string]any {
			return map[string]any{
				"recipientName": stringOr(f, "recipientName", "Valued User"),
				"subject":       f.str("subject"),
				"bodyMessage":   f.str("bodyMessage"),
			}
		},
		RecipientName: func(f Fields) string { return stringOr(f, "recipientName", "User") },
		SuccessMsg:    "Info email sent successfully.",
	},
}

// Categories returns the declarative category table in route order.
func Categories() []Category {
	return categories
}
