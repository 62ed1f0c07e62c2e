package zeptomail

import "fmt"

// SenderKey identifies a fixed sender identity in the directory.
type SenderKey string

const (
	SenderCEO          SenderKey = "CEO"
	SenderAdmin        SenderKey = "ADMIN"
	SenderNoReply      SenderKey = "NO_REPLY"
	SenderPayments     SenderKey = "PAYMENTS"
	SenderBookings     SenderKey = "BOOKINGS"
	SenderVerify       SenderKey = "VERIFY"
	SenderCustomerCare SenderKey = "CUSTOMER_CARE"
	SenderUpgrade      SenderKey = "UPGRADE"
	SenderProperties   SenderKey = "PROPERTIES"
)

// Sender is the (address, display name) pair used as the from of an
// outbound email. Identities are fixed per category and never mutated.
type Sender struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

var senders = map[SenderKey]Sender{
	SenderCEO:          {Address: "ceo@housika.co.ke", Name: "Housika CEO"},
	SenderAdmin:        {Address: "admin@housika.co.ke", Name: "Housika Admin"},
	SenderNoReply:      {Address: "noreply@housika.co.ke", Name: "Housika No Reply"},
	SenderPayments:     {Address: "payments@housika.co.ke", Name: "Housika Payments"},
	SenderBookings:     {Address: "bookings@housika.co.ke", Name: "Housika Bookings"},
	SenderVerify:       {Address: "verify@housika.co.ke", Name: "Housika Verify"},
	SenderCustomerCare: {Address: "customercare@housika.co.ke", Name: "Housika Customer Care"},
	SenderUpgrade:      {Address: "upgrade@housika.co.ke", Name: "Housika Account Upgrade"},
	SenderProperties:   {Address: "properties@housika.co.ke", Name: "Housika Properties"},
}

// SenderFor resolves a sender identity from the directory. An unknown key
// is a wiring fault: every route is bound to a fixed key, so this path is
// only reachable through a programming error.
func SenderFor(key SenderKey) (Sender, error) {
	sender, ok := senders[key]
	if !ok {
		return Sender{}, newError(KindConfig, fmt.Sprintf("unknown sender type: %s", key))
	}
	return sender, nil
}
