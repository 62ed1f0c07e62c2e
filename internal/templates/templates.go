package templates

// Liquid sources for the category templates. Markup is presentation
// content; the contract is the set of bindings each template consumes.
var sources = map[string]string{
	CategoryAdmin:        adminTemplate,
	CategoryCEO:          ceoTemplate,
	CategoryCustomerCare: customerCareTemplate,
	CategoryBookings:     bookingsTemplate,
	CategoryPayments:     paymentsTemplate,
	CategoryProperties:   propertiesTemplate,
	CategoryNoReply:      noReplyTemplate,
	CategoryInfo:         infoTemplate,
}

const baseStyles = `
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            line-height: 1.6;
            color: #333;
            background-color: #f5f7fa;
            padding: 20px;
        }
        .email-container {
            max-width: 650px;
            margin: 0 auto;
            background: #ffffff;
            border-radius: 12px;
            box-shadow: 0 5px 20px rgba(0, 0, 0, 0.08);
            overflow: hidden;
        }
        .header {
            background: linear-gradient(135deg, #1e3c72 0%, #2a5298 100%);
            color: white;
            padding: 25px;
            text-align: center;
        }
        .header .brand { font-size: 24px; font-weight: bold; letter-spacing: 1px; }
        .header .tagline { font-size: 14px; opacity: 0.85; margin-top: 6px; }
        .content { padding: 30px; }
        .greeting {
            font-size: 18px;
            margin-bottom: 20px;
            color: #2a5298;
            font-weight: 600;
        }
        .message-body { margin-bottom: 25px; font-size: 16px; color: #555; }
        .details {
            background: #e8f5e9;
            border: 1px solid #c8e6c9;
            border-radius: 10px;
            padding: 25px;
            margin: 25px 0;
        }
        .detail-row {
            display: flex;
            justify-content: space-between;
            padding: 12px 0;
            border-bottom: 1px solid #e0e0e0;
        }
        .detail-row:last-child { border-bottom: none; }
        .detail-label { font-weight: 600; color: #1e3c72; }
        .detail-value { font-weight: 600; color: #00c853; }
        .amount-highlight { font-size: 24px; color: #00c853; font-weight: 700; }
        .closing { margin-top: 25px; text-align: center; }
        .team-name {
            font-weight: 700;
            font-size: 18px;
            color: #1e3c72;
            margin-top: 10px;
        }
        .footer {
            background: #1a1a2e;
            color: #fff;
            padding: 25px;
            text-align: center;
            font-size: 14px;
        }
        .footer .registration { font-size: 12px; opacity: 0.7; margin-top: 15px; }
`

const footer = `
        <div class="footer">
            <p>{{ contactAddress }}</p>
            <p>Business: 0745108505 (WhatsApp)</p>
            <div class="registration">
                <p>Housika is a registered software development, design, and maintenance business in Kenya</p>
                <p>Business Registration Number: BN-36S5WLAP</p>
            </div>
        </div>
    </div>
</body>
</html>`

func page(title, heading, tagline, content string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>` + title + `</title>
    <style>` + baseStyles + `</style>
</head>
<body>
    <div class="email-container">
        <div class="header">
            <div class="brand">HOUSIKA</div>
            <div class="tagline">` + tagline + `</div>
        </div>
        <div class="content">
            <p class="greeting">Dear {{ recipientName }},</p>
` + content + `
            <div class="closing">
                <p>Thank you for choosing Housika.</p>
                <div class="team-name">` + heading + `</div>
            </div>
        </div>` + footer
}

var adminTemplate = page("Administrative Notice", "Housika Admin Team", "Administrative Notice", `
            <div class="message-body">
                <p>{{ bodyMessage | paragraphs }}</p>
            </div>
            <div class="details">
                <div class="detail-row">
                    <span class="detail-label">Subject:</span>
                    <span class="detail-value">{{ subject }}</span>
                </div>
            </div>
`)

var ceoTemplate = page("Executive Communication", "Office of the CEO", "A Message from the CEO", `
            <div class="message-body">
                <p>{{ message | paragraphs }}</p>
            </div>
            <div class="details">
                <div class="detail-row">
                    <span class="detail-label">Date:</span>
                    <span class="detail-value">{{ sendDate }}</span>
                </div>
            </div>
`)

var customerCareTemplate = page("Support Ticket Response", "Housika Customer Care Team", "Customer Care", `
            <div class="details">
                <div class="detail-row">
                    <span class="detail-label">Ticket Number:</span>
                    <span class="detail-value">#{{ caseId }}</span>
                </div>
            </div>
            <div class="message-body">
                <p>{{ bodyMessage | paragraphs }}</p>
            </div>
`)

var bookingsTemplate = page("Booking Confirmation", "Housika Bookings Team", "Booking Confirmed", `
            <div class="message-body">
                <p>Your booking has been confirmed. The details are below.</p>
            </div>
            <div class="details">
                <div class="detail-row">
                    <span class="detail-label">Booking ID:</span>
                    <span class="detail-value">{{ bookingId }}</span>
                </div>
                <div class="detail-row">
                    <span class="detail-label">Property:</span>
                    <span class="detail-value">{{ propertyName }}</span>
                </div>
                <div class="detail-row">
                    <span class="detail-label">Booking Date:</span>
                    <span class="detail-value">{{ bookingDate }}</span>
                </div>
                <div class="detail-row">
                    <span class="detail-label">Total Amount:</span>
                    <span class="amount-highlight">{{ totalAmount }}</span>
                </div>
            </div>
`)

var paymentsTemplate = page("Payment Confirmation", "Housika Payments Team", "Payment Successful", `
            <div class="message-body">
                <p>This confirms that we have successfully received your payment. Thank you for your transaction!</p>
            </div>
            <div class="details">
                <div class="detail-row">
                    <span class="detail-label">Transaction ID:</span>
                    <span class="detail-value">{{ transactionId }}</span>
                </div>
                <div class="detail-row">
                    <span class="detail-label">Amount Paid:</span>
                    <span class="amount-highlight">Ksh {{ amount }}</span>
                </div>
                <div class="detail-row">
                    <span class="detail-label">Payment Date:</span>
                    <span class="detail-value">{{ paymentDate }}</span>
                </div>
                <div class="detail-row">
                    <span class="detail-label">Status:</span>
                    <span class="detail-value">Completed</span>
                </div>
            </div>
            <div class="message-body">
                <p>This email serves as your official payment receipt. Please keep it for your records. If you did not authorize this payment, please contact us immediately.</p>
            </div>
`)

var propertiesTemplate = page("Property Update", "Housika Properties Team", "Property Update", `
            <div class="message-body">
                <p>A <strong>{{ updateType }}</strong> update has been issued for your property.</p>
            </div>
            <div class="details">
                <div class="detail-row">
                    <span class="detail-label">Property ID:</span>
                    <span class="detail-value">{{ propertyId }}</span>
                </div>
                <div class="detail-row">
                    <span class="detail-label">Update Type:</span>
                    <span class="detail-value">{{ updateType }}</span>
                </div>
                <div class="detail-row">
                    <span class="detail-label">Notification Date:</span>
                    <span class="detail-value">{{ today }}</span>
                </div>
            </div>
            <div class="message-body">
                <p>{{ bodyMessage | paragraphs }}</p>
            </div>
`)

var noReplyTemplate = page("Notification", "Housika Team", "Automated Notification", `
            <div class="message-body">
                <p>{{ bodyMessage | paragraphs }}</p>
            </div>
            <div class="message-body">
                <p>This is an automated notification. Please do not reply to this email.</p>
            </div>
`)

var infoTemplate = page("Information", "Housika Team", "Information", `
            <div class="message-body">
                <p>{{ bodyMessage | paragraphs }}</p>
            </div>
            <div class="message-body">
                <p>This mailbox is not monitored. For assistance, contact customer care.</p>
            </div>
`)
