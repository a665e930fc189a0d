package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"maison-decor/models"
)

func fromAddress() string {
	if from := os.Getenv("SMTP_FROM"); from != "" {
		return from
	}
	return os.Getenv("SMTP_USER")
}

func enquiryAddress() string {
	if to := os.Getenv("ENQUIRY_EMAIL"); to != "" {
		return to
	}
	return os.Getenv("SMTP_USER")
}

func formatUSD(amount float64) string {
	str := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(str, ".")

	n := len(intPart)
	if n <= 3 {
		return "$" + intPart + "." + decPart
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return "$" + b.String() + "." + decPart
}

const emailStyle = `
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #a87b4f; }
        .detail-box { background-color: #faf6f1; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .items-table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        .items-table th, .items-table td { padding: 10px; border-bottom: 1px solid #eee; text-align: left; }
        .items-table th { background-color: #faf6f1; }
        .total-row td { font-weight: bold; border-top: 2px solid #a87b4f; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
`

func emailShell(heading, inner string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>%s</style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Maison D&eacute;cor</div>
        </div>
        <h2 style="color: #333;">%s</h2>
        %s
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
            <p>&copy; 2024 Maison D&eacute;cor. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
`, emailStyle, heading, inner)
}

func contactDetailBox(name, email, phone string) string {
	return fmt.Sprintf(`
        <div class="detail-box">
            <p><strong>Name:</strong> %s</p>
            <p><strong>Email:</strong> %s</p>
            <p><strong>Phone:</strong> %s</p>
        </div>
`, name, email, phone)
}

func composeContactNotification(req models.ContactRequest) models.OutboundEmail {
	inner := contactDetailBox(req.Name, req.Email, req.Phone) + fmt.Sprintf(`
        <p><strong>Message:</strong></p>
        <p>%s</p>
`, req.Message)

	return models.OutboundEmail{
		From:    fromAddress(),
		To:      enquiryAddress(),
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Contact Message from %s", req.Name),
		HTML:    emailShell("New Contact Message", inner),
	}
}

func composeContactConfirmation(req models.ContactRequest) models.OutboundEmail {
	inner := fmt.Sprintf(`
        <p>Hello %s,</p>
        <p>Thank you for reaching out to us. We have received your message and will respond within 24 hours.</p>
        <div class="detail-box">
            <p><strong>Your message:</strong></p>
            <p>%s</p>
        </div>
        <p style="color: #666; font-size: 14px;">Warm regards,<br>The Maison D&eacute;cor Team</p>
`, req.Name, req.Message)

	return models.OutboundEmail{
		From:    fromAddress(),
		To:      req.Email,
		Subject: "We received your message - Maison Décor",
		HTML:    emailShell("Message Received", inner),
	}
}

func itemsTable(items []models.EnquiryItem, totalValue float64) string {
	var rows strings.Builder
	for _, item := range items {
		subtotal := item.Price * float64(item.Quantity)
		rows.WriteString(fmt.Sprintf(`
                <tr>
                    <td>%s</td>
                    <td>%d</td>
                    <td>%s</td>
                    <td>%s</td>
                </tr>`, item.Name, item.Quantity, formatUSD(item.Price), formatUSD(subtotal)))
	}

	return fmt.Sprintf(`
        <table class="items-table">
            <thead>
                <tr><th>Product</th><th>Qty</th><th>Unit Price</th><th>Subtotal</th></tr>
            </thead>
            <tbody>%s
                <tr class="total-row">
                    <td colspan="3">Total</td>
                    <td>%s</td>
                </tr>
            </tbody>
        </table>
`, rows.String(), formatUSD(totalValue))
}

func composeEnquiryNotification(req models.EnquiryRequest, enquiryID string) models.OutboundEmail {
	inner := fmt.Sprintf(`
        <p><strong>Enquiry ID:</strong> %s</p>
`, enquiryID) + contactDetailBox(req.Name, req.Email, req.Phone) + fmt.Sprintf(`
        <p><strong>Message:</strong></p>
        <p>%s</p>
        <h3 style="color: #333;">Requested Items (%d)</h3>
`, req.Message, req.TotalItems) + itemsTable(req.Items, req.TotalValue)

	return models.OutboundEmail{
		From:    fromAddress(),
		To:      enquiryAddress(),
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Product Enquiry from %s", req.Name),
		HTML:    emailShell("New Product Enquiry", inner),
	}
}

func composeEnquiryConfirmation(req models.EnquiryRequest, enquiryID string) models.OutboundEmail {
	inner := fmt.Sprintf(`
        <p>Hello %s,</p>
        <p>Thank you for your enquiry. We have received your request and will respond within 24 hours.</p>
        <div class="detail-box">
            <p><strong>Enquiry ID:</strong> %s</p>
            <p><strong>Items:</strong> %d</p>
            <p><strong>Estimated Value:</strong> %s</p>
        </div>
`, req.Name, enquiryID, req.TotalItems, formatUSD(req.TotalValue)) + itemsTable(req.Items, req.TotalValue) + `
        <p style="color: #666; font-size: 14px;">Warm regards,<br>The Maison D&eacute;cor Team</p>
`

	return models.OutboundEmail{
		From:    fromAddress(),
		To:      req.Email,
		Subject: fmt.Sprintf("Enquiry Received %s - Maison Décor", enquiryID),
		HTML:    emailShell("Enquiry Received", inner),
	}
}
