package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/Sunny-DSA/Sanpeggios-PFG-Analytics/models"
)

// AlertDigestEmailData holds data for a procurement alert digest email
type AlertDigestEmailData struct {
	Recipient string
	StoreName string
	RunDate   string
	Alerts    []models.Alert
}

// SendAlertDigestEmail sends a per-store digest of triggered procurement
// alerts via Resend
func (r *ResendClient) SendAlertDigestEmail(data AlertDigestEmailData) error {
	// Build alert HTML rows
	var alertRows strings.Builder
	for _, alert := range data.Alerts {
		badgeColor := "#79776d"
		if alert.Severity == "warning" {
			badgeColor = "#dc2626"
		}
		alertRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 12px; text-transform: uppercase; color: %s; font-weight: 600;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
      </tr>
    `, badgeColor, alert.Type, alert.Message))
	}

	// Build full HTML with inline styles
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Procurement Alerts - %s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5; padding: 16px;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 700px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 24px; font-weight: bold; color: #262622;">Procurement Alerts</h1>
        <p style="margin: 4px 0 0 0; font-size: 14px; color: #79776d;">%s — %s</p>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tbody>
            %s
          </tbody>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="font-size: 14px; color: #79776d;">Review the dashboard for full spike, budget and vendor detail.</p>
        <p style="font-size: 14px; color: #79776d;">© 2026 Sanpeggio's Pizza. All rights reserved.</p>
      </td>
    </tr>

  </table>
</body>
</html>
`, data.StoreName,
		data.StoreName, data.RunDate,
		alertRows.String(),
	)

	payload := map[string]interface{}{
		"to":      data.Recipient,
		"subject": fmt.Sprintf("%d procurement alerts for %s", len(data.Alerts), data.StoreName),
		"html":    htmlBody,
	}

	if err := r.send(payload); err != nil {
		return err
	}

	log.Printf("[resend] alert digest sent to %s for store %s (%d alerts)",
		data.Recipient, data.StoreName, len(data.Alerts))
	return nil
}
