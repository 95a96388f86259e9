package process_payment_event

import (
	"fmt"
	"html"

	"github.com/m04kA/SMC-QueueSkipService/pkg/venuename"
)

// buildConfirmationSubject собирает тему письма-подтверждения
func buildConfirmationSubject(venueID string) string {
	return fmt.Sprintf("Your queue skip at %s is confirmed", venuename.Format(venueID))
}

// buildConfirmationBody собирает HTML-тело письма-подтверждения.
// entryTime - уже отрендеренное время входа с поправкой на час.
func buildConfirmationBody(customerName, venueID, bookingDate, entryTime string) string {
	name := html.EscapeString(customerName)
	if name == "" {
		name = "there"
	}
	venue := html.EscapeString(venuename.Format(venueID))
	date := html.EscapeString(bookingDate)
	entry := html.EscapeString(entryTime)

	body := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Queue skip confirmed</h2>
  <p>Hi %s,</p>
  <p>Your payment has been received and your queue skip at <strong>%s</strong> is confirmed.</p>
  <p><strong>Date:</strong> %s</p>`, name, venue, date)

	if entry != "" {
		body += fmt.Sprintf(`
  <p><strong>Entry before:</strong> %s</p>`, entry)
	}

	body += `
  <p>Show this email at the door to skip the line.</p>
  <p>See you there!</p>
</body>
</html>`
	return body
}
