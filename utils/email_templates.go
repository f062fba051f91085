package utils

import (
	"fmt"

	"tourism-api/models"
)

// orDash substitutes the placeholder the admin dashboard expects for empty
// optional fields.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// StaffNewRequestEmail renders the notification sent to the staff inbox when
// a new custom tour request arrives.
func StaffNewRequestEmail(req *models.CustomTourRequest) (string, string) {
	subject := fmt.Sprintf("New custom tour request: %s, %d days", req.Country, req.Days)

	body := fmt.Sprintf(`<h2>New custom tour request</h2>
<p>A new request was submitted through the website.</p>
<table cellpadding="6" style="border-collapse:collapse;">
<tr><td><b>Full name</b></td><td>%s</td></tr>
<tr><td><b>Email</b></td><td>%s</td></tr>
<tr><td><b>Phone</b></td><td>%s</td></tr>
<tr><td><b>WhatsApp</b></td><td>%s</td></tr>
<tr><td><b>Nationality</b></td><td>%s</td></tr>
<tr><td><b>Preferred contact</b></td><td>%s</td></tr>
<tr><td><b>Destination</b></td><td>%s</td></tr>
<tr><td><b>Days</b></td><td>%d</td></tr>
<tr><td><b>Group size</b></td><td>%s</td></tr>
<tr><td><b>Start month</b></td><td>%s</td></tr>
<tr><td><b>Budget</b></td><td>%s</td></tr>
<tr><td><b>Tour details</b></td><td>%s</td></tr>
<tr><td><b>Short description</b></td><td>%s</td></tr>
<tr><td><b>Source</b></td><td>%s</td></tr>
</table>`,
		orDash(req.Customer.FullName),
		orDash(req.Customer.Email),
		orDash(req.Customer.Phone),
		orDash(req.Customer.Whatsapp),
		orDash(req.Customer.Nationality),
		orDash(req.Customer.ContactMethod),
		orDash(req.Country),
		req.Days,
		orDash(req.GroupSize),
		orDash(req.TravelPreferences.StartMonth),
		orDash(req.TravelPreferences.Budget),
		orDash(req.TravelPreferences.DetailsAboutTour),
		orDash(req.ShortDescription),
		orDash(req.Source),
	)

	return subject, body
}

// CustomerApprovalEmail renders the confirmation addressed to the customer
// once their request has been approved.
func CustomerApprovalEmail(req *models.CustomTourRequest) (string, string) {
	subject := fmt.Sprintf("Your custom tour to %s has been approved", req.Country)

	body := fmt.Sprintf(`<h2>Good news, %s!</h2>
<p>Your custom tour request has been <b>approved</b>. Here is a summary of your trip:</p>
<table cellpadding="6" style="border-collapse:collapse;">
<tr><td><b>Destination</b></td><td>%s</td></tr>
<tr><td><b>Days</b></td><td>%d</td></tr>
<tr><td><b>Group size</b></td><td>%s</td></tr>
<tr><td><b>Start month</b></td><td>%s</td></tr>
<tr><td><b>Budget</b></td><td>%s</td></tr>
</table>
<p>Our team will reach out via %s to finalize the details.</p>`,
		orDash(req.Customer.FullName),
		orDash(req.Country),
		req.Days,
		orDash(req.GroupSize),
		orDash(req.TravelPreferences.StartMonth),
		orDash(req.TravelPreferences.Budget),
		orDash(req.Customer.ContactMethod),
	)

	return subject, body
}

// StaffContactEmail renders the notification for a contact form submission.
func StaffContactEmail(c *models.ContactSubmission) (string, string) {
	subject := fmt.Sprintf("New contact message from %s", c.FullName)

	body := fmt.Sprintf(`<h2>New contact form message</h2>
<table cellpadding="6" style="border-collapse:collapse;">
<tr><td><b>Full name</b></td><td>%s</td></tr>
<tr><td><b>Email</b></td><td>%s</td></tr>
<tr><td><b>Phone</b></td><td>%s</td></tr>
<tr><td><b>Subject</b></td><td>%s</td></tr>
</table>
<p>%s</p>`,
		orDash(c.FullName),
		orDash(c.Email),
		orDash(c.Phone),
		orDash(c.Subject),
		orDash(c.Message),
	)

	return subject, body
}
