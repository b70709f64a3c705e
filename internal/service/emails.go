package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/egeorganic/site-api/internal/models"
)

// Subjects of the transactional emails sent by the form pipeline.
const (
	subjectContactAdmin      = "New Contact Form Submission: %s"
	subjectNewsletterWelcome = "Welcome to EGE Organic Newsletter"
	subjectLeadAdmin         = "New Learn More Form Submission"
	subjectLeadConfirmation  = "Thank You for Your Interest - EGE Organic"
)

const emailTemplateSource = `
{{define "contact_admin"}}<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>{{end}}

{{define "newsletter_welcome"}}<h2>Thank you for subscribing to EGE Organic!</h2>
<p>You've been successfully subscribed with the email: <strong>{{.Email}}</strong></p>
<p>We'll keep you updated with our latest organic products, news, and exclusive offers.</p>
<p>Stay tuned!</p>
<p>&mdash; The EGE Organic Team</p>{{end}}

{{define "lead_admin"}}<h2>New Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Mobile:</strong> {{.Mobile}}</p>
<p><strong>User Type:</strong> {{.UserType}}</p>
<p><strong>Submission ID:</strong> {{.SubmissionID}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p>Please follow up with this inquiry as soon as possible.</p>{{end}}

{{define "lead_confirmation"}}<h2>Thank You for Your Interest!</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for reaching out to EGE Organic. We have received your inquiry and our team will contact you shortly.</p>
<p><strong>Your Contact Details:</strong></p>
<p>Email: {{.Email}}<br/>
   Phone: {{.Mobile}}</p>
<p>If you have any urgent questions, please don't hesitate to contact us at {{.AdminEmail}}.</p>
<p>Best regards,<br/>The EGE Organic Team</p>{{end}}
`

// emailRenderer produces the HTML bodies for notification emails. All
// user-supplied text is passed through a strict sanitizer before it is
// interpolated, so the rendered fragments never carry submitted markup.
type emailRenderer struct {
	sanitizer *bluemonday.Policy
	templates *template.Template
}

func newEmailRenderer() *emailRenderer {
	return &emailRenderer{
		sanitizer: bluemonday.StrictPolicy(),
		templates: template.Must(template.New("emails").Parse(emailTemplateSource)),
	}
}

func (r *emailRenderer) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", name, err)
	}
	return buf.String(), nil
}

// clean strips any markup from user-supplied text. The result is safe to
// interpolate as HTML without a second escaping pass.
func (r *emailRenderer) clean(text string) template.HTML {
	return template.HTML(r.sanitizer.Sanitize(text)) // #nosec G203 -- sanitized above
}

// cleanMultiline additionally converts line breaks into <br> so message
// bodies keep their paragraph structure in the HTML email.
func (r *emailRenderer) cleanMultiline(text string) template.HTML {
	sanitized := r.sanitizer.Sanitize(text)
	return template.HTML(strings.ReplaceAll(sanitized, "\n", "<br>")) // #nosec G203 -- sanitized above
}

// ContactAdmin renders the admin notification for a contact message.
func (r *emailRenderer) ContactAdmin(name, email, subject, message string) (string, string, error) {
	html, err := r.render("contact_admin", map[string]interface{}{
		"Name":    r.clean(name),
		"Email":   r.clean(email),
		"Subject": r.clean(subject),
		"Message": r.cleanMultiline(message),
	})
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf(subjectContactAdmin, subject), html, nil
}

// NewsletterWelcome renders the welcome email for a new subscriber.
func (r *emailRenderer) NewsletterWelcome(email string) (string, string, error) {
	html, err := r.render("newsletter_welcome", map[string]interface{}{
		"Email": r.clean(email),
	})
	if err != nil {
		return "", "", err
	}
	return subjectNewsletterWelcome, html, nil
}

// LeadAdmin renders the admin notification for a captured lead.
func (r *emailRenderer) LeadAdmin(lead models.LeadInquiry) (string, string, error) {
	userType := lead.UserType
	if userType == "" {
		userType = "Not specified"
	}

	html, err := r.render("lead_admin", map[string]interface{}{
		"Name":         r.clean(lead.Name),
		"Email":        r.clean(lead.Email),
		"Mobile":       r.clean(lead.Mobile),
		"UserType":     r.clean(userType),
		"SubmissionID": lead.ReferenceID,
		"Date":         lead.CreatedAt.Format("Jan 2, 2006 15:04 MST"),
	})
	if err != nil {
		return "", "", err
	}
	return subjectLeadAdmin, html, nil
}

// LeadConfirmation renders the confirmation email sent to the lead.
func (r *emailRenderer) LeadConfirmation(lead models.LeadInquiry, adminEmail string) (string, string, error) {
	html, err := r.render("lead_confirmation", map[string]interface{}{
		"Name":       r.clean(lead.Name),
		"Email":      r.clean(lead.Email),
		"Mobile":     r.clean(lead.Mobile),
		"AdminEmail": adminEmail,
	})
	if err != nil {
		return "", "", err
	}
	return subjectLeadConfirmation, html, nil
}
