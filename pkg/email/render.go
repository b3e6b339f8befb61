package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/microcosm-cc/bluemonday"
)

const (
	NotProvided  = "Not provided"
	NotSpecified = "Not specified"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Phone       string
	ProjectType string
	Message     string
}

type htmlView struct {
	ContactEmailData
	MessageHTML htmltemplate.HTML
}

// contactHTMLTemplate is the HTML template for contact form emails
const contactHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: #f9f9f9; padding: 15px; border-left: 4px solid #0066cc; }
    </style>
</head>
<body>
    <div class="container">
        <h2>New Contact Form Submission</h2>
        <p><span class="label">Name:</span> {{.SenderName}}</p>
        <p><span class="label">Email:</span> {{.SenderEmail}}</p>
        <p><span class="label">Phone:</span> {{.Phone}}</p>
        <p><span class="label">Project Type:</span> {{.ProjectType}}</p>
        <p class="label">Message:</p>
        <div class="message-box">{{.MessageHTML}}</div>
    </div>
</body>
</html>`

const contactTextTemplate = `New Contact Form Submission

Name: {{.SenderName}}
Email: {{.SenderEmail}}
Phone: {{.Phone}}
Project Type: {{.ProjectType}}

Message:
{{.Message}}
`

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.New("contact_html").Parse(contactHTMLTemplate))
	textTmpl = texttemplate.Must(texttemplate.New("contact_text").Parse(contactTextTemplate))

	// Runs on already-escaped text, so user input never parses as markup.
	messagePolicy = bluemonday.StrictPolicy()
)

// RenderContact renders the HTML and plain-text bodies of a contact email.
// Empty Phone and ProjectType are replaced with placeholders.
func RenderContact(data ContactEmailData) (string, string, error) {
	if data.Phone == "" {
		data.Phone = NotProvided
	}
	if data.ProjectType == "" {
		data.ProjectType = NotSpecified
	}

	var html bytes.Buffer
	view := htmlView{ContactEmailData: data, MessageHTML: messageToHTML(data.Message)}
	if err := htmlTmpl.Execute(&html, view); err != nil {
		return "", "", fmt.Errorf("failed to execute html template: %w", err)
	}

	var text bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("failed to execute text template: %w", err)
	}

	return html.String(), text.String(), nil
}

func messageToHTML(message string) htmltemplate.HTML {
	message = strings.ReplaceAll(message, "\r\n", "\n")
	safe := messagePolicy.Sanitize(htmltemplate.HTMLEscapeString(message))
	return htmltemplate.HTML(strings.ReplaceAll(safe, "\n", "<br>"))
}
