package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"contact-form-backend/internal/domain"
)

const (
	notProvided   = "Not provided"
	noInterests   = "None"
	noFilesText   = "No files uploaded"
	subjectPrefix = "New Contact - "
)

// contactView is the normalized form of a request shared by both bodies
type contactView struct {
	FullName      string
	Email         string
	Phone         string
	ContactMethod string
	CompanyName   string
	NumEmployees  string
	Service       string
	Interests     string
	Files         []string
	Message       string
}

func newContactView(req *domain.ContactRequest) contactView {
	return contactView{
		FullName:      string(req.FullName),
		Email:         string(req.Email),
		Phone:         string(req.Phone),
		ContactMethod: string(req.ContactMethod),
		CompanyName:   orDefault(string(req.CompanyName), notProvided),
		NumEmployees:  orDefault(string(req.NumEmployees), notProvided),
		Service:       string(req.Service),
		Interests:     formatInterests(req.Interests),
		Files:         req.UploadedFiles,
		Message:       string(req.Message),
	}
}

func composeContactEmail(req *domain.ContactRequest) (*domain.ContactEmail, error) {
	view := newContactView(req)

	html, err := renderContactHTML(view)
	if err != nil {
		return nil, err
	}

	return &domain.ContactEmail{
		Subject:  subjectPrefix + string(req.FullName),
		ReplyTo:  string(req.Email),
		TextBody: renderContactText(view),
		HTMLBody: html,
	}, nil
}

func formatInterests(i domain.Interests) string {
	return orDefault(i.String(), noInterests)
}

// formatFilesText lists files as "File N: url", one per line
func formatFilesText(files []string) string {
	if len(files) == 0 {
		return noFilesText
	}
	lines := make([]string, len(files))
	for i, url := range files {
		lines[i] = fmt.Sprintf("File %d: %s", i+1, url)
	}
	return strings.Join(lines, "\n")
}

func renderContactText(v contactView) string {
	var b strings.Builder
	b.WriteString("Contact Form Submission\n\n")

	b.WriteString("Personal Information:\n")
	fmt.Fprintf(&b, "Full Name: %s\n", v.FullName)
	fmt.Fprintf(&b, "Email: %s\n", v.Email)
	fmt.Fprintf(&b, "Phone: %s\n", v.Phone)
	fmt.Fprintf(&b, "Contact Method: %s\n\n", v.ContactMethod)

	b.WriteString("Business Information:\n")
	fmt.Fprintf(&b, "Company Name: %s\n", v.CompanyName)
	fmt.Fprintf(&b, "Employees: %s\n", v.NumEmployees)
	fmt.Fprintf(&b, "Service: %s\n", v.Service)
	fmt.Fprintf(&b, "Interests: %s\n\n", v.Interests)

	b.WriteString("Files:\n")
	b.WriteString(formatFilesText(v.Files))
	b.WriteString("\n\n")

	b.WriteString("Message:\n")
	b.WriteString(v.Message)
	b.WriteString("\n")
	return b.String()
}

// contactEmailTemplate is the HTML body; html/template escapes every submitted value
const contactEmailTemplate = `<div>
  <h2>New Contact Form Submission</h2>
  <p>From Contact Website</p>

  <div>
    <h3>Contact Information</h3>
    <p><strong>Full Name:</strong> {{.FullName}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Contact Method:</strong> {{.ContactMethod}}</p>
  </div>

  <div>
    <h3>Business Details</h3>
    <p><strong>Company Name:</strong> {{.CompanyName}}</p>
    <p><strong>Number of Employees:</strong> {{.NumEmployees}}</p>
    <p><strong>Service Interested In:</strong> {{.Service}}</p>
    <p><strong>Interests:</strong> {{.Interests}}</p>
  </div>

  <div>
    <h3>Uploaded Files ({{len .Files}})</h3>
    {{- range $i, $url := .Files}}
    <p><strong>File {{inc $i}}:</strong> <a href="{{$url}}" target="_blank" rel="noopener noreferrer">{{$url}}</a> (Click to download)</p>
    {{- else}}
    <p>No files uploaded</p>
    {{- end}}
  </div>

  <div>
    <h3>Message</h3>
    <div>
      <p>{{.Message}}</p>
    </div>
  </div>
</div>
`

var contactHTML = template.Must(template.New("contact").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(contactEmailTemplate))

func renderContactHTML(v contactView) (string, error) {
	var body bytes.Buffer
	if err := contactHTML.Execute(&body, v); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
