// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// ApplicationEmailData holds data for application outcome emails.
type ApplicationEmailData struct {
	SiteName         string
	OrganizationName string
	Reference        string
	Reason           string // rejection only
}

// BuildApprovalEmail creates the notification sent when an organization
// application is approved.
func BuildApprovalEmail(data ApplicationEmailData) Email {
	return Email{
		To:       "", // Set by caller
		Subject:  fmt.Sprintf("Your %s application has been approved", data.SiteName),
		TextBody: buildApprovalText(data),
		HTMLBody: buildOutcomeHTML("approval", approvalHTMLTemplate, data),
	}
}

// BuildRejectionEmail creates the notification sent when an organization
// application is rejected.
func BuildRejectionEmail(data ApplicationEmailData) Email {
	return Email{
		To:       "", // Set by caller
		Subject:  fmt.Sprintf("Update on your %s application", data.SiteName),
		TextBody: buildRejectionText(data),
		HTMLBody: buildOutcomeHTML("rejection", rejectionHTMLTemplate, data),
	}
}

func buildApprovalText(data ApplicationEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Good news! The application for %s has been approved.\n\n", data.OrganizationName))
	buf.WriteString(fmt.Sprintf("Application reference: %s\n\n", data.Reference))
	buf.WriteString(fmt.Sprintf("%s is now a registered partner organization. You can sign in to manage your organization's account.\n", data.OrganizationName))
	return buf.String()
}

func buildRejectionText(data ApplicationEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("The application for %s was not approved at this time.\n\n", data.OrganizationName))
	buf.WriteString(fmt.Sprintf("Application reference: %s\n", data.Reference))
	if data.Reason != "" {
		buf.WriteString(fmt.Sprintf("\nReason: %s\n", data.Reason))
	}
	buf.WriteString("\nYou may contact us if you believe this decision should be reconsidered.\n")
	return buf.String()
}

func buildOutcomeHTML(name, tmplText string, data ApplicationEmailData) string {
	tmpl := template.Must(template.New(name).Parse(tmplText))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const approvalHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Application Approved</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #166534;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151;">
                Good news! The application for <strong>{{.OrganizationName}}</strong> has been approved.
              </p>
              <p style="margin: 0 0 16px; font-size: 14px; color: #6b7280;">
                Application reference: <code>{{.Reference}}</code>
              </p>
              <p style="margin: 0; font-size: 14px; color: #374151;">
                {{.OrganizationName}} is now a registered partner organization. You can sign in to manage your organization's account.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

const rejectionHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Application Update</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #4f46e5;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151;">
                The application for <strong>{{.OrganizationName}}</strong> was not approved at this time.
              </p>
              <p style="margin: 0 0 16px; font-size: 14px; color: #6b7280;">
                Application reference: <code>{{.Reference}}</code>
              </p>
              {{if .Reason}}
              <p style="margin: 0 0 16px; font-size: 14px; color: #374151;">
                Reason: {{.Reason}}
              </p>
              {{end}}
              <p style="margin: 0; font-size: 14px; color: #6b7280;">
                You may contact us if you believe this decision should be reconsidered.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
