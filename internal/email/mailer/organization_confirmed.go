// internal/email/mailer/organization_confirmed.go
package mailer

import "github.com/dangerclosesec/vaultd/internal/email"

// OrgConfirmedTemplateData contains data for the confirmation email template
type OrgConfirmedTemplateData struct {
	Name             string
	OrganizationName string
}

// SendOrganizationConfirmedEmail notifies a user that an admin confirmed
// their membership.
func SendOrganizationConfirmedEmail(s *email.Service, to, name, organizationName string) error {
	templateData := OrgConfirmedTemplateData{
		Name:             name,
		OrganizationName: organizationName,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Vaultd",
		Subject:      "You have been confirmed to " + organizationName,
		TemplateName: "organization_confirmed",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
