// internal/email/mailer/organization_invite.go
package mailer

import "github.com/dangerclosesec/vaultd/internal/email"

// OrgInviteTemplateData contains data for the invitation email template
type OrgInviteTemplateData struct {
	OrganizationName string
	InviteLink       string
}

// SendOrganizationInviteEmail invites an email address to join an
// organization.
func SendOrganizationInviteEmail(s *email.Service, to, organizationName, inviteLink string) error {
	templateData := OrgInviteTemplateData{
		OrganizationName: organizationName,
		InviteLink:       inviteLink,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Vaultd",
		Subject:      "Join " + organizationName,
		TemplateName: "organization_invite",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
