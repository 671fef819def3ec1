package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"time"
)

// sendWithSMTP delivers a rendered message over plain SMTP. Deployments
// that set a Sendgrid key are routed there instead, so a single config
// flip moves mail off a local relay.
func (s *Service) sendWithSMTP(data EmailData, htmlContent, textContent string) error {
	if s.config.Sendgrid.APIKey != "" {
		return s.sendWithSendgrid(data, htmlContent, textContent)
	}

	config := s.config.SMTP[string(s.provider)]
	message := buildMultipartMessage(data, htmlContent, textContent)

	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)

	if err := smtp.SendMail(addr, auth, data.From, []string{data.To}, message); err != nil {
		return fmt.Errorf("sending email via SMTP: %w", err)
	}

	return nil
}

// buildMultipartMessage assembles a multipart/alternative body with the
// plaintext part first and the HTML part second, both base64-encoded.
func buildMultipartMessage(data EmailData, htmlContent, textContent string) []byte {
	var buf bytes.Buffer
	boundary := fmt.Sprintf("_vaultd_alt_%d", time.Now().UnixNano())

	fmt.Fprintf(&buf, "From: %s <%s>\r\n", data.FromName, data.From)
	fmt.Fprintf(&buf, "To: %s\r\n", data.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", data.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	writePart := func(contentType, content string) {
		fmt.Fprintf(&buf, "--%s\r\n", boundary)
		fmt.Fprintf(&buf, "Content-Type: %s; charset=utf-8\r\n", contentType)
		buf.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
		buf.WriteString(base64.StdEncoding.EncodeToString([]byte(content)))
		buf.WriteString("\r\n\r\n")
	}
	writePart("text/plain", textContent)
	writePart("text/html", htmlContent)

	fmt.Fprintf(&buf, "--%s--", boundary)

	return buf.Bytes()
}
