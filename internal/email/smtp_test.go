package email

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMultipartMessage(t *testing.T) {
	data := EmailData{
		From:     "noreply@vaultd.io",
		FromName: "Vaultd",
		To:       "alice@example.com",
		Subject:  "You have been invited",
	}

	message := string(buildMultipartMessage(data, "<p>hello</p>", "hello"))

	assert.Contains(t, message, "From: Vaultd <noreply@vaultd.io>\r\n")
	assert.Contains(t, message, "To: alice@example.com\r\n")
	assert.Contains(t, message, "Subject: You have been invited\r\n")
	assert.Contains(t, message, "Content-Type: multipart/alternative; boundary=")

	textIdx := strings.Index(message, "Content-Type: text/plain")
	htmlIdx := strings.Index(message, "Content-Type: text/html")
	require.NotEqual(t, -1, textIdx)
	require.NotEqual(t, -1, htmlIdx)
	assert.Less(t, textIdx, htmlIdx, "plaintext part should precede the HTML part")

	assert.Contains(t, message, base64.StdEncoding.EncodeToString([]byte("hello")))
	assert.Contains(t, message, base64.StdEncoding.EncodeToString([]byte("<p>hello</p>")))
	assert.True(t, strings.HasSuffix(message, "--"), "message should end with the closing boundary")
}
