package vaultd

import "embed"

// EmailFS holds the html/plaintext email templates shipped with the
// binary.
//
//go:embed templates/emails
var EmailFS embed.FS
