package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The identity index is the only thing standing between two concurrent
// identical create batches; it must be unique, treat NULL identity
// columns as equal, and cover every subject and object column.
func TestAccessPolicyIdentityIndexStatement(t *testing.T) {
	assert.Contains(t, accessPolicyIdentityIndex, "CREATE UNIQUE INDEX")
	assert.Contains(t, accessPolicyIdentityIndex, "NULLS NOT DISTINCT")
	assert.Contains(t, accessPolicyIdentityIndex, "ON access_policies ")

	for _, column := range []string{
		"organization_user_id",
		"group_id",
		"service_account_id",
		"granted_project_id",
		"granted_service_account_id",
	} {
		assert.Contains(t, accessPolicyIdentityIndex, column)
	}
}
