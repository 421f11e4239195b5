package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corycamp/support-ticket-backend/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		role      authorization.UserRole
		wantEmail string
		wantRole  authorization.UserRole
		wantErr   bool
	}{
		{name: "normalizes email", email: "Alice@Example.com", role: authorization.RoleUser, wantEmail: "alice@example.com", wantRole: authorization.RoleUser},
		{name: "defaults role", email: "bob@example.com", wantEmail: "bob@example.com", wantRole: authorization.RoleUser},
		{name: "admin kept", email: "root@example.com", role: authorization.RoleAdmin, wantEmail: "root@example.com", wantRole: authorization.RoleAdmin},
		{name: "invalid role", email: "x@example.com", role: "owner", wantErr: true},
		{name: "invalid email", email: "not-an-email", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.email, tt.role)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, u.Email)
			assert.Equal(t, tt.wantRole, u.Role)
			assert.False(t, u.CreatedAt.IsZero())
		})
	}
}
