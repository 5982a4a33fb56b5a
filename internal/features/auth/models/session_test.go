package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentityDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		want     string
	}{
		{
			name: "telegram full profile",
			identity: Identity{
				Method:  AuthMethodTelegram,
				Profile: Profile{ID: 42, FirstName: "Gamma", Username: "gambo_jo"},
			},
			want: "Gamma (@gambo_jo)",
		},
		{
			name: "telegram first name only",
			identity: Identity{
				Method:  AuthMethodTelegram,
				Profile: Profile{ID: 42, FirstName: "Gamma"},
			},
			want: "Gamma",
		},
		{
			name: "telegram username only",
			identity: Identity{
				Method:  AuthMethodTelegram,
				Profile: Profile{ID: 42, Username: "gambo_jo"},
			},
			want: "@gambo_jo",
		},
		{
			name: "telegram id only",
			identity: Identity{
				Method:  AuthMethodTelegram,
				Profile: Profile{ID: 42},
			},
			want: "user_42",
		},
		{
			name:     "telegram empty profile",
			identity: Identity{Method: AuthMethodTelegram},
			want:     "telegram_user",
		},
		{
			name: "telegram whitespace fields fall through",
			identity: Identity{
				Method:  AuthMethodTelegram,
				Profile: Profile{ID: 7, FirstName: "  ", Username: " "},
			},
			want: "user_7",
		},
		{
			name:     "basic",
			identity: Identity{Method: AuthMethodBasic, Username: "admin"},
			want:     "admin",
		},
		{
			name:     "unknown method",
			identity: Identity{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.identity.DisplayName())
		})
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	session := &Session{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, session.Expired(now))
	assert.False(t, session.Expired(now.Add(time.Hour-time.Second)))
	assert.True(t, session.Expired(now.Add(time.Hour)), "expiry instant counts as expired")
	assert.True(t, session.Expired(now.Add(2*time.Hour)))
}
