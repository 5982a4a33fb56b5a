package models

import (
	"fmt"
	"strings"
	"time"
)

// SessionCookie is the bearer cookie carrying the session token.
const SessionCookie = "session_id"

type AuthMethod string

const (
	AuthMethodBasic    AuthMethod = "basic"
	AuthMethodTelegram AuthMethod = "telegram"
)

// Profile carries the Telegram user fields attached to a Telegram session.
type Profile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// Identity says who a session belongs to. Method is the tag: basic sessions
// carry Username, telegram sessions carry Profile.
type Identity struct {
	Method   AuthMethod `json:"method"`
	Username string     `json:"username,omitempty"`
	Profile  Profile    `json:"profile,omitempty"`
}

// DisplayName formats the identity for audit correlation: telegram sessions
// render as "First (@username)" with fallbacks down to "user_<id>", basic
// sessions as the bare username. Never used for authorization.
func (i Identity) DisplayName() string {
	switch i.Method {
	case AuthMethodTelegram:
		firstName := strings.TrimSpace(i.Profile.FirstName)
		username := strings.TrimSpace(i.Profile.Username)
		switch {
		case firstName != "" && username != "":
			return fmt.Sprintf("%s (@%s)", firstName, username)
		case firstName != "":
			return firstName
		case username != "":
			return "@" + username
		case i.Profile.ID != 0:
			return fmt.Sprintf("user_%d", i.Profile.ID)
		default:
			return "telegram_user"
		}
	case AuthMethodBasic:
		return i.Username
	default:
		return ""
	}
}

type Session struct {
	Token     string    `json:"-"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type LoginRequest struct {
	AuthType string `json:"auth_type"`
	Username string `json:"username"`
	Password string `json:"password"`
	InitData string `json:"initData"`
}

type LoginResponse struct {
	Success  bool     `json:"success"`
	Redirect string   `json:"redirect,omitempty"`
	Error    string   `json:"error,omitempty"`
	User     *Profile `json:"user,omitempty"`
}

// UserFacts is the authorization data fetched from the bot API for one
// Telegram login attempt. Never cached.
type UserFacts struct {
	Found        bool
	Role         string
	IsBlocked    bool
	LastActivity string
}
