package service

import (
	"context"
	"crypto/subtle"
	"time"

	"bot-admin-panel/internal/common/config"
	"bot-admin-panel/internal/common/logger"
	"bot-admin-panel/internal/features/auth/models"
	"bot-admin-panel/internal/features/auth/repository"
	"bot-admin-panel/internal/features/auth/telegram"
)

// adminRedirect is where every successful login lands.
const adminRedirect = "/admin/info"

var allowedRoles = map[string]bool{
	"admin":       true,
	"super_admin": true,
}

// FactsProvider is the remote authorization lookup, called once per Telegram
// login attempt. Retries and caching are the collaborator's concern.
type FactsProvider interface {
	UserFacts(ctx context.Context, userID int64) (models.UserFacts, error)
}

// LoginResult is the structured outcome of a credential submission. Credential
// failures are values here, never errors.
type LoginResult struct {
	Success  bool
	Token    string
	Redirect string
	Error    string
	Profile  *models.Profile
}

type AuthService interface {
	LoginBasic(ctx context.Context, username, password string) LoginResult
	LoginTelegram(ctx context.Context, initData string) LoginResult
	Logout(token string)
	// Authenticate resolves a session token to a live session.
	Authenticate(token string) (*models.Session, bool)
	// DisplayName formats an identity for audit correlation. Never used for
	// authorization decisions.
	DisplayName(session *models.Session) string
}

type authService struct {
	repo  repository.SessionRepository
	facts FactsProvider

	adminUsername       string
	adminPassword       string
	botToken            string
	sessionTTL          time.Duration
	inactivityThreshold time.Duration
}

func NewAuthService(cfg *config.Config, repo repository.SessionRepository, facts FactsProvider) AuthService {
	return &authService{
		repo:                repo,
		facts:               facts,
		adminUsername:       cfg.Auth.AdminUsername,
		adminPassword:       cfg.Auth.AdminPassword,
		botToken:            cfg.Telegram.BotToken,
		sessionTTL:          cfg.Auth.SessionTTL,
		inactivityThreshold: cfg.Auth.InactivityThreshold,
	}
}

func (s *authService) LoginBasic(ctx context.Context, username, password string) LoginResult {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		return LoginResult{Error: "Invalid credentials"}
	}

	identity := models.Identity{Method: models.AuthMethodBasic, Username: username}
	token, err := s.repo.Create(identity, s.sessionTTL)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create session")
		return LoginResult{Error: "Session creation failed"}
	}

	return LoginResult{Success: true, Token: token, Redirect: adminRedirect}
}

func (s *authService) LoginTelegram(ctx context.Context, initData string) LoginResult {
	if initData == "" {
		return LoginResult{Error: "No init data provided"}
	}

	if !telegram.Verify(initData, s.botToken) {
		return LoginResult{Error: "Invalid Telegram authentication"}
	}

	profile := telegram.ParseUser(initData)
	if profile.ID == 0 {
		return LoginResult{Error: "No user data found"}
	}

	facts, err := s.facts.UserFacts(ctx, profile.ID)
	if err != nil {
		// Transport failure is access denied, not a system error.
		logger.Error().Err(err).Int64("user_id", profile.ID).Msg("Authorization lookup failed")
		return LoginResult{Error: "Access denied"}
	}
	if !s.accessAllowed(profile.ID, facts) {
		return LoginResult{Error: "Access denied"}
	}

	identity := models.Identity{Method: models.AuthMethodTelegram, Profile: profile}
	token, err := s.repo.Create(identity, s.sessionTTL)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create session")
		return LoginResult{Error: "Session creation failed"}
	}

	return LoginResult{Success: true, Token: token, Redirect: adminRedirect, Profile: &profile}
}

func (s *authService) accessAllowed(userID int64, facts models.UserFacts) bool {
	if !facts.Found {
		logger.Warn().Int64("user_id", userID).Msg("Unknown user attempted admin access")
		return false
	}
	if facts.IsBlocked {
		logger.Warn().Int64("user_id", userID).Msg("Blocked user attempted admin access")
		return false
	}
	if !allowedRoles[facts.Role] {
		logger.Warn().Int64("user_id", userID).Str("role", facts.Role).Msg("Role not allowed for admin access")
		return false
	}

	if lastActive, ok := parseLastActivity(facts.LastActivity); ok {
		inactive := time.Since(lastActive)
		if inactive > s.inactivityThreshold {
			logger.Warn().Int64("user_id", userID).Dur("inactive", inactive).Msg("Inactive user attempted admin access")
			return false
		}
	}
	return true
}

// parseLastActivity accepts RFC 3339 timestamps (with Z or numeric offsets)
// and a naive datetime treated as UTC. Unparsable values mean "no inactivity
// data" and never block access.
func parseLastActivity(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func (s *authService) Logout(token string) {
	if token == "" {
		return
	}
	s.repo.Destroy(token)
}

func (s *authService) Authenticate(token string) (*models.Session, bool) {
	if token == "" {
		return nil, false
	}
	return s.repo.Get(token)
}

func (s *authService) DisplayName(session *models.Session) string {
	if session == nil {
		return ""
	}
	return session.Identity.DisplayName()
}
