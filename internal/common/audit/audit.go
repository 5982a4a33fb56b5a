// Package audit emits session-correlated audit and security records on four
// independent channels: general user actions, API calls, auth events and
// security events. Each channel has its own destination and enable flag; a
// disabled channel returns before any event is built.
package audit

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"bot-admin-panel/internal/common/config"
)

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) level() zerolog.Level {
	switch s {
	case SeverityLow:
		return zerolog.InfoLevel
	case SeverityMedium:
		return zerolog.WarnLevel
	case SeverityHigh:
		return zerolog.ErrorLevel
	case SeverityCritical:
		return zerolog.FatalLevel
	default:
		return zerolog.WarnLevel
	}
}

type Recorder struct {
	cfg config.AuditConfig

	general  zerolog.Logger
	api      zerolog.Logger
	auth     zerolog.Logger
	security zerolog.Logger

	closers []io.Closer
}

// New opens the per-channel log files under cfg.Dir. With cfg.Console set,
// every channel is mirrored to stdout.
func New(cfg config.AuditConfig) (*Recorder, error) {
	r := &Recorder{cfg: cfg}
	if !cfg.Enabled {
		nop := zerolog.Nop()
		r.general, r.api, r.auth, r.security = nop, nop, nop, nop
		return r, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	open := func(name, channel string) (zerolog.Logger, error) {
		f, err := os.OpenFile(filepath.Join(cfg.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), err
		}
		r.closers = append(r.closers, f)
		var w io.Writer = f
		if cfg.Console {
			w = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
		}
		return newChannel(w, channel), nil
	}

	var err error
	if r.general, err = open("audit.log", "audit"); err != nil {
		return nil, err
	}
	if r.api, err = open("audit_api.log", "api"); err != nil {
		return nil, err
	}
	if r.auth, err = open("audit_auth.log", "auth"); err != nil {
		return nil, err
	}
	if r.security, err = open("audit_security.log", "security"); err != nil {
		return nil, err
	}
	return r, nil
}

// NewWithWriters builds a recorder over caller-supplied destinations. Used by
// tests and by setups that ship audit records somewhere other than local files.
func NewWithWriters(cfg config.AuditConfig, general, api, auth, security io.Writer) *Recorder {
	return &Recorder{
		cfg:      cfg,
		general:  newChannel(general, "audit"),
		api:      newChannel(api, "api"),
		auth:     newChannel(auth, "auth"),
		security: newChannel(security, "security"),
	}
}

func newChannel(w io.Writer, channel string) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("channel", channel).Logger()
}

func (r *Recorder) Close() {
	for _, c := range r.closers {
		_ = c.Close()
	}
}

// LogAPICall records one handled request. Status 0 means the handler produced
// no status (treated as informational).
func (r *Recorder) LogAPICall(endpoint, method, username string, status int, ip, userAgent string, duration time.Duration) {
	if !r.cfg.Enabled || !r.cfg.APICalls {
		return
	}

	lvl := zerolog.InfoLevel
	if status >= 400 {
		lvl = zerolog.WarnLevel
	}

	ev := r.api.WithLevel(lvl).
		Str("method", method).
		Str("endpoint", endpoint).
		Str("ip", ip).
		Str("user_agent", userAgent).
		Float64("duration_s", duration.Seconds())
	if status > 0 {
		ev = ev.Int("status", status)
	}
	if username != "" {
		ev = ev.Str("username", username)
	}
	ev.Msg("api call")
}

func (r *Recorder) LogUserAction(username, action, target string, success bool, ip string) {
	if !r.cfg.Enabled || !r.cfg.UserActions {
		return
	}

	lvl := zerolog.InfoLevel
	if !success {
		lvl = zerolog.WarnLevel
	}

	ev := r.general.WithLevel(lvl).
		Str("username", username).
		Str("action", action).
		Bool("success", success)
	if target != "" {
		ev = ev.Str("target", target)
	}
	if ip != "" {
		ev = ev.Str("ip", ip)
	}
	ev.Msg("user action")
}

func (r *Recorder) LogAuthEvent(eventType, username string, success bool, ip string) {
	if !r.cfg.Enabled || !r.cfg.AuthEvents {
		return
	}

	lvl := zerolog.InfoLevel
	if !success {
		lvl = zerolog.WarnLevel
	}

	ev := r.auth.WithLevel(lvl).
		Str("event", eventType).
		Bool("success", success)
	if username != "" {
		ev = ev.Str("username", username)
	}
	if ip != "" {
		ev = ev.Str("ip", ip)
	}
	ev.Msg("auth event")
}

// LogSecurityEvent maps severity LOW/MEDIUM/HIGH/CRITICAL onto
// info/warn/error/fatal levels; unknown severities log as warnings. The fatal
// level only tags the record, it never terminates the process.
func (r *Recorder) LogSecurityEvent(eventType string, severity Severity, username, ip, details string) {
	if !r.cfg.Enabled || !r.cfg.SecurityEvents {
		return
	}

	ev := r.security.WithLevel(severity.level()).
		Str("event", eventType).
		Str("severity", string(severity))
	if username != "" {
		ev = ev.Str("username", username)
	}
	if ip != "" {
		ev = ev.Str("ip", ip)
	}
	if details != "" {
		ev = ev.Str("details", details)
	}
	ev.Msg("security event")
}
