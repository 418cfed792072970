package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"erpctl/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// User is the admin profile returned by the login endpoint and cached
// alongside the access token.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PhoneNo   string `json:"phone_no"`
	GSTNo     string `json:"gstno"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Session struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	User         User      `json:"user"`
	SavedAt      time.Time `json:"saved_at"`
}

// Store holds the current session in memory and mirrors it to a JSON file
// so the token survives across invocations. The auth controller is the only
// writer; the HTTP client reads the token on every request and may Clear on
// a 401. Watchers are told about every change.
type Store struct {
	path   string
	logger *zap.Logger

	mu       sync.Mutex
	sess     *Session
	watchers []func()
}

func NewStore(cfg config.Config, logger *zap.Logger) *Store {
	s := &Store{
		path:   cfg.SessionFile,
		logger: logger.Named("session"),
	}
	if err := s.load(); err != nil {
		s.logger.Warn("discarding unreadable session file", zap.Error(err))
	}
	return s
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("parse session file: %w", err)
	}

	s.mu.Lock()
	s.sess = &sess
	s.mu.Unlock()
	return nil
}

// Set stores the session and persists it. Watchers fire after the state is
// visible to readers.
func (s *Store) Set(sess Session) error {
	if sess.SavedAt.IsZero() {
		sess.SavedAt = time.Now()
	}

	s.mu.Lock()
	s.sess = &sess
	s.mu.Unlock()

	if err := s.persist(&sess); err != nil {
		return err
	}

	s.notify()
	return nil
}

// Clear drops the session in memory and on disk. Safe to call when no
// session exists.
func (s *Store) Clear() {
	s.mu.Lock()
	had := s.sess != nil
	s.sess = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("removing session file", zap.Error(err))
	}

	if had {
		s.notify()
	}
}

// Current returns the stored session, or nil when there is none or the
// token has expired. An expired session is treated the same as no session.
func (s *Store) Current() *Session {
	s.mu.Lock()
	sess := s.sess
	s.mu.Unlock()

	if sess == nil || tokenExpired(sess.Token) {
		return nil
	}
	copied := *sess
	return &copied
}

// Token returns the current bearer token, or "" when anonymous or expired.
func (s *Store) Token() string {
	if sess := s.Current(); sess != nil {
		return sess.Token
	}
	return ""
}

// IsTokenExpired reports whether the stored token is missing, malformed or
// past its exp claim.
func (s *Store) IsTokenExpired() bool {
	s.mu.Lock()
	sess := s.sess
	s.mu.Unlock()

	if sess == nil {
		return true
	}
	return tokenExpired(sess.Token)
}

// Watch registers fn to run after every Set or Clear.
func (s *Store) Watch(fn func()) {
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	watchers := make([]func(), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn()
	}
}

func (s *Store) persist(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// tokenExpired decodes the exp claim without verifying the signature; the
// server is the authority, this only decides whether a request is worth
// sending. Anything undecodable counts as expired.
func tokenExpired(token string) bool {
	if token == "" {
		return true
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Before(time.Now())
}
