// Package session keeps the signed, client-held session cookie. A session
// carries the authenticated user id and any flash messages waiting to be
// shown; there is no server-side session store.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Flash categories used by the views.
const (
	Success = "success"
	Info    = "info"
	Danger  = "danger"
)

const contextKey = "gearshop.session"

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

type Session struct {
	UserID  int64
	Flashes []Flash

	fromCookie bool
	dirty      bool
}

// Login binds the session to userID.
func (s *Session) Login(userID int64) {
	s.UserID = userID
	s.dirty = true
}

// Logout drops the user id. Calling it on an anonymous session is harmless.
func (s *Session) Logout() {
	if s.UserID != 0 {
		s.UserID = 0
		s.dirty = true
	}
}

func (s *Session) Authenticated() bool { return s.UserID > 0 }

func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
	s.dirty = true
}

// PopFlashes returns pending flashes and clears them.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	if len(flashes) > 0 {
		s.Flashes = nil
		s.dirty = true
	}
	return flashes
}

func (s *Session) empty() bool {
	return s.UserID == 0 && len(s.Flashes) == 0
}

type claims struct {
	UserID  int64   `json:"uid,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// Options configures a Manager.
type Options struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// Manager signs, verifies and transports sessions.
type Manager struct {
	secret []byte
	opts   Options
	now    func() time.Time
}

func NewManager(secret []byte, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "gearshop_session"
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = 7 * 24 * time.Hour
	}
	return &Manager{secret: secret, opts: opts, now: time.Now}
}

func (m *Manager) CookieName() string { return m.opts.CookieName }

// Encode signs s into a cookie value.
func (m *Manager) Encode(s *Session) (string, error) {
	now := m.now()
	c := claims{
		UserID:  s.UserID,
		Flashes: s.Flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.opts.MaxAge)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return token, nil
}

// Decode verifies value and returns the session it carries.
func (m *Manager) Decode(value string) (*Session, error) {
	var c claims
	_, err := jwt.ParseWithClaims(value, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &Session{UserID: c.UserID, Flashes: c.Flashes, fromCookie: true}, nil
}

// Middleware loads the request's session into the gin context and exposes
// the user id under UserIDKey. A missing, tampered or expired cookie yields
// an anonymous session.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := &Session{}
		if value, err := c.Cookie(m.opts.CookieName); err == nil && value != "" {
			if decoded, err := m.Decode(value); err == nil {
				s = decoded
			} else {
				// stale cookie, overwrite it on the next save
				s.fromCookie = true
				s.dirty = true
			}
		}
		c.Set(contextKey, s)
		if s.Authenticated() {
			c.Set(UserIDKey, s.UserID)
		}
		c.Next()
	}
}

// Save writes the session cookie when the session changed. It must run
// before the response body is written.
func (m *Manager) Save(c *gin.Context) error {
	s := Get(c)
	if !s.dirty {
		return nil
	}

	if s.empty() {
		if s.fromCookie {
			m.setCookie(c, "", -1)
		}
		s.dirty = false
		return nil
	}

	value, err := m.Encode(s)
	if err != nil {
		return err
	}
	m.setCookie(c, value, int(m.opts.MaxAge.Seconds()))
	s.dirty = false
	return nil
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, value, maxAge, "/", "", m.opts.Secure, true)
}

// Get returns the request's session. Outside the middleware it returns a
// fresh anonymous session bound to c.
func Get(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := &Session{}
	c.Set(contextKey, s)
	return s
}

// UserID returns the authenticated user id for the request.
func UserID(c *gin.Context) (int64, bool) {
	s := Get(c)
	if !s.Authenticated() {
		return 0, false
	}
	return s.UserID, true
}
