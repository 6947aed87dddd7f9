// file: internals/features/users/session/service/session_service.go
package service

import (
	"errors"
	"strings"
	"time"

	helper "contatorapido_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// Checker is the only thing views need from a session.
type Checker interface {
	IsAuthenticated(c *fiber.Ctx) bool
}

// CheckerFunc adapts a plain function (handy for fakes).
type CheckerFunc func(c *fiber.Ctx) bool

func (f CheckerFunc) IsAuthenticated(c *fiber.Ctx) bool { return f(c) }

type Options struct {
	Secret         string
	TTL            time.Duration
	AccessCodeHash string // bcrypt; empty = no access code
	SecureCookie   bool
}

type sessionClaims struct {
	IsAuthenticated bool `json:"is_authenticated"`
	jwt.RegisteredClaims
}

// Manager keeps the "is authenticated" flag in a signed HttpOnly cookie.
type Manager struct {
	secret         []byte
	ttl            time.Duration
	accessCodeHash []byte
	secure         bool
	now            func() time.Time
}

var ErrMissingSecret = errors.New("session: secret is required")

func NewManager(o Options) (*Manager, error) {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		return nil, ErrMissingSecret
	}
	ttl := o.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	m := &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: o.SecureCookie,
		now:    time.Now,
	}
	if h := strings.TrimSpace(o.AccessCodeHash); h != "" {
		m.accessCodeHash = []byte(h)
	}
	return m, nil
}

// RequiresAccessCode reports whether login asks for a code.
func (m *Manager) RequiresAccessCode() bool {
	return len(m.accessCodeHash) > 0
}

// CheckAccessCode is always true when no code is configured.
func (m *Manager) CheckAccessCode(code string) bool {
	if !m.RequiresAccessCode() {
		return true
	}
	return bcrypt.CompareHashAndPassword(m.accessCodeHash, []byte(code)) == nil
}

// Sign builds a session token valid for the configured TTL.
func (m *Manager) Sign() (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		IsAuthenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	raw, err := tok.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return raw, exp, nil
}

// Verify reports whether raw is a valid, unexpired session token.
func (m *Manager) Verify(raw string) bool {
	if raw == "" {
		return false
	}
	claims := &sessionClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return false
	}
	return claims.IsAuthenticated
}

func (m *Manager) IsAuthenticated(c *fiber.Ctx) bool {
	return m.Verify(helper.GetRawSessionToken(c))
}

// Issue sets the session cookie.
func (m *Manager) Issue(c *fiber.Ctx) error {
	raw, exp, err := m.Sign()
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     helper.SessionCookieName,
		Value:    raw,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: "Lax",
		Expires:  exp,
	})
	return nil
}

// Clear removes the session cookie.
func (m *Manager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.SessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: "Lax",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
