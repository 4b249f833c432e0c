// Package session implements the signed, encrypted cookie session.
//
// All session state lives client-side in the "__session" cookie; there is no
// server-side session storage. Authenticity and confidentiality come from
// gorilla/securecookie (HMAC-SHA256 + AES), keyed from SESSION_SECRET.
// A cookie that fails to decode — tampered, expired, wrong key — is treated
// as "no session", never as an error.
package session

import (
	"crypto/sha256"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gorilla/securecookie"

	"github.com/haolin/birthday-card/internal/domain"
)

const (
	// CookieName matches the cookie the frontend has always used.
	CookieName = "__session"

	// MaxAge is 30 days, in seconds.
	MaxAge = 30 * 24 * 60 * 60
)

// Store encodes and decodes the session cookie.
type Store struct {
	codec        *securecookie.SecureCookie
	isProduction bool
}

// New creates a Store keyed from secret. The hash and block keys are derived
// with SHA-256 so any secret length works; isProduction controls the Secure
// cookie attribute.
func New(secret string, isProduction bool) *Store {
	hashKey := sha256.Sum256([]byte(secret))
	blockKey := sha256.Sum256([]byte("block:" + secret))

	codec := securecookie.New(hashKey[:], blockKey[:])
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(MaxAge)

	return &Store{codec: codec, isProduction: isProduction}
}

// Get decodes a session cookie value into the stored user. It fails soft:
// missing, malformed, tampered or expired cookies all return nil.
func (s *Store) Get(cookieValue string) *domain.User {
	if cookieValue == "" {
		return nil
	}
	var user domain.User
	if err := s.codec.Decode(CookieName, cookieValue, &user); err != nil {
		return nil
	}
	if user.ID == "" {
		return nil
	}
	return &user
}

// Save encodes user into a cookie value.
func (s *Store) Save(user *domain.User) (string, error) {
	return s.codec.Encode(CookieName, user)
}

// Cookie builds the Set-Cookie for an encoded session value.
func (s *Store) Cookie(value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   MaxAge,
		HTTPOnly: true,
		Secure:   s.isProduction,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// DestroyCookie builds a Set-Cookie that expires the session immediately.
// Destroying an absent session is a no-op for the browser, so logout is
// idempotent.
func (s *Store) DestroyCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   s.isProduction,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
