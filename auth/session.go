// Package auth issues and verifies the session token carried by the
// session_id cookie. The token is an HMAC-signed claim over the member id
// rather than the id itself, so a client cannot mint a session for another
// member by editing the cookie value.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie read on every authenticated request.
const CookieName = "session_id"

var ErrInvalidSession = errors.New("invalid session")

type sessionClaims struct {
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL reports the configured session lifetime, used for the cookie max-age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Mint signs a session token for the given member.
func (m *Manager) Mint(memberID int64) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(memberID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the member id the token
// was minted for. Any failure collapses to ErrInvalidSession.
func (m *Manager) Verify(tokenString string) (int64, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidSession
	}

	memberID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidSession
	}
	return memberID, nil
}

// SetSessionCookie attaches the session token as an HttpOnly, SameSite=Lax
// cookie on the whole site.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

// ClearSessionCookie deletes the session cookie on logout.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
