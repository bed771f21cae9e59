package auth

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"
)

const sessionCookieName = "bierecode_session"

// SessionDuration is how long a login session stays valid.
const SessionDuration = 7 * 24 * time.Hour

// SessionCookieName returns the session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// GenerateSessionToken returns a new opaque session token.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// SessionCookie builds the cookie carrying a session token.
func SessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that clears the session (logout).
func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
