package cookie

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// ErrEmptySessionID is returned when a session cookie would carry no value.
var ErrEmptySessionID = errors.New("session ID cannot be empty")

// SessionOptions controls the dashboard session cookie.
type SessionOptions struct {
	Name   string
	MaxAge time.Duration
	Secure bool
	Domain string
}

// formatDomain formats the domain
func formatDomain(domain string) string {
	if domain != "localhost" && !strings.HasPrefix(domain, ".") {
		return "." + domain
	}
	return domain
}

// SetSessionID sets the session id cookie
func SetSessionID(w http.ResponseWriter, sessionID string, opts SessionOptions) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	cookie := &http.Cookie{
		Name:     opts.Name,
		Value:    sessionID,
		MaxAge:   int(opts.MaxAge.Seconds()),
		Path:     "/",
		Secure:   opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if opts.Domain != "" {
		cookie.Domain = formatDomain(opts.Domain)
	}

	http.SetCookie(w, cookie)
	return nil
}

// GetSessionID gets the session id cookie
func GetSessionID(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", err
	}
	if c.Value == "" {
		return "", ErrEmptySessionID
	}
	return c.Value, nil
}

// ClearSessionID clears the session id cookie
func ClearSessionID(w http.ResponseWriter, opts SessionOptions) {
	cookie := &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	if opts.Domain != "" {
		cookie.Domain = formatDomain(opts.Domain)
	}

	http.SetCookie(w, cookie)
}

// ForwardHeader rebuilds the Cookie header from the request, leaving out the
// named cookies. The dashboard's own session cookie is dropped before the
// header is forwarded to the backend.
func ForwardHeader(r *http.Request, exclude ...string) string {
	parts := make([]string, 0, len(r.Cookies()))
	for _, c := range r.Cookies() {
		if contains(exclude, c.Name) {
			continue
		}
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
