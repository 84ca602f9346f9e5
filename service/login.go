package service

import (
	"errors"

	"github.com/ncobase/dashboard/config"
)

var (
	// ErrUnknownProvider is returned for providers the backend does not offer.
	ErrUnknownProvider = errors.New("unknown login provider")
	// ErrUnknownRole is returned for test login roles other than user, moderator and admin.
	ErrUnknownRole = errors.New("unknown test login role")
)

// TestProvider is the provider name used for test logins.
const TestProvider = "test"

// Provider is one button of the login page.
type Provider struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Background string `json:"background"`
	Color      string `json:"color"`
	// Role is set for test logins.
	Role string `json:"role,omitempty"`
}

// Path returns the dashboard route that starts this login.
func (p Provider) Path() string {
	if p.Role != "" {
		return "/login/" + TestProvider + "?user=" + p.Role
	}
	return "/login/" + p.Name
}

var providers = []Provider{
	{Name: "github", Label: "Login with github", Background: "#333333", Color: "white"},
	{Name: "google", Label: "Login with Google", Background: "red", Color: "white"},
	{Name: "linkedin", Label: "Login with Linkedin", Background: "blue", Color: "white"},
	{Name: "oidc", Label: "Login with OIDC", Background: "white", Color: "#333333"},
	{Name: TestProvider, Label: "Test login as user", Background: "white", Color: "#333333", Role: "user"},
	{Name: TestProvider, Label: "Test login as moderator", Background: "white", Color: "#333333", Role: "moderator"},
	{Name: TestProvider, Label: "Test login as admin", Background: "white", Color: "#333333", Role: "admin"},
}

// LoginService builds the backend URLs that start a login.
// It keeps no state; every call is independent.
type LoginService struct {
	backendDomain   string
	dashboardDomain string
}

// NewLoginService creates a login service from the configuration.
func NewLoginService(cfg *config.Config) *LoginService {
	return &LoginService{
		backendDomain:   cfg.BackendDomain,
		dashboardDomain: cfg.DashboardDomain,
	}
}

// Providers lists the login buttons in display order.
func (s *LoginService) Providers() []Provider {
	out := make([]Provider, len(providers))
	copy(out, providers)
	return out
}

// AuthURL returns the backend URL that starts the provider's login flow.
func (s *LoginService) AuthURL(provider string) (string, error) {
	switch provider {
	case "github", "google", "linkedin", "oidc":
		return s.backendDomain + "/auth/" + provider + "?redirectTo=" + s.dashboardDomain, nil
	default:
		return "", ErrUnknownProvider
	}
}

// TestLoginURL returns the backend URL that logs in as a test user with role.
func (s *LoginService) TestLoginURL(role string) (string, error) {
	switch role {
	case "user", "moderator", "admin":
		return s.backendDomain + "/auth/" + TestProvider + "?redirectTo=" + s.dashboardDomain + "&user=" + role, nil
	default:
		return "", ErrUnknownRole
	}
}
