package auth

import "context"

// Provider defines the contract the external auth provider must implement.
// Implementations return identity facts only and must not perform user
// creation or session management.
type Provider interface {
	// AuthCodeURL returns the OAuth authorization URL. State and PKCE
	// parameters are provided by the caller.
	AuthCodeURL(state string, codeChallenge string) string

	// ExchangeCode exchanges the authorization code for provider
	// credentials and returns a normalized identity.
	ExchangeCode(ctx context.Context, code string, codeVerifier string) (*Identity, error)
}
