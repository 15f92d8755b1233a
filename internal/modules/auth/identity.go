package auth

// Identity represents a normalized external authentication identity
// returned by the OAuth provider. It contains facts only, no decisions.
type Identity struct {
	Subject string // provider-scoped unique user identifier (sub)
	Name    string // display name asserted by the provider, may be empty
	Email   string // email asserted by the provider, may be empty
	Picture string // avatar URL asserted by the provider, may be empty
}
