package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"time"
)

const (
	stateCookieName = "__oauth_state"
	pkceCookieName  = "__oauth_pkce"
	flowCookieTTL   = 5 * time.Minute
)

func setFlowCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(flowCookieTTL.Seconds()),
	})
}

func generateState(w http.ResponseWriter) string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)

	state := base64.RawURLEncoding.EncodeToString(b)
	setFlowCookie(w, stateCookieName, state)
	return state
}

func validateState(r *http.Request) bool {
	stateQuery := r.URL.Query().Get("state")
	if stateQuery == "" {
		return false
	}

	cookie, err := r.Cookie(stateCookieName)
	if err != nil {
		return false
	}

	return cookie.Value == stateQuery
}

// generatePKCE stores the verifier in a flow cookie and returns the
// derived code challenge for the authorization URL.
func generatePKCE(w http.ResponseWriter) string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)

	verifier := base64.RawURLEncoding.EncodeToString(b)

	hash := sha256.Sum256([]byte(verifier))
	challenge := base64.RawURLEncoding.EncodeToString(hash[:])

	setFlowCookie(w, pkceCookieName, verifier)
	return challenge
}

func pkceVerifier(r *http.Request) string {
	cookie, err := r.Cookie(pkceCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
