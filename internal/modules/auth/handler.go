package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendordesk/vendordesk-backend/internal/modules/user"
)

type Handler struct {
	provider Provider
	sessions *Sessions
	users    user.Service
}

func NewHandler(provider Provider, sessions *Sessions, users user.Service) *Handler {
	return &Handler{
		provider: provider,
		sessions: sessions,
		users:    users,
	}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Get("/auth/login", h.login)
	router.Get("/auth/callback", h.callback)
	router.Post("/auth/logout", h.logout)
	router.With(RequireSession(h.sessions)).Get("/auth/me", h.me)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	state := generateState(w)
	codeChallenge := generatePKCE(w)

	http.Redirect(w, r, h.provider.AuthCodeURL(state, codeChallenge), http.StatusFound)
}

func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	if !validateState(r) {
		respondError(w, http.StatusUnauthorized, "invalid state")
		return
	}

	// Provider reported an error (user denied consent etc). Restart the
	// flow rather than surface a broken callback.
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		log.Printf("oauth callback returned error: %s", errParam)
		http.Redirect(w, r, "/auth/login", http.StatusFound)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "missing authorization code")
		return
	}

	codeVerifier := pkceVerifier(r)
	if codeVerifier == "" {
		respondError(w, http.StatusUnauthorized, "missing pkce verifier")
		return
	}

	identity, err := h.provider.ExchangeCode(r.Context(), code, codeVerifier)
	if err != nil {
		log.Printf("oauth code exchange failed: %v", err)
		respondError(w, http.StatusUnauthorized, "authentication failed")
		return
	}

	u, err := h.users.EnsureUser(r.Context(), identity.Subject, identity.Name, identity.Email, identity.Picture)
	if err != nil {
		if errors.Is(err, user.ErrMissingSubject) {
			respondError(w, http.StatusUnauthorized, "authentication failed")
			return
		}
		log.Printf("user bootstrap failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	token, expiresAt, err := h.sessions.Issue(u.ID)
	if err != nil {
		log.Printf("session issue failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	SetCookie(w, token, expiresAt)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("failed to load user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	respondJSON(w, http.StatusOK, u)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
