// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"regsite/internal/models"
	"regsite/internal/rbac"
	"regsite/internal/token"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// identityKey is the context key for the authenticated identity.
const identityKey contextKey = "identity"

// Identity is the caller identity attached to the request context after a
// successful token verification.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   rbac.Role
}

// UserFinder loads users for token validation. Implemented by
// store.UserStore; declared here so the gate can be tested without a
// database.
type UserFinder interface {
	FindByID(id uuid.UUID) (*models.User, error)
}

// Gate is the two-stage access control middleware: Authenticate resolves
// the bearer token into an identity, Authorize checks the identity's role
// against the policy table.
type Gate struct {
	tokens *token.Service
	users  UserFinder
}

// NewGate creates an access control gate.
func NewGate(tokens *token.Service, users UserFinder) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Authenticate rejects requests without a valid access token for an active
// user. On success the identity is attached to the request context.
func (g *Gate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := g.resolve(r)
		if !ok {
			unauthorized(w, "Authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), ident)))
	})
}

// Authorize rejects requests whose identity's role is not in the policy
// table's set for op. Requires a prior Authenticate in the chain; a missing
// identity is treated as unauthenticated rather than forbidden.
func (g *Gate) Authorize(op rbac.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident := IdentityFromCtx(r.Context())
			if ident == nil {
				// Unreachable when routes compose Authenticate first.
				unauthorized(w, "Authentication required")
				return
			}

			if !rbac.Allowed(op, ident.Role) {
				forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuth attaches an identity when a valid token is presented but
// never rejects. Read endpoints use it to reveal drafts and inactive items
// to authenticated callers while staying public.
func (g *Gate) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ident, ok := g.resolve(r); ok {
			r = r.WithContext(withIdentity(r.Context(), ident))
		}
		next.ServeHTTP(w, r)
	})
}

// resolve extracts and verifies the bearer token and loads the user.
// Every failure mode collapses into (nil, false); callers decide whether
// that is fatal.
func (g *Gate) resolve(r *http.Request) (*Identity, bool) {
	raw := token.ExtractBearer(r.Header.Get("Authorization"))
	if raw == "" {
		return nil, false
	}

	claims, err := g.tokens.VerifyAccessToken(raw)
	if err != nil {
		return nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, false
	}

	// The token may outlive the account: confirm the user still exists
	// and is active.
	user, err := g.users.FindByID(userID)
	if err != nil || user == nil || !user.IsActive {
		return nil, false
	}

	return &Identity{
		UserID: user.ID,
		Email:  claims.Email,
		Role:   user.Role,
	}, true
}

func withIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFromCtx extracts the authenticated identity from the request
// context. Returns nil for anonymous requests.
func IdentityFromCtx(ctx context.Context) *Identity {
	ident, _ := ctx.Value(identityKey).(*Identity)
	return ident
}

// unauthorized writes a 401 in the uniform envelope.
func unauthorized(w http.ResponseWriter, message string) {
	writeEnvelope(w, http.StatusUnauthorized, message)
}

// forbidden writes a 403 in the uniform envelope.
func forbidden(w http.ResponseWriter) {
	writeEnvelope(w, http.StatusForbidden, "You do not have permission to perform this action")
}

func writeEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
