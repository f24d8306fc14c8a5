// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"regsite/internal/middleware"
	"regsite/internal/models"
)

// Login verifies credentials and issues an access/refresh token pair.
// Bad credentials and inactive accounts both yield the same 401, so the
// endpoint leaks nothing about which accounts exist.
func (api *API) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	errs := map[string]string{}
	checkRequired(errs, map[string]string{"email": req.Email, "password": req.Password})
	if len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	user, err := api.users.FindByEmail(req.Email)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if user == nil || !user.IsActive || !api.users.CheckPassword(user, req.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	pair, err := api.tokens.IssuePair(user)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.users.UpdateLastLogin(user.ID, time.Now()); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, user.ID, models.AuditLogin, "User", &user.ID, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"user":   user,
		"tokens": pair,
	})
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (api *API) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RefreshToken == "" {
		respondValidation(w, map[string]string{"refreshToken": "refreshToken is required"})
		return
	}

	claims, err := api.tokens.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	// Re-check the account: a refresh token must not resurrect a
	// deactivated or deleted user.
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}
	user, err := api.users.FindByID(uid)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if user == nil || !user.IsActive {
		respondError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	access, err := api.tokens.IssueAccessToken(user)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{"accessToken": access})
}

// Logout records the logout event. Tokens are stateless, so this is an
// audit marker rather than a revocation.
func (api *API) Logout(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	if err := api.trail.Record(r, ident.UserID, models.AuditLogout, "User", &ident.UserID, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Logged out")
}

// Me returns the authenticated user's profile.
func (api *API) Me(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	user, err := api.users.FindByID(ident.UserID)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if user == nil {
		respondNotFound(w, "User")
		return
	}

	respondData(w, http.StatusOK, user)
}

// ChangePassword verifies the current password before setting a new one.
func (api *API) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"currentPassword": req.CurrentPassword,
		"newPassword":     req.NewPassword,
	})
	if len(req.NewPassword) > 0 && len(req.NewPassword) < minPasswordLen {
		errs["newPassword"] = "newPassword must be at least 8 characters"
	}
	if len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	user, err := api.users.FindByID(ident.UserID)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if user == nil {
		respondNotFound(w, "User")
		return
	}
	if !api.users.CheckPassword(user, req.CurrentPassword) {
		respondError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	if err := api.users.UpdatePassword(user.ID, req.NewPassword); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	changes, _ := json.Marshal(map[string]string{"field": "password", "action": "changed"})
	if err := api.trail.Record(r, user.ID, models.AuditUpdate, "User", &user.ID, changes); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Password updated")
}
