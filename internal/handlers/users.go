// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"regsite/internal/middleware"
	"regsite/internal/models"
	"regsite/internal/rbac"
	"regsite/internal/store"
)

type createUserRequest struct {
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      rbac.Role `json:"role"`
}

func (req *createUserRequest) validate() map[string]string {
	errs := map[string]string{}
	checkRequired(errs, map[string]string{
		"email":     req.Email,
		"password":  req.Password,
		"firstName": req.FirstName,
		"lastName":  req.LastName,
	})
	if req.Email != "" && !validEmail(req.Email) {
		errs["email"] = "Email must be a valid email address"
	}
	if req.Password != "" && len(req.Password) < minPasswordLen {
		errs["password"] = "Password must be at least 8 characters"
	}
	if req.Role != "" && !req.Role.Valid() {
		errs["role"] = "Role must be one of super-admin, admin, editor, content-manager"
	}
	return errs
}

// updateUserRequest is the partial update payload; omitted fields keep
// their stored values.
type updateUserRequest struct {
	Email     *string    `json:"email"`
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Role      *rbac.Role `json:"role"`
	IsActive  *bool      `json:"isActive"`
}

func (req *updateUserRequest) validate() map[string]string {
	errs := map[string]string{}
	checkProvided(errs, map[string]*string{
		"email":     req.Email,
		"firstName": req.FirstName,
		"lastName":  req.LastName,
	})
	if req.Email != nil && *req.Email != "" && !validEmail(*req.Email) {
		errs["email"] = "Email must be a valid email address"
	}
	if req.Role != nil && !req.Role.Valid() {
		errs["role"] = "Role must be one of super-admin, admin, editor, content-manager"
	}
	return errs
}

// ListUsers returns user accounts, filterable by role or search term.
func (api *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	p := pageFromQuery(r, 10)

	role := rbac.Role(r.URL.Query().Get("role"))
	if role != "" && !role.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown role")
		return
	}

	f := store.UserFilter{
		Role:   role,
		Search: r.URL.Query().Get("search"),
	}

	items, total, err := api.users.List(f, p)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if items == nil {
		items = []models.User{}
	}
	respondList(w, items, p, total)
}

// GetUser returns one user account by id.
func (api *API) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	u, err := api.users.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if u == nil {
		respondNotFound(w, "User")
		return
	}
	respondData(w, http.StatusOK, u)
}

// CreateUser registers a new account. New accounts default to the
// content-manager role.
func (api *API) CreateUser(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())

	var req createUserRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	existing, err := api.users.FindByEmail(req.Email)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if existing != nil {
		respondError(w, http.StatusBadRequest, "A user with this email already exists")
		return
	}

	role := req.Role
	if role == "" {
		role = rbac.RoleContentManager
	}

	created, err := api.users.Create(req.Email, req.Password, req.FirstName, req.LastName, role)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditCreate, "User", &created.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusCreated, created)
}

// UpdateUser merges the provided fields into an account's profile, role
// and active flag.
func (api *API) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	raw, ok := decodeRaw(w, r, &req)
	if !ok {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	u, err := api.users.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if u == nil {
		respondNotFound(w, "User")
		return
	}

	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if email != u.Email {
			existing, err := api.users.FindByEmail(email)
			if err != nil {
				api.respondInternal(w, r, err)
				return
			}
			if existing != nil {
				respondError(w, http.StatusBadRequest, "A user with this email already exists")
				return
			}
		}
		u.Email = email
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	updated, err := api.users.Update(u)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if updated == nil {
		respondNotFound(w, "User")
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditUpdate, "User", &updated.ID, raw); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, updated)
}

// DeleteUser removes an account. Accounts cannot delete themselves.
func (api *API) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFromCtx(r.Context())
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if id == ident.UserID {
		respondError(w, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	u, err := api.users.FindByID(id)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}
	if u == nil {
		respondNotFound(w, "User")
		return
	}

	if err := api.users.Delete(id); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	if err := api.trail.Record(r, ident.UserID, models.AuditDelete, "User", &id, nil); err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "User deleted")
}
