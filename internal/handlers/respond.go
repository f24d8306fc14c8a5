// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"regsite/internal/store"
)

// envelope is the uniform JSON response shape for every endpoint.
type envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Errors     any         `json:"errors,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
}

// pagination describes the window of a list response.
type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// newPagination builds the pagination block from a normalized page and a
// filtered total.
func newPagination(p store.Page, total int) *pagination {
	return &pagination{
		Page:  p.Number,
		Limit: p.Limit,
		Total: total,
		Pages: p.Pages(total),
	}
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondData writes a success envelope with a payload.
func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// respondList writes a success envelope with a payload and pagination.
func respondList(w http.ResponseWriter, data any, p store.Page, total int) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: newPagination(p, total)})
}

// respondMessage writes a success envelope carrying only a message.
func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

// respondError writes a failure envelope with the given status and message.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// respondValidation writes a 400 with field-level messages.
func respondValidation(w http.ResponseWriter, errors map[string]string) {
	writeJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errors,
	})
}

// respondNotFound writes the uniform 404.
func respondNotFound(w http.ResponseWriter, what string) {
	respondError(w, http.StatusNotFound, what+" not found")
}

// respondInternal logs the error and writes a 500. The detail is included
// in the message only outside production.
func (api *API) respondInternal(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	msg := "Internal server error"
	if api.cfg.IsDev() {
		msg = err.Error()
	}
	respondError(w, http.StatusInternalServerError, msg)
}

// decodeBody parses a JSON request body into dst, writing a 400 on
// malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// decodeRaw parses a JSON request body into dst and also returns the raw
// payload, which mutating handlers store in the audit trail.
func decodeRaw(w http.ResponseWriter, r *http.Request, dst any) (json.RawMessage, bool) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return raw, true
}
