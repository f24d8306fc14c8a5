// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat proxies a visitor question to the AI assistant. Without an API
// key configured the assistant answers with a fixed notice instead of
// failing, so the widget stays functional on every deployment.
func (api *API) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Message == "" {
		respondValidation(w, map[string]string{"message": "Message is required"})
		return
	}
	if len(req.Message) > maxMessageLen {
		respondValidation(w, map[string]string{"message": "Message is too long"})
		return
	}

	reply, err := api.assistant.Reply(r.Context(), req.Message)
	if err != nil {
		api.respondInternal(w, r, err)
		return
	}

	respondData(w, http.StatusOK, map[string]string{"reply": reply})
}
