// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides the public chat assistant, proxying user messages
// to an LLM completion API. When no API key is configured the assistant
// degrades to a canned reply instead of failing.
package ai

import (
	"context"
)

// Provider defines the interface an LLM backend must implement.
// Each provider handles its own HTTP communication and response parsing.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the generated text.
	// systemPrompt sets the model's behaviour; userPrompt is the user's request.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier (e.g., "groq").
	Name() string
}

// ProviderConfig holds the credentials and settings for a provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// systemPrompt shapes the assistant's persona for every conversation.
const systemPrompt = "You are Nuno, an intelligent and helpful AI assistant for the Nigerian Upstream Petroleum Regulatory Commission (NUPRC). Assist users with information about NUPRC's regulations, services, and general oil and gas sector inquiries in Nigeria. Be professional, concise, and helpful."

// fallbackReply is returned when no API key is configured.
const fallbackReply = "I am Nuno, your AI assistant. My brain connection (API Key) is currently missing. Please ask the administrator to configure it."

// emptyReply is returned when the provider yields no text.
const emptyReply = "Sorry, I couldn't generate a response."

// Assistant answers public chat messages through the configured provider.
type Assistant struct {
	provider Provider
}

// NewAssistant builds the assistant. With an empty API key the assistant
// has no provider and always answers with the canned fallback.
func NewAssistant(cfg ProviderConfig) *Assistant {
	a := &Assistant{}
	if cfg.APIKey != "" {
		a.provider = newGroq(cfg)
	}
	return a
}

// Configured reports whether a real provider is wired in.
func (a *Assistant) Configured() bool {
	return a.provider != nil
}

// Reply answers a single user message. Without a provider the canned
// fallback is returned with no error.
func (a *Assistant) Reply(ctx context.Context, message string) (string, error) {
	if a.provider == nil {
		return fallbackReply, nil
	}
	text, err := a.provider.Generate(ctx, systemPrompt, message)
	if err != nil {
		return "", err
	}
	if text == "" {
		return emptyReply, nil
	}
	return text, nil
}
