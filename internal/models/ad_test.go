// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestAdTypeValid verifies the set of accepted ad types.
func TestAdTypeValid(t *testing.T) {
	tests := []struct {
		name string
		at   AdType
		want bool
	}{
		{name: "text", at: AdText, want: true},
		{name: "image", at: AdImage, want: true},
		{name: "video", at: AdVideo, want: true},
		{name: "youtube", at: AdYouTube, want: true},
		{name: "empty", at: AdType(""), want: false},
		{name: "unknown", at: AdType("banner"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.at.Valid(); got != tt.want {
				t.Errorf("AdType(%q).Valid() = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

// TestAdStatusValid verifies the set of accepted ad statuses.
func TestAdStatusValid(t *testing.T) {
	tests := []struct {
		name string
		as   AdStatus
		want bool
	}{
		{name: "draft", as: AdDraft, want: true},
		{name: "published", as: AdPublished, want: true},
		{name: "empty", as: AdStatus(""), want: false},
		{name: "unknown", as: AdStatus("archived"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.as.Valid(); got != tt.want {
				t.Errorf("AdStatus(%q).Valid() = %v, want %v", tt.as, got, tt.want)
			}
		})
	}
}
