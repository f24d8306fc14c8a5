// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestAuditActionValid verifies the set of recorded audit actions.
func TestAuditActionValid(t *testing.T) {
	tests := []struct {
		name   string
		action AuditAction
		want   bool
	}{
		{name: "create", action: AuditCreate, want: true},
		{name: "update", action: AuditUpdate, want: true},
		{name: "delete", action: AuditDelete, want: true},
		{name: "login", action: AuditLogin, want: true},
		{name: "logout", action: AuditLogout, want: true},
		{name: "publish", action: AuditPublish, want: true},
		{name: "unpublish", action: AuditUnpublish, want: true},
		{name: "empty", action: AuditAction(""), want: false},
		{name: "unknown", action: AuditAction("read"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.action.Valid(); got != tt.want {
				t.Errorf("AuditAction(%q).Valid() = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

// TestContactStatusValid verifies the contact triage statuses.
func TestContactStatusValid(t *testing.T) {
	tests := []struct {
		name   string
		status ContactStatus
		want   bool
	}{
		{name: "new", status: ContactNew, want: true},
		{name: "read", status: ContactRead, want: true},
		{name: "replied", status: ContactReplied, want: true},
		{name: "empty", status: ContactStatus(""), want: false},
		{name: "unknown", status: ContactStatus("spam"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("ContactStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
