// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		questionID string
		salt       string
	}{
		{"standard", "q-123", "secret-salt"},
		{"empty question id", "", "salt"},
		{"empty salt", "q-456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key1 := GenerateAdminKey(tt.questionID, tt.salt)
			key2 := GenerateAdminKey(tt.questionID, tt.salt)

			if key1 != key2 {
				t.Errorf("GenerateAdminKey() not deterministic: %s != %s", key1, key2)
			}
			if strings.Contains(key1, "=") {
				t.Errorf("GenerateAdminKey() contains padding: %s", key1)
			}
			if strings.ContainsAny(key1, "+/") {
				t.Errorf("GenerateAdminKey() is not URL-safe: %s", key1)
			}
		})
	}

	if GenerateAdminKey("q-1", "salt") == GenerateAdminKey("q-2", "salt") {
		t.Error("different questions produced the same key")
	}
	if GenerateAdminKey("q-1", "salt-a") == GenerateAdminKey("q-1", "salt-b") {
		t.Error("different salts produced the same key")
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	questionID := "q-789"
	validKey := GenerateAdminKey(questionID, salt)

	tests := []struct {
		name       string
		questionID string
		key        string
		wantErr    error
	}{
		{"valid key", questionID, validKey, nil},
		{"wrong key", questionID, "not-the-key", ErrInvalidAdminKey},
		{"empty key", questionID, "", ErrInvalidAdminKey},
		{"key for another question", "q-other", validKey, ErrInvalidAdminKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.questionID, tt.key, salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAdminKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsAdminViewer(t *testing.T) {
	tests := []struct {
		name    string
		cookies []*http.Cookie
		want    bool
	}{
		{"no cookies", nil, false},
		{"session cookie", []*http.Cookie{{Name: "sessionid", Value: "abc"}}, true},
		{"empty session value", []*http.Cookie{{Name: "sessionid", Value: ""}}, true},
		{"other cookie only", []*http.Cookie{{Name: "csrftoken", Value: "x"}}, false},
		{"lookalike name", []*http.Cookie{{Name: "old_sessionid", Value: "x"}}, false},
		{"mixed cookies", []*http.Cookie{{Name: "csrftoken", Value: "x"}, {Name: "sessionid", Value: "y"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/polls/", nil)
			for _, c := range tt.cookies {
				req.AddCookie(c)
			}
			if got := IsAdminViewer(req); got != tt.want {
				t.Errorf("IsAdminViewer() = %v, want %v", got, tt.want)
			}
		})
	}
}
