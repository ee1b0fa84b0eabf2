// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// SessionCookie is the cookie whose presence marks an admin viewer.
const SessionCookie = "sessionid"

// AdminKeyHeader carries the per-question admin key on admin API calls.
const AdminKeyHeader = "X-Admin-Key"

var ErrInvalidAdminKey = errors.New("invalid admin key")

// GenerateAdminKey creates an HMAC-based admin key for a question
// This is deterministic and verifiable
func GenerateAdminKey(questionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(questionID))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the question
func ValidateAdminKey(questionID, adminKey, salt string) error {
	expected := GenerateAdminKey(questionID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// IsAdminViewer reports whether the request carries a sessionid cookie.
// The cookie value is not checked: any session cookie, even an empty or
// stale one, unlocks the admin view of the public pages.
func IsAdminViewer(r *http.Request) bool {
	_, err := r.Cookie(SessionCookie)
	return err == nil
}
