// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth decides who may see and edit what.

# Admin Viewers

The public pages treat any request with a sessionid cookie as an admin
viewer:

	if auth.IsAdminViewer(r) {
		// include questions that have no choices yet
	}

Only the cookie's presence is checked. There is no session store behind it.

# Admin Keys

The JSON admin API uses per-question keys derived with HMAC-SHA256:

	adminKey := auth.GenerateAdminKey(questionID, salt)
	err := auth.ValidateAdminKey(questionID, adminKey, salt)

Keys are URL-safe base64 without padding. Because they are deterministic,
nothing needs to be stored to validate them. Clients send them in the
X-Admin-Key header.
*/
package auth
