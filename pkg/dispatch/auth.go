package dispatch

import "strings"

const bearerPrefix = "bearer "

// ResolveCredential picks the API key candidate from the two header slots.
// x-api-key wins when present; otherwise the Authorization value is used with
// a leading case-insensitive "Bearer " token stripped. Header precedence
// differed between revisions of this router; the current order follows the
// most recent behavior (see DESIGN.md).
func ResolveCredential(xAPIKey, authorization string) string {
	if xAPIKey != "" {
		return xAPIKey
	}
	if len(authorization) >= len(bearerPrefix) &&
		strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return authorization[len(bearerPrefix):]
	}
	return authorization
}

// Authorize enforces the protection policy for a classified payload.
// Unprotected classifications pass regardless of credential validity.
// Protected ones require exact equality with the configured secret.
func Authorize(cls Classification, credential, secret string) error {
	if !cls.Protected() {
		return nil
	}
	if credential == "" {
		return &AuthError{Reason: "missing API key"}
	}
	if credential != secret {
		return &AuthError{Reason: "invalid API key"}
	}
	return nil
}
