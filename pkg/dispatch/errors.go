package dispatch

import "fmt"

// AuthError reports a missing or mismatched credential on a protected shape.
// Maps to HTTP 401 at the transport boundary.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// MalformedInputError reports a body that is not valid JSON. Classification
// is never attempted on a malformed body. Maps to HTTP 400.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// UnclassifiableShapeError reports a well-formed body that matches no known
// structural pattern. Distinct from both auth and malformed-body failures.
// Maps to HTTP 400.
type UnclassifiableShapeError struct{}

func (e *UnclassifiableShapeError) Error() string {
	return "payload matches no known request shape"
}
