// Package pagination provides utilities around page tokens.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

var tokenEncoding = base64.RawURLEncoding

// TokenError is an opaque error related to pagination tokens. The error
// message does not reveal internal details; use [errors.Unwrap] to access
// the cause.
type TokenError struct {
	cause error
}

// Error satisfies [error].
func (terr TokenError) Error() string {
	return "invalid pagination token"
}

// Unwrap returns the underlying cause of the token error.
func (terr TokenError) Unwrap() error {
	return terr.cause
}

// Validator is implemented by token payloads that must satisfy an
// invariant before being accepted as a page token, the plain-struct
// equivalent of the teacher's protovalidate step (there is no protobuf
// schema in this module to drive that validator).
type Validator interface {
	Validate() error
}

// ToToken encodes v into an opaque pagination token. If v implements
// Validator, it is validated first. Returns a [TokenError] on validation or
// encoding failure.
func ToToken(v any) (string, error) {
	if validator, ok := v.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return "", TokenError{cause: err}
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", TokenError{cause: err}
	}
	return tokenEncoding.EncodeToString(data), nil
}

// FromToken decodes an opaque pagination token into dst, which must be a
// pointer. If the pointed-to type implements Validator, it is validated
// after decoding. Returns a [TokenError] if decoding or validation fails.
func FromToken(tkn string, dst any) error {
	if tkn == "" {
		return TokenError{cause: errors.New("empty token")}
	}
	data, err := tokenEncoding.DecodeString(tkn)
	if err != nil {
		return TokenError{cause: err}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return TokenError{cause: err}
	}
	if validator, ok := dst.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return TokenError{cause: err}
		}
	}
	return nil
}
