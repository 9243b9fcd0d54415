// Package token decodes the payload segment of a bearer token.
//
// This is a structural check only: the payload must base64-decode and parse as
// a JSON object. No signature verification happens here — the token issuer is
// reached over an authenticated transport and the server re-validates every
// query anyway.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is returned when a token does not carry a decodable
// JSON payload in its middle segment.
var ErrInvalidFormat = errors.New("invalid token format")

// Decode extracts the payload of a three-segment bearer token.
// A leading "Bearer " prefix (any case) is stripped first.
func Decode(tok string) (map[string]any, error) {
	tok = stripBearer(tok)

	parts := strings.Split(tok, ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, fmt.Errorf("token.Decode: missing payload segment: %w", ErrInvalidFormat)
	}

	// URL-safe alphabet to standard, padded to a multiple of four.
	seg := strings.ReplaceAll(parts[1], "-", "+")
	seg = strings.ReplaceAll(seg, "_", "/")
	if pad := 4 - len(seg)%4; pad < 4 {
		seg += strings.Repeat("=", pad)
	}

	raw, err := base64.StdEncoding.DecodeString(seg)
	if err != nil {
		return nil, fmt.Errorf("token.Decode: %v: %w", err, ErrInvalidFormat)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("token.Decode: %v: %w", err, ErrInvalidFormat)
	}
	return payload, nil
}

// stripBearer removes a leading "Bearer " scheme, case-insensitively.
func stripBearer(tok string) string {
	const scheme = "bearer "
	if len(tok) >= len(scheme) && strings.EqualFold(tok[:len(scheme)], scheme) {
		return strings.TrimLeft(tok[len(scheme):], " \t")
	}
	return tok
}
