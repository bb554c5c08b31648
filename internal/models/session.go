package models

import (
	"encoding/base64"
	"encoding/json"
)

// Session identifies the currently authenticated user. There is one active
// session per storage scope, stored under a fixed key.
type Session struct {
	UserID int64 `json:"user_id"`
}

// Token encodes the session as base64 over its JSON form. The token is an
// opaque identifier only: it is not signed and provides no tamper
// resistance. Anything able to write the session key can assume any
// identity, which is why developer impersonation works at all.
func (s Session) Token() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// SessionFromToken decodes a session token. An empty or malformed token
// yields nil, which callers treat as "logged out".
func SessionFromToken(token string) *Session {
	if token == "" {
		return nil
	}
	b, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	return &s
}
