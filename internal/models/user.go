// Package models defines the persisted entities of the bucket list:
// user accounts, goals with their photos and notes, and the session record.
package models

import "encoding/json"

// User is one account. The password hash is an opaque string derived from
// the password; the application never stores plain-text passwords.
// IsDeveloper marks the seeded privileged account that may view every
// user's goals.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	IsDeveloper  bool   `json:"is_developer"`
}

// EncodeUsers serializes the full user collection to its persisted form,
// a JSON array of user records.
func EncodeUsers(users []User) ([]byte, error) {
	if users == nil {
		users = []User{}
	}
	return json.Marshal(users)
}

// DecodeUsers parses the persisted user collection. Absent or empty data
// decodes to an empty slice, never nil.
func DecodeUsers(data []byte) ([]User, error) {
	users := []User{}
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}
