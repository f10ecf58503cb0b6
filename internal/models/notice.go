package models

import (
	"fmt"
	"time"
)

// NoticeKind classifies the outcome of an operation
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
	NoticeWarning
)

// String returns the string representation of a notice kind
func (k NoticeKind) String() string {
	return [...]string{"success", "error", "warning"}[k]
}

// MarshalText encodes the kind as its name so JSON clients see "success" and friends
func (k NoticeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Notice is the transient message describing the most recent operation
type Notice struct {
	Message   string     `json:"message"`
	Kind      NoticeKind `json:"kind"`
	CreatedAt time.Time  `json:"createdAt"`
}

// IsError returns true for notices reporting a rejected operation
func (n Notice) IsError() bool {
	return n.Kind == NoticeError
}

// Expired reports whether the notice is older than ttl at the given time.
// A zero ttl means the notice never expires on its own.
func (n Notice) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(n.CreatedAt) >= ttl
}

// UnmarshalText decodes a kind from its name
func (k *NoticeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "success":
		*k = NoticeSuccess
	case "error":
		*k = NoticeError
	case "warning":
		*k = NoticeWarning
	default:
		return fmt.Errorf("unknown notice kind %q", text)
	}
	return nil
}
