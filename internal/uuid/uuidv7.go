// Package uuid issues the time-ordered identifiers used for locally stored
// rows (audit entries) and validates identifiers coming from callers.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. Version 7 ids sort by creation time, which
// keeps the audit table in insertion order without an extra index.
// A random v4 id is returned if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// NewRequestID returns an id for the X-Request-ID header.
func NewRequestID() string {
	return googleuuid.New().String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
