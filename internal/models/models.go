// Package models defines the database entity types.
package models

// Issuance is one credential handed to the provisioning script. The password
// itself is never stored, only its fingerprint.
type Issuance struct {
	ID                  string
	Username            string
	Token               string
	PasswordFingerprint string
	IndexPolicy         string
	IssuedAt            int64
}
