// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads endpoint-etiquette credentials from a directory
// of plain-text files. Each known secret is one file: the filename is
// the key and the trimmed file contents are the value.
//
// Supported key files: contact-email, endpoint-token.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Known secret filenames.
const (
	keyContactEmail  = "contact-email"
	keyEndpointToken = "endpoint-token"
)

// Secrets holds the credentials the harvester may attach to outgoing
// requests. Zero values mean "not configured".
type Secrets struct {
	// ContactEmail is sent in the From header when no --email flag is given.
	ContactEmail string

	// EndpointToken is sent as a bearer token for authenticated endpoints.
	EndpointToken string
}

// Load reads the known secret files from dir. A missing directory or
// missing files are not errors; the corresponding fields stay empty.
func Load(dir string) (Secrets, error) {
	var s Secrets
	var err error

	if s.ContactEmail, err = readSecret(dir, keyContactEmail); err != nil {
		return Secrets{}, err
	}
	if s.EndpointToken, err = readSecret(dir, keyEndpointToken); err != nil {
		return Secrets{}, err
	}
	return s, nil
}

func readSecret(dir, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading secret %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}
