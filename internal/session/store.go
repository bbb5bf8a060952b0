// ABOUTME: On-disk store for the long-lived refresh credential.
// ABOUTME: One small JSON document in the per-user config directory; last writer wins.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotLoggedIn is returned when no usable credential is stored.
var ErrNotLoggedIn = errors.New("not logged in: run `macrofactor login` first")

// Credential is the sole persisted secret: the opaque refresh token issued
// by the identity provider. It lives until the user re-authenticates or the
// token is revoked server-side.
type Credential struct {
	RefreshToken string `json:"refresh_token"`
}

// Store reads and writes the credential file.
type Store struct {
	path string
}

// NewStore returns a Store backed by config.json under dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "config.json")}
}

// Path returns the credential file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted credential. A missing, unparsable, or empty
// credential file all surface as ErrNotLoggedIn.
func (s *Store) Load() (Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credential{}, ErrNotLoggedIn
		}
		return Credential{}, fmt.Errorf("read credential file: %w", err)
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return Credential{}, fmt.Errorf("%w (credential file is corrupt: %v)", ErrNotLoggedIn, err)
	}
	if cred.RefreshToken == "" {
		return Credential{}, ErrNotLoggedIn
	}
	return cred, nil
}

// Save writes the credential, creating the directory if missing and
// overwriting any prior value. No atomic-rename guarantee; concurrent
// writers race and the last one wins.
func (s *Store) Save(cred Credential) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}
