// Package sessionstore persists the operator session between restarts: the
// upstream credential token and the user-profile snapshot, under fixed
// keys, sealed at rest. Presence of the token is the sole authorization
// gate; clearing the store forces re-authentication.
package sessionstore

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

// Snapshot is the stored session state. Field names are the fixed storage
// keys the console reads back.
type Snapshot struct {
	Token   string          `json:"auth_token"`
	Profile json.RawMessage `json:"user_profile,omitempty"`
}

type Store struct {
	path string
	aead interface {
		Seal(dst, nonce, plaintext, additionalData []byte) []byte
		Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
	}
	mu sync.Mutex
}

// New opens (or prepares) the store at path. The key material is stretched
// to the cipher's key size, so any non-empty secret works.
func New(path string, secret string) (*Store, error) {
	if secret == "" {
		return nil, fmt.Errorf("session store secret is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create session store directory: %w", err)
	}

	key := sha256.Sum256([]byte(secret))
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session cipher: %w", err)
	}

	return &Store{
		path: path,
		aead: aead,
	}, nil
}

// Save seals the snapshot and writes it atomically.
func (s *Store) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plaintext, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, plaintext, nil)

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to persist session file: %w", err)
	}

	return nil
}

// Load returns the stored snapshot. The second return is false when no
// session exists; a corrupted or unreadable file counts as no session.
func (s *Store) Load() (Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("failed to read session file: %w", err)
	}

	if len(sealed) < chacha20poly1305.NonceSizeX {
		return Snapshot{}, false, nil
	}

	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Wrong key or tampered file: treat as absent, force re-login.
		return Snapshot{}, false, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(plaintext, &snap); err != nil {
		return Snapshot{}, false, nil
	}
	if snap.Token == "" {
		return Snapshot{}, false, nil
	}

	return snap, true, nil
}

// Clear removes the stored session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session file: %w", err)
	}
	return nil
}
