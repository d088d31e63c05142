package session

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

// SecureStore abstracts the platform key-value store holding the serialized
// session blob. Implementations are chosen once at startup: plain files stand
// in for browser local storage, sealed files for OS-level secure storage.
type SecureStore interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string) error
}

// MemoryBlobStore is the test double: nothing survives the process.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	return b, ok
}

func (s *MemoryBlobStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryBlobStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// FileBlobStore writes each key to its own file under dir.
type FileBlobStore struct {
	dir string
}

func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileBlobStore{dir: dir}, nil
}

func (s *FileBlobStore) path(key string) string {
	return filepath.Join(s.dir, key+".blob")
}

func (s *FileBlobStore) Get(key string) ([]byte, bool) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return b, true
}

func (s *FileBlobStore) Set(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o600)
}

func (s *FileBlobStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// SealedFileStore wraps a FileBlobStore and seals every value with
// XChaCha20-Poly1305, the stand-in for OS secure storage. The key is derived
// from the configured passphrase; a random nonce is prepended per write.
type SealedFileStore struct {
	files *FileBlobStore
	key   [32]byte
}

func NewSealedFileStore(dir, passphrase string) (*SealedFileStore, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("sealed store requires a passphrase")
	}
	files, err := NewFileBlobStore(dir)
	if err != nil {
		return nil, err
	}
	return &SealedFileStore{files: files, key: sha256.Sum256([]byte(passphrase))}, nil
}

func (s *SealedFileStore) Get(key string) ([]byte, bool) {
	sealed, ok := s.files.Get(key)
	if !ok {
		return nil, false
	}
	aead, err := chacha20poly1305.NewX(s.key[:])
	if err != nil {
		return nil, false
	}
	if len(sealed) < aead.NonceSize() {
		return nil, false
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Tampered or written with a different passphrase; treat as absent.
		return nil, false
	}
	return plain, true
}

func (s *SealedFileStore) Set(key string, value []byte) error {
	aead, err := chacha20poly1305.NewX(s.key[:])
	if err != nil {
		return err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	sealed := aead.Seal(nonce, nonce, value, nil)
	return s.files.Set(key, sealed)
}

func (s *SealedFileStore) Remove(key string) error {
	return s.files.Remove(key)
}
