package session

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileBlobStore(t *testing.T) {
	s, err := NewFileBlobStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBlobStore: %v", err)
	}

	if _, ok := s.Get("user"); ok {
		t.Fatal("empty store should have no blob")
	}
	if err := s.Set("user", []byte("payload")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := s.Get("user")
	if !ok || !bytes.Equal(got, []byte("payload")) {
		t.Fatalf("Get = %q, %v", got, ok)
	}
	if err := s.Remove("user"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := s.Get("user"); ok {
		t.Fatal("blob survived Remove")
	}
	// Removing a missing key is not an error.
	if err := s.Remove("user"); err != nil {
		t.Fatalf("Remove absent key: %v", err)
	}
}

func TestSealedFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSealedFileStore(dir, "correct horse")
	if err != nil {
		t.Fatalf("NewSealedFileStore: %v", err)
	}

	plain := []byte(`{"id":"1"}`)
	if err := s.Set("user", plain); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := s.Get("user")
	if !ok || !bytes.Equal(got, plain) {
		t.Fatalf("roundtrip: got %q, %v", got, ok)
	}

	// The on-disk file must not contain the plaintext.
	raw, err := os.ReadFile(filepath.Join(dir, "user.blob"))
	if err != nil {
		t.Fatalf("reading sealed file: %v", err)
	}
	if bytes.Contains(raw, plain) {
		t.Error("sealed file contains the plaintext")
	}

	// A different passphrase cannot open the blob.
	other, err := NewSealedFileStore(dir, "wrong passphrase")
	if err != nil {
		t.Fatalf("NewSealedFileStore: %v", err)
	}
	if _, ok := other.Get("user"); ok {
		t.Error("blob opened with the wrong passphrase")
	}

	// A tampered blob reads as absent.
	raw[len(raw)-1] ^= 0xff
	if err := os.WriteFile(filepath.Join(dir, "user.blob"), raw, 0o600); err != nil {
		t.Fatalf("tampering with blob: %v", err)
	}
	if _, ok := s.Get("user"); ok {
		t.Error("tampered blob should read as absent")
	}
}

func TestSealedFileStoreRequiresPassphrase(t *testing.T) {
	if _, err := NewSealedFileStore(t.TempDir(), ""); err == nil {
		t.Fatal("expected an error for an empty passphrase")
	}
}
