package token

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	credentialBucket = "credentials"
	tokenKey         = "session_token"
)

// boltStore persists the session token across process runs, so a CLI login
// survives until the token expires or is cleared.
type boltStore struct {
	db *bolt.DB
}

// OpenBolt initializes a BoltDB-backed Store at path, creating parent
// directories as needed.
func OpenBolt(path string) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create credential directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(credentialBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Token returns the stored session token, or empty if none is stored.
func (b *boltStore) Token() string {
	if b == nil || b.db == nil {
		return ""
	}

	var token string
	_ = b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(credentialBucket))
		if bucket == nil {
			return nil
		}
		if value := bucket.Get([]byte(tokenKey)); value != nil {
			token = string(value)
		}
		return nil
	})
	return token
}

// HasToken reports whether a non-empty session token is stored.
func (b *boltStore) HasToken() bool {
	return b.Token() != ""
}

// SetToken stores the session token.
func (b *boltStore) SetToken(token string) error {
	if b == nil || b.db == nil {
		return fmt.Errorf("token store is not open")
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(credentialBucket))
		if bucket == nil {
			return fmt.Errorf("credential bucket missing")
		}
		return bucket.Put([]byte(tokenKey), []byte(token))
	})
}

// Clear removes the stored session token.
func (b *boltStore) Clear() error {
	if b == nil || b.db == nil {
		return nil
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(credentialBucket))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(tokenKey))
	})
}
