// Package vault performs authenticated symmetric encryption of sensitive
// field values. It holds no state between calls: the key travels in the
// caller's context and is never persisted here.
package vault

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"gocircle/internal/common"

	"golang.org/x/crypto/argon2"
)

type keyCtx struct{}

// WithKey attaches the active symmetric key to ctx. The key must be a valid
// AES key length (16, 24 or 32 bytes).
func WithKey(ctx context.Context, key []byte) context.Context {
	return context.WithValue(ctx, keyCtx{}, key)
}

func keyFromContext(ctx context.Context) ([]byte, error) {
	key, ok := ctx.Value(keyCtx{}).([]byte)
	if !ok || len(key) == 0 {
		return nil, common.ErrKeyUnavailable
	}
	return key, nil
}

// DeriveKey derives a 32-byte AES key from an operator-supplied passphrase
// and salt using argon2id.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// LookupHash returns the hex sha256 of plaintext. It is the only value that
// may be stored alongside a ciphertext for exact-match lookup; it is never
// reversible into the plaintext.
func LookupHash(plaintext []byte) string {
	sum := sha256.Sum256(plaintext)
	return hex.EncodeToString(sum[:])
}

// Encrypt seals plaintext under the context key with AES-GCM. A fresh random
// 12-byte nonce is generated per call and prefixed to the returned
// ciphertext, so equal plaintexts never produce equal ciphertexts.
func Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	key, err := keyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("invalid vault key: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a ciphertext produced by Encrypt. Tampered data or a wrong
// key yields ErrIntegrity.
func Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	key, err := keyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("invalid vault key: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < aesgcm.NonceSize() {
		return nil, common.ErrIntegrity
	}
	nonce, sealed := ciphertext[:aesgcm.NonceSize()], ciphertext[aesgcm.NonceSize():]

	plaintext, err := aesgcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, common.ErrIntegrity
	}
	return plaintext, nil
}
