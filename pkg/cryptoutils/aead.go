package cryptoutils

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const (
	AES256GCMKeySize = 32
	GCMNonceSize     = 12
	GCMTagSize       = 16
)

// ZeroNonce returns the all-zero 12-byte nonce.
//
// Reusing it with the same key breaks both confidentiality and integrity of
// GCM. It exists only because the encrypt wire contract carries no nonce.
func ZeroNonce() []byte {
	return make([]byte, GCMNonceSize)
}

// newAES256GCM builds an AES-256-GCM AEAD from a 32-byte key.
func newAES256GCM(key []byte) (cipher.AEAD, error) {
	if len(key) != AES256GCMKeySize {
		return nil, fmt.Errorf("invalid key length %d, want %d", len(key), AES256GCMKeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("gcm: %w", err)
	}

	return aead, nil
}

// SealAES256GCM encrypts plaintext and returns ciphertext||tag.
func SealAES256GCM(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newAES256GCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("invalid nonce length %d, want %d", len(nonce), aead.NonceSize())
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}
