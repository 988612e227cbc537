package cryptoutils

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vectors from the GCM specification (test cases 13 and 14).
func TestSealAES256GCMKnownVectors(t *testing.T) {
	t.Parallel()

	key := make([]byte, AES256GCMKeySize)

	tests := []struct {
		name      string
		plaintext []byte
		want      string
	}{
		{
			name:      "empty plaintext",
			plaintext: []byte{},
			want:      "530f8afbc74536b9a963b4f1c4cb738b",
		},
		{
			name:      "one zero block",
			plaintext: make([]byte, 16),
			want:      "cea7403d4d606b6e074ec5d3baf39d18" + "d0d1c8a799996bf0265b98b5d48ab919",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SealAES256GCM(key, ZeroNonce(), tt.plaintext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(got))
			assert.Len(t, got, len(tt.plaintext)+GCMTagSize)
		})
	}
}

func TestSealOpenRoundTrip(t *testing.T) {
	t.Parallel()

	key := bytes.Repeat([]byte{0x42}, AES256GCMKeySize)
	plaintext := []byte("attack at dawn")

	sealed, err := SealAES256GCM(key, ZeroNonce(), plaintext)
	require.NoError(t, err)

	again, err := SealAES256GCM(key, ZeroNonce(), plaintext)
	require.NoError(t, err)
	assert.Equal(t, sealed, again, "fixed nonce makes sealing deterministic")

	opened, err := openAES256GCM(key, ZeroNonce(), sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)

	tampered := bytes.Clone(sealed)
	tampered[0] ^= 0x01
	_, err = openAES256GCM(key, ZeroNonce(), tampered)
	assert.Error(t, err)

	_, err = openAES256GCM(key, ZeroNonce(), sealed[:GCMTagSize-1])
	assert.ErrorContains(t, err, "too short")
}

func TestSealAES256GCMInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := SealAES256GCM(make([]byte, 16), ZeroNonce(), []byte("x"))
	assert.ErrorContains(t, err, "invalid key length 16")

	_, err = SealAES256GCM(make([]byte, AES256GCMKeySize), make([]byte, 8), []byte("x"))
	assert.ErrorContains(t, err, "invalid nonce length 8")
}

func TestZeroNonce(t *testing.T) {
	t.Parallel()

	n := ZeroNonce()
	assert.Equal(t, make([]byte, GCMNonceSize), n)

	// each call returns a fresh slice.
	n[0] = 1
	assert.Equal(t, byte(0), ZeroNonce()[0])
}

// openAES256GCM authenticates and decrypts ciphertext||tag.
func openAES256GCM(key, nonce, sealed []byte) ([]byte, error) {
	aead, err := newAES256GCM(key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.Overhead() {
		return nil, fmt.Errorf("ciphertext too short: %d bytes", len(sealed))
	}

	return aead.Open(nil, nonce, sealed, nil)
}
