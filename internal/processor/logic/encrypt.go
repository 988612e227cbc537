package logic

import (
	"fmt"

	"github.com/andrei-cloud/cryptoproc/internal/codec"
	"github.com/andrei-cloud/cryptoproc/internal/errorcodes"
	"github.com/andrei-cloud/cryptoproc/internal/message"
	"github.com/andrei-cloud/cryptoproc/pkg/cryptoutils"
)

// ExecuteEncrypt seals the hex-encoded data field with AES-256-GCM under the
// base64-encoded key and returns ciphertext||tag.
//
// Fields are checked in a fixed order: data presence, data hex, key presence,
// key base64, key length. The nonce is the fixed all-zero nonce; see
// cryptoutils.ZeroNonce.
func ExecuteEncrypt(req *message.Request) ([]byte, error) {
	if req.Data == nil {
		return nil, errorcodes.ErrMissingData
	}

	plaintext, err := codec.DecodeHex(*req.Data)
	if err != nil {
		return nil, errorcodes.ErrInvalidHex.Wrap(err)
	}

	if req.Key == nil {
		return nil, errorcodes.ErrMissingKey
	}

	key, err := codec.DecodeBase64(*req.Key)
	if err != nil {
		return nil, errorcodes.ErrInvalidBase64Key.Wrap(err)
	}
	defer clear(key)

	if len(key) != cryptoutils.AES256GCMKeySize {
		return nil, errorcodes.ErrKeyLength
	}

	logDebug("encrypt", fmt.Sprintf("sealing %d bytes", len(plaintext)))

	sealed, err := cryptoutils.SealAES256GCM(key, cryptoutils.ZeroNonce(), plaintext)
	if err != nil {
		return nil, errorcodes.ErrEncryptionFailed.Wrap(err)
	}

	return sealed, nil
}
