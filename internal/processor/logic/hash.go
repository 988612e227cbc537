package logic

import (
	"fmt"

	"github.com/andrei-cloud/cryptoproc/internal/codec"
	"github.com/andrei-cloud/cryptoproc/internal/errorcodes"
	"github.com/andrei-cloud/cryptoproc/internal/message"
	"github.com/andrei-cloud/cryptoproc/pkg/cryptoutils"
)

// ExecuteHash computes the digest of the hex-encoded data field.
// The algorithm defaults to sha256.
func ExecuteHash(req *message.Request) ([]byte, error) {
	if req.Data == nil {
		return nil, errorcodes.ErrMissingData
	}

	data, err := codec.DecodeHex(*req.Data)
	if err != nil {
		return nil, errorcodes.ErrInvalidHex.Wrap(err)
	}

	algorithm := cryptoutils.DefaultDigest
	if req.Algorithm != nil {
		algorithm = *req.Algorithm
	}
	if !cryptoutils.DigestSupported(algorithm) {
		return nil, errorcodes.ErrUnsupportedHash.With(algorithm)
	}
	logDebug("hash", fmt.Sprintf("digesting %d bytes with %s", len(data), algorithm))

	digest, err := cryptoutils.Digest(algorithm, data)
	if err != nil {
		return nil, errorcodes.ErrUnsupportedHash.With(algorithm)
	}

	return digest, nil
}
