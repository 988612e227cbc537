// Package codec converts between the wire text encodings and raw byte buffers.
//
// Two encodings are used and never mixed: hex for the "data" field and for
// results, standard base64 (padded) for the "key" field.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

// DecodeHex decodes an upper or lower case hex string.
// The returned error carries the decoder's reason.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		// drop the package prefix so the reason reads on its own after "Invalid hex: ".
		return nil, errors.New(strings.TrimPrefix(err.Error(), "encoding/hex: "))
	}

	return b, nil
}

// DecodeBase64 decodes a standard-alphabet, padded base64 string.
// Line breaks are rejected; the stdlib decoder would otherwise skip them.
func DecodeBase64(s string) ([]byte, error) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}

	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// EncodeHex returns the lowercase hex representation of b.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
