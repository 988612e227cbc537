package cryptoutils

import (
	"crypto/sha256"
	"errors"
	"hash"
	"sort"
)

// DefaultDigest is the algorithm used when a request names none.
const DefaultDigest = "sha256"

// ErrUnsupportedDigest is returned for algorithm names missing from the registry.
var ErrUnsupportedDigest = errors.New("unsupported digest algorithm")

// digests maps algorithm names to hash constructors. It is read-only after init.
var digests = map[string]func() hash.Hash{
	"sha256": sha256.New,
}

// Digest computes the named digest of data in one shot.
func Digest(algorithm string, data []byte) ([]byte, error) {
	newHash, ok := digests[algorithm]
	if !ok {
		return nil, ErrUnsupportedDigest
	}

	h := newHash()
	h.Write(data)

	return h.Sum(nil), nil
}

// DigestSupported reports whether algorithm is registered.
func DigestSupported(algorithm string) bool {
	_, ok := digests[algorithm]
	return ok
}

// DigestAlgorithms returns the registered algorithm names in sorted order.
func DigestAlgorithms() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
