// Package cryptoutils wraps the digest and AEAD primitives used by the
// processor commands.
//
// Digests are looked up by name in a fixed registry. AEAD sealing is
// AES-256-GCM with a 12-byte nonce and a 16-byte tag appended to the
// ciphertext.
package cryptoutils
