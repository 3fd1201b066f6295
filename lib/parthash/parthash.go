// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

// Package parthash computes BLAKE3 digests of package parts. Digests
// identify a part's payload independently of its path and content
// type, for integrity display and cross-package comparison.
//
// Hashing is keyed for domain separation: a part payload and an
// arbitrary blob with the same bytes hash differently, so part digests
// can never be confused with digests from another context.
package parthash

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest of a part payload.
type Digest [32]byte

// partDomainKey is the fixed 32-byte key for BLAKE3 keyed hashing of
// part payloads. The bytes are the ASCII domain name zero-padded to 32
// bytes, readable in hex dumps; changing them invalidates all existing
// digests.
var partDomainKey = [32]byte{
	'a', 'a', 's', 'x', '.', 'p', 'a', 'c', 'k', 'a', 'g', 'e', '.',
	'p', 'a', 'r', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Sum computes the part-domain digest of a payload.
func Sum(data []byte) Digest {
	hasher, err := blake3.NewKeyed(partDomainKey[:])
	if err != nil {
		// NewKeyed fails only on a wrong key length, which the fixed
		// array rules out.
		panic("parthash: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// Format returns the hex encoding of a digest, the canonical form
// used in CLI output.
func Format(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// Parse parses a 64-character hex string into a Digest.
func Parse(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing part digest: %w", err)
	}
	if len(decoded) != 32 {
		return digest, fmt.Errorf("part digest is %d bytes, want 32", len(decoded))
	}
	copy(digest[:], decoded)
	return digest, nil
}
