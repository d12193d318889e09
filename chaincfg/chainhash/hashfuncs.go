// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/ripemd160"
)

// Hash160Size is the number of bytes in a Hash160 digest.
const Hash160Size = ripemd160.Size

// HashB calculates hash(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates hash(hash(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a
// Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// HashRaw computes the hash of the serialization produced by the passed
// encode function.  Writes to the hasher cannot fail, so the encode error is
// that of the serializer itself.
func HashRaw(encode func(w io.Writer) error) Hash {
	h := sha256.New()

	// The only way the encoder can fail is by the caller's serialization
	// logic, in which case the zero hash is as good an answer as any.
	if err := encode(h); err != nil {
		return Hash{}
	}

	var ret Hash
	copy(ret[:], h.Sum(nil))
	return ret
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(HashB(b))
	return h.Sum(nil)
}
