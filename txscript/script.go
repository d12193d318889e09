// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"errors"
	"fmt"

	"github.com/clein154/qtc/chaincfg"
	"github.com/clein154/qtc/chaincfg/chainhash"
	"github.com/clein154/qtc/chainutil"
)

// These constants are the opcode values used by the canonical qtc script
// templates.  The script engine of the reference implementation is not
// carried here; only the pay-to-pubkey-hash shape is meaningful to the core.
const (
	OP_DUP         = 0x76
	OP_HASH160     = 0xa9
	OP_EQUALVERIFY = 0x88
	OP_CHECKSIG    = 0xac
	OP_DATA_20     = 0x14
	OP_DATA_33     = 0x21
	OP_DATA_65     = 0x41
)

const (
	// p2pkhScriptLen is the length of a canonical pay-to-pubkey-hash
	// script: OP_DUP OP_HASH160 OP_DATA_20 <20 bytes> OP_EQUALVERIFY
	// OP_CHECKSIG.
	p2pkhScriptLen = 25

	// minSigLen and maxSigLen bound a plausible DER-encoded ECDSA
	// signature plus the sighash byte.
	minSigLen = 9
	maxSigLen = 73
)

var (
	// ErrUnsupportedAddress describes an error where an address can not
	// be converted into a script because it is not of a supported type.
	ErrUnsupportedAddress = errors.New("unsupported address type")

	// ErrNonStandardScript describes an error where a public key script
	// does not match the canonical pay-to-pubkey-hash template.
	ErrNonStandardScript = errors.New("non-standard script")

	// ErrMalformedSignatureScript describes an error where a signature
	// script does not carry a plausible signature and public key push.
	ErrMalformedSignatureScript = errors.New("malformed signature script")
)

// PayToAddrScript creates a new script to pay a transaction output to the
// specified address.
func PayToAddrScript(addr chainutil.Address) ([]byte, error) {
	switch addr := addr.(type) {
	case *chainutil.AddressPubKeyHash:
		if addr == nil {
			return nil, ErrUnsupportedAddress
		}
		return payToPubKeyHashScript(addr.ScriptAddress())
	}

	return nil, fmt.Errorf("unable to generate payment script for "+
		"address %v: %w", addr, ErrUnsupportedAddress)
}

// payToPubKeyHashScript creates a new script to pay a transaction output to a
// 20-byte pubkey hash.
func payToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != chainhash.Hash160Size {
		return nil, fmt.Errorf("pubkey hash is %d bytes, want %d",
			len(pubKeyHash), chainhash.Hash160Size)
	}

	script := make([]byte, 0, p2pkhScriptLen)
	script = append(script, OP_DUP, OP_HASH160, OP_DATA_20)
	script = append(script, pubKeyHash...)
	script = append(script, OP_EQUALVERIFY, OP_CHECKSIG)
	return script, nil
}

// IsPayToPubKeyHash returns true if the script is in the canonical
// pay-to-pubkey-hash (P2PKH) format, false otherwise.
func IsPayToPubKeyHash(script []byte) bool {
	return len(script) == p2pkhScriptLen &&
		script[0] == OP_DUP &&
		script[1] == OP_HASH160 &&
		script[2] == OP_DATA_20 &&
		script[23] == OP_EQUALVERIFY &&
		script[24] == OP_CHECKSIG
}

// ExtractPubKeyHash extracts the pubkey hash from the passed script if it is
// a canonical pay-to-pubkey-hash script.  It will return nil otherwise.
func ExtractPubKeyHash(script []byte) []byte {
	// A pay-to-pubkey-hash script is of the form:
	//  OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
	if IsPayToPubKeyHash(script) {
		return script[3:23]
	}

	return nil
}

// ExtractPkScriptAddr returns the address associated with the passed public
// key script, if the script conforms to the canonical pay-to-pubkey-hash
// template for the given network.
func ExtractPkScriptAddr(pkScript []byte, chainParams *chaincfg.Params) (chainutil.Address, error) {
	hash := ExtractPubKeyHash(pkScript)
	if hash == nil {
		return nil, ErrNonStandardScript
	}
	return chainutil.NewAddressPubKeyHash(hash, chainParams)
}

// SignatureScript creates an input signature script for a transaction input
// spending a pay-to-pubkey-hash output.  The script carries the serialized
// signature followed by the serialized public key, each as a single data
// push.
func SignatureScript(sig, pubKey []byte) ([]byte, error) {
	if len(sig) == 0 || len(sig) > maxSigLen {
		return nil, ErrMalformedSignatureScript
	}
	if len(pubKey) == 0 || len(pubKey) > 0xff {
		return nil, ErrMalformedSignatureScript
	}

	script := make([]byte, 0, 2+len(sig)+len(pubKey))
	script = append(script, byte(len(sig)))
	script = append(script, sig...)
	script = append(script, byte(len(pubKey)))
	script = append(script, pubKey...)
	return script, nil
}

// ParseSignatureScript splits a pay-to-pubkey-hash signature script into its
// signature and public key pushes and verifies the pushes are structurally
// plausible.  The cryptographic acceptance of the signature is the caller's
// concern.
func ParseSignatureScript(sigScript []byte) (sig, pubKey []byte, err error) {
	if len(sigScript) < 2 {
		return nil, nil, ErrMalformedSignatureScript
	}

	sigLen := int(sigScript[0])
	if sigLen < minSigLen || sigLen > maxSigLen ||
		len(sigScript) < 1+sigLen+1 {
		return nil, nil, ErrMalformedSignatureScript
	}
	sig = sigScript[1 : 1+sigLen]

	rest := sigScript[1+sigLen:]
	keyLen := int(rest[0])
	if keyLen == 0 || len(rest) != 1+keyLen {
		return nil, nil, ErrMalformedSignatureScript
	}
	pubKey = rest[1:]

	// Only compressed (33 byte) and uncompressed (65 byte) public keys
	// are recognized.
	if keyLen != 33 && keyLen != 65 {
		return nil, nil, ErrMalformedSignatureScript
	}

	return sig, pubKey, nil
}
