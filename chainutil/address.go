// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"errors"
	"strings"

	"github.com/clein154/qtc/chaincfg"
	"github.com/clein154/qtc/chaincfg/chainhash"
	"github.com/clein154/qtc/chainutil/base58"
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownAddressType describes an error where an address can not
	// be decoded as a specific address type due to the string encoding
	// beginning with an unrecognized identifier.
	ErrUnknownAddressType = errors.New("unknown address type")

	// ErrMissingNetPrefix describes an error where an address string does
	// not begin with the human-readable network tag.
	ErrMissingNetPrefix = errors.New("missing network address prefix")
)

// Address is an interface type for any type of destination a transaction
// output may spend to.  This includes pay-to-pubkey-hash (P2PKH) and the
// post-quantum tagged variant of the same payload.  Address is designed to be
// generic enough that other kinds of addresses may be added in the future
// without changing the decoding and encoding API.
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.
	//
	// Please note that String differs subtly from EncodeAddress: String
	// will return the value as a string without any conversion, while
	// EncodeAddress may convert destination types (for example,
	// converting pubkeys to P2PKH addresses) before encoding as a
	// payment address string.
	String() string

	// EncodeAddress returns the string encoding of the payment address
	// associated with the Address value.  See the comment on String
	// for how this method differs from String.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used
	// when inserting the address into a txout's script.
	ScriptAddress() []byte

	// IsForNet returns whether or not the address is associated with the
	// passed qtc network.
	IsForNet(*chaincfg.Params) bool
}

// encodeAddress returns a human-readable payment address given a 20-byte hash
// and netID which encodes the qtc network and address type.  It is used
// in both pay-to-pubkey-hash (P2PKH) and the post-quantum tagged encoding.
func encodeAddress(prefix string, hash160 []byte, netID byte) string {
	// Format is the network tag followed by 1 byte for netID + 20 bytes
	// hash + 4 bytes of checksum, all but the tag base58 encoded.
	return prefix + base58.CheckEncode(hash160[:chainhash.Hash160Size], netID)
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type AddressPubKeyHash struct {
	prefix string
	hash   [chainhash.Hash160Size]byte
	netID  byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, net *chaincfg.Params) (*AddressPubKeyHash, error) {
	return newAddressPubKeyHash(pkHash, net.AddressPrefix, net.PubKeyHashAddrID)
}

// NewAddressPQPubKeyHash returns a new address carrying the post-quantum
// scheme tag of the passed network.  The payload is opaque to the core; only
// the version byte differs from a classical P2PKH address.
func NewAddressPQPubKeyHash(pkHash []byte, net *chaincfg.Params) (*AddressPubKeyHash, error) {
	return newAddressPubKeyHash(pkHash, net.AddressPrefix, net.PQPubKeyHashAddrID)
}

// newAddressPubKeyHash is the internal API to create a pubkey hash address
// with a known leading identifier byte for a network, rather than looking it
// up through its parameters.  This is useful when creating a new address
// structure from a string encoding where the identifier byte is already
// known.
func newAddressPubKeyHash(pkHash []byte, prefix string, netID byte) (*AddressPubKeyHash, error) {
	// Check for a valid pubkey hash length.
	if len(pkHash) != chainhash.Hash160Size {
		return nil, errors.New("pkHash must be 20 bytes")
	}

	addr := &AddressPubKeyHash{prefix: prefix, netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-pubkey-hash
// address.  Part of the Address interface.
func (a *AddressPubKeyHash) EncodeAddress() string {
	return encodeAddress(a.prefix, a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a pubkey hash.  Part of the Address interface.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether or not the pay-to-pubkey-hash address is associated
// with the passed qtc network.
func (a *AddressPubKeyHash) IsForNet(net *chaincfg.Params) bool {
	return a.netID == net.PubKeyHashAddrID || a.netID == net.PQPubKeyHashAddrID
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
// This is equivalent to calling EncodeAddress, but is provided so the type can
// be used as a fmt.Stringer.
func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the underlying array of the pubkey hash.  This can be useful
// when an array is more appropriate than a slice (for example, when used as
// map keys).
func (a *AddressPubKeyHash) Hash160() *[chainhash.Hash160Size]byte {
	return &a.hash
}

// DecodeAddress decodes the string encoding of an address and returns
// the Address if addr is a valid encoding for a known address type.
//
// Only addresses of defaultNet are decoded: the string must begin with its
// address prefix and carry one of its pay-to-pubkey-hash version bytes, and
// an error is returned otherwise.
func DecodeAddress(addr string, defaultNet *chaincfg.Params) (Address, error) {
	// Every address carries the human-readable network tag followed by the
	// base58check payload.
	if !strings.HasPrefix(addr, defaultNet.AddressPrefix) {
		return nil, ErrMissingNetPrefix
	}
	encoded := addr[len(defaultNet.AddressPrefix):]

	// Switch on decoded length to determine the type.
	decoded, netID, err := base58.CheckDecode(encoded)
	if err != nil {
		if err == base58.ErrChecksum {
			return nil, ErrChecksumMismatch
		}
		return nil, errors.New("decoded address is of unknown format")
	}
	switch len(decoded) {
	case chainhash.Hash160Size: // P2PKH or post-quantum tagged P2PKH
		switch netID {
		case defaultNet.PubKeyHashAddrID, defaultNet.PQPubKeyHashAddrID:
			return newAddressPubKeyHash(decoded,
				defaultNet.AddressPrefix, netID)
		default:
			return nil, ErrUnknownAddressType
		}

	default:
		return nil, errors.New("decoded address is of unknown size")
	}
}
