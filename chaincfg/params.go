// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"time"

	"github.com/clein154/qtc/chaincfg/chainhash"
	"github.com/clein154/qtc/wire"
)

var (
	// ErrInvalidMonetaryParams describes an error in which the monetary
	// parameters of a Params struct are internally inconsistent, such as a
	// supply cap that the emission schedule can never reach.
	ErrInvalidMonetaryParams = errors.New("invalid monetary parameters")
)

// Params defines a qtc network by its parameters.  These parameters may be
// used by qtc applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.QTCNet

	// DefaultRPCPort defines the default port for the REST/websocket API.
	DefaultRPCPort string

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowInitialDifficulty is the difficulty, expressed as a leading zero
	// bit count, required of blocks before a full retarget window of
	// history exists.
	PowInitialDifficulty uint32

	// PowMinDifficulty and PowMaxDifficulty bound every retarget result.
	PowMinDifficulty uint32
	PowMaxDifficulty uint32

	// PowEpochLength is the number of blocks for which a single proof of
	// work seed remains in effect.  A value of zero pins the seed to the
	// genesis hash for the life of the chain.
	PowEpochLength uint64

	// PowEpochLag is the number of blocks the epoch seed block trails the
	// epoch boundary, so that miners can prepare the next seed before it
	// activates.  Only meaningful when PowEpochLength is non-zero.
	PowEpochLag uint64

	// TargetBlockTime is the desired amount of time to generate each
	// block.
	TargetBlockTime time.Duration

	// RetargetInterval is the number of blocks between difficulty
	// retargets.
	RetargetInterval uint64

	// RetargetAdjustmentFactor is the adjustment factor used to limit the
	// minimum and maximum amount of adjustment that can occur between
	// difficulty retargets.
	RetargetAdjustmentFactor uint64

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is halved.
	SubsidyHalvingInterval uint64

	// InitialSubsidy is the starting coinbase subsidy, in qit.
	InitialSubsidy uint64

	// MaxSupply is the supply cap, in qit.
	MaxSupply uint64

	// MinTxFee is the minimum fee, in qit, that must be paid by a
	// non-coinbase transaction regardless of its size.
	MinTxFee uint64

	// FeePerByte is the per-byte component of the minimum relay fee.
	FeePerByte uint64

	// DustThreshold is the minimum value, in qit, permitted for a
	// non-coinbase transaction output.
	DustThreshold uint64

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins can be spent.
	CoinbaseMaturity uint64

	// MaxBlockSize is the maximum serialized size of a block, in bytes.
	MaxBlockSize uint32

	// AddressPrefix is the human-readable tag prepended to every encoded
	// address of this network.
	AddressPrefix string

	// PubKeyHashAddrID is the version byte for pay-to-pubkey-hash
	// addresses.
	PubKeyHashAddrID byte

	// PQPubKeyHashAddrID is the version byte tagging post-quantum
	// addresses.  The core treats the scheme as opaque; the tag only
	// selects the signature predicate.
	PQPubKeyHashAddrID byte

	// PrivateKeyID is the version byte for WIF-encoded private keys.
	PrivateKeyID byte
}

// MainNetParams defines the network parameters for the main qtc network.
var MainNetParams = Params{
	Name:           "mainnet",
	Net:            wire.MainNet,
	DefaultRPCPort: "8000",

	// Chain parameters
	GenesisBlock:             &mainNetGenesisBlock,
	GenesisHash:              &mainNetGenesisHash,
	PowInitialDifficulty:     20,
	PowMinDifficulty:         6,
	PowMaxDifficulty:         255,
	PowEpochLength:           0,
	PowEpochLag:              64,
	TargetBlockTime:          time.Second * 450, // 7.5 minutes
	RetargetInterval:         10,
	RetargetAdjustmentFactor: 4,

	// Monetary policy
	SubsidyHalvingInterval: 262800, // ~3.75 years at 7.5 minute blocks
	InitialSubsidy:         2710000000,
	MaxSupply:              1999999900000000,
	MinTxFee:               1000,
	FeePerByte:             10,
	DustThreshold:          546,
	CoinbaseMaturity:       100,
	MaxBlockSize:           1024 * 1024,

	// Address encoding magics
	AddressPrefix:      "qtc",
	PubKeyHashAddrID:   0x00,
	PQPubKeyHashAddrID: 0x07,
	PrivateKeyID:       0x80,
}

// TestNetParams defines the network parameters for the test qtc network.
var TestNetParams = Params{
	Name:           "testnet",
	Net:            wire.TestNet,
	DefaultRPCPort: "18080",

	// Chain parameters
	GenesisBlock:             &testNetGenesisBlock,
	GenesisHash:              &testNetGenesisHash,
	PowInitialDifficulty:     16,
	PowMinDifficulty:         6,
	PowMaxDifficulty:         255,
	PowEpochLength:           0,
	PowEpochLag:              64,
	TargetBlockTime:          time.Second * 450,
	RetargetInterval:         10,
	RetargetAdjustmentFactor: 4,

	// Monetary policy
	SubsidyHalvingInterval: 262800,
	InitialSubsidy:         2710000000,
	MaxSupply:              1999999900000000,
	MinTxFee:               100,
	FeePerByte:             10,
	DustThreshold:          546,
	CoinbaseMaturity:       100,
	MaxBlockSize:           1024 * 1024,

	// Address encoding magics
	AddressPrefix:      "qtct",
	PubKeyHashAddrID:   0x6f,
	PQPubKeyHashAddrID: 0x73,
	PrivateKeyID:       0xef,
}

// RegNetParams defines the network parameters for the regression/development
// qtc network.  Not to be confused with the test network, this network is
// sometimes simulated for use in local development where low difficulty
// blocks are desirable.
var RegNetParams = Params{
	Name:           "regnet",
	Net:            wire.RegNet,
	DefaultRPCPort: "28080",

	// Chain parameters
	GenesisBlock:             &regNetGenesisBlock,
	GenesisHash:              &regNetGenesisHash,
	PowInitialDifficulty:     6,
	PowMinDifficulty:         6,
	PowMaxDifficulty:         255,
	PowEpochLength:           0,
	PowEpochLag:              64,
	TargetBlockTime:          time.Second * 450,
	RetargetInterval:         10,
	RetargetAdjustmentFactor: 4,

	// Monetary policy
	SubsidyHalvingInterval: 262800,
	InitialSubsidy:         2710000000,
	MaxSupply:              1999999900000000,
	MinTxFee:               100,
	FeePerByte:             10,
	DustThreshold:          546,
	CoinbaseMaturity:       100,
	MaxBlockSize:           1024 * 1024,

	// Address encoding magics
	AddressPrefix:      "qtcr",
	PubKeyHashAddrID:   0x3a,
	PQPubKeyHashAddrID: 0x3f,
	PrivateKeyID:       0xba,
}

// Validate checks that the monetary parameters of the network are internally
// consistent.  In particular the supply cap must be reachable by the emission
// schedule: the sum of an infinitely halved initial subsidy is bounded by
// initialSubsidy * halvingInterval * 2.
func (p *Params) Validate() error {
	if p.InitialSubsidy == 0 || p.SubsidyHalvingInterval == 0 ||
		p.MaxSupply == 0 || p.DustThreshold == 0 {
		return ErrInvalidMonetaryParams
	}

	theoreticalMax := mulSat(p.InitialSubsidy, p.SubsidyHalvingInterval)
	theoreticalMax = mulSat(theoreticalMax, 2)
	if theoreticalMax < p.MaxSupply {
		return ErrInvalidMonetaryParams
	}
	return nil
}

// mulSat multiplies two uint64 values and saturates at the maximum uint64
// value on overflow.
func mulSat(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	prod := a * b
	if prod/a != b {
		return ^uint64(0)
	}
	return prod
}
