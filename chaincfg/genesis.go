// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/clein154/qtc/chaincfg/chainhash"
	"github.com/clein154/qtc/wire"
)

// genesisCoinbaseTx constructs the single coinbase transaction of a genesis
// block.  The signature script carries the timestamped genesis message and
// the lone output pays zero qit to the burn script: the reward schedule
// starts at height 1, so there is no pre-mine.
func genesisCoinbaseTx(message string) *wire.MsgTx {
	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{
			{
				PreviousOutPoint: wire.OutPoint{
					Hash:  chainhash.Hash{},
					Index: wire.MaxPrevOutIndex,
				},
				SignatureScript: []byte(message),
				Sequence:        wire.MaxTxInSequenceNum,
			},
		},
		TxOut: []*wire.TxOut{
			{
				Value:    0,
				PkScript: genesisOutputScript,
			},
		},
		LockTime: 0,
	}
}

// genesisOutputScript is the pay-to-pubkey-hash script of the fixed genesis
// address.  The hash160 payload is a fixed constant shared by every network;
// nothing is spendable from it since the output value is zero.
var genesisOutputScript = []byte{
	0x76, 0xa9, 0x14, // OP_DUP OP_HASH160 OP_DATA_20
	0x51, 0x7c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x7c, 0x51,
	0x88, 0xac, // OP_EQUALVERIFY OP_CHECKSIG
}

// mainNetGenesisCoinbaseTx is the coinbase transaction of the main network
// genesis block.
var mainNetGenesisCoinbaseTx = genesisCoinbaseTx(
	"The Times 10/Jul/2025 Chancellor on brink of second bailout for banks - QTC Genesis")

// mainNetGenesisMerkleRoot is the hash of the first transaction in the
// genesis block for the main network.
var mainNetGenesisMerkleRoot = mainNetGenesisCoinbaseTx.TxHash()

// mainNetGenesisBlock defines the genesis block of the block chain which
// serves as the public transaction ledger for the main network.  The genesis
// block is not mined: its nonce is zero and no proof of work is required of
// it.
var mainNetGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: mainNetGenesisMerkleRoot,
		Timestamp:  1752105600, // 2025-07-10 00:00:00 +0000 UTC
		Difficulty: 20,
		Nonce:      0,
		Height:     0,
	},
	Transactions: []*wire.MsgTx{mainNetGenesisCoinbaseTx},
}

// mainNetGenesisHash is the hash of the first block in the block chain for
// the main network (genesis block).
var mainNetGenesisHash = mainNetGenesisBlock.BlockHash()

// testNetGenesisCoinbaseTx is the coinbase transaction of the test network
// genesis block.
var testNetGenesisCoinbaseTx = genesisCoinbaseTx(
	"QTC Testnet Genesis - Jul 2025 - Testing blockchain implementation")

// testNetGenesisMerkleRoot is the hash of the first transaction in the
// genesis block for the test network.
var testNetGenesisMerkleRoot = testNetGenesisCoinbaseTx.TxHash()

// testNetGenesisBlock defines the genesis block of the block chain which
// serves as the public transaction ledger for the test network.
var testNetGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: testNetGenesisMerkleRoot,
		Timestamp:  1752192000, // 2025-07-11 00:00:00 +0000 UTC
		Difficulty: 16,
		Nonce:      0,
		Height:     0,
	},
	Transactions: []*wire.MsgTx{testNetGenesisCoinbaseTx},
}

// testNetGenesisHash is the hash of the first block in the block chain for
// the test network (genesis block).
var testNetGenesisHash = testNetGenesisBlock.BlockHash()

// regNetGenesisCoinbaseTx is the coinbase transaction of the regression
// network genesis block.  It shares the main network message; the two chains
// still have distinct genesis hashes because their headers differ.
var regNetGenesisCoinbaseTx = genesisCoinbaseTx(
	"The Times 10/Jul/2025 Chancellor on brink of second bailout for banks - QTC Genesis")

// regNetGenesisMerkleRoot is the hash of the first transaction in the
// genesis block for the regression network.
var regNetGenesisMerkleRoot = regNetGenesisCoinbaseTx.TxHash()

// regNetGenesisBlock defines the genesis block of the block chain which
// serves as the public transaction ledger for the regression network.
var regNetGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: regNetGenesisMerkleRoot,
		Timestamp:  1752105600, // 2025-07-10 00:00:00 +0000 UTC
		Difficulty: 6,
		Nonce:      0,
		Height:     0,
	},
	Transactions: []*wire.MsgTx{regNetGenesisCoinbaseTx},
}

// regNetGenesisHash is the hash of the first block in the block chain for
// the regression network (genesis block).
var regNetGenesisHash = regNetGenesisBlock.BlockHash()
