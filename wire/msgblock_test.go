// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/clein154/qtc/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// testBlock returns a block with a header and two transactions for
// serialization tests.
func testBlock() *MsgBlock {
	prevHash := chainhash.HashH([]byte("prev block"))
	merkleRoot := chainhash.HashH([]byte("merkle"))
	header := NewBlockHeader(&prevHash, &merkleRoot, 1752105600, 20, 42)
	header.Nonce = 0x1122334455667788

	block := NewMsgBlock(header)
	block.AddTransaction(testTx())
	block.AddTransaction(testTx())
	return block
}

// TestBlockHeaderSerialize tests the header serialize round trip and the
// fixed encoded length.
func TestBlockHeaderSerialize(t *testing.T) {
	header := &testBlock().Header

	var buf bytes.Buffer
	err := header.Serialize(&buf)
	require.NoError(t, err)
	require.Equal(t, BlockHeaderLen, buf.Len())

	var decoded BlockHeader
	err = decoded.Deserialize(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, *header, decoded)
}

// TestBlockHeaderHash verifies the header hash commits to every field.
func TestBlockHeaderHash(t *testing.T) {
	header := testBlock().Header
	base := header.BlockHash()

	mutations := []func(h *BlockHeader){
		func(h *BlockHeader) { h.PrevBlock[0] ^= 0x01 },
		func(h *BlockHeader) { h.MerkleRoot[31] ^= 0x80 },
		func(h *BlockHeader) { h.Timestamp++ },
		func(h *BlockHeader) { h.Difficulty++ },
		func(h *BlockHeader) { h.Nonce++ },
		func(h *BlockHeader) { h.Height++ },
	}
	for i, mutate := range mutations {
		mutated := header
		mutate(&mutated)
		if mutated.BlockHash() == base {
			t.Errorf("mutation #%d did not change the header hash", i)
		}
	}
}

// TestBlockSerialize tests MsgBlock serialize and deserialize round trips.
func TestBlockSerialize(t *testing.T) {
	block := testBlock()

	var buf bytes.Buffer
	err := block.Serialize(&buf)
	require.NoError(t, err)
	require.Equal(t, block.SerializeSize(), buf.Len())

	var decoded MsgBlock
	err = decoded.Deserialize(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, block, &decoded)
	require.Equal(t, block.BlockHash(), decoded.BlockHash())
}

// TestBlockTxHashes verifies the hash list matches the per-transaction
// hashes.
func TestBlockTxHashes(t *testing.T) {
	block := testBlock()
	hashes := block.TxHashes()
	require.Len(t, hashes, len(block.Transactions))
	for i, tx := range block.Transactions {
		require.Equal(t, tx.TxHash(), hashes[i])
	}
}

// TestBlockOverflowErrors performs tests to ensure deserializing blocks which
// are intentionally crafted to use large values for the number of
// transactions are handled properly.
func TestBlockOverflowErrors(t *testing.T) {
	var headerBuf bytes.Buffer
	err := testBlock().Header.Serialize(&headerBuf)
	require.NoError(t, err)

	// Block that claims to have ~uint32 transactions.
	buf := append(headerBuf.Bytes(), 0xff, 0xff, 0xff, 0xff)

	var msg MsgBlock
	err = msg.Deserialize(bytes.NewReader(buf))
	if _, ok := err.(*MessageError); !ok {
		t.Fatalf("Deserialize wrong error got: %v, want: %T", err,
			MessageError{})
	}
}
