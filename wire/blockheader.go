// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/clein154/qtc/chaincfg/chainhash"
)

// BlockHeaderLen is the number of bytes a serialized block header occupies.
// PrevBlock and MerkleRoot hashes + Timestamp 8 bytes + Difficulty 4 bytes +
// Nonce 8 bytes + Height 8 bytes.
const BlockHeaderLen = (chainhash.HashSize * 2) + 28

// BlockHeader defines information about a block and is used in the qtc
// block (MsgBlock) message.
type BlockHeader struct {
	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created, as UNIX seconds.
	Timestamp uint64

	// Difficulty of the block expressed as the required number of leading
	// zero bits in its proof of work hash.
	Difficulty uint32

	// Nonce used to generate the block.
	Nonce uint64

	// Height of the block within the chain.
	Height uint64
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	return chainhash.HashRaw(func(w io.Writer) error {
		return writeBlockHeader(w, h)
	})
}

// Deserialize decodes a block header from r into the receiver using a format
// that is suitable for long-term storage such as a database.  The same format
// is used for hashing and for the wire.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// Serialize encodes a block header from the receiver to w using a format that
// is suitable for long-term storage such as a database.  The same format is
// used for hashing and for the wire.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// FromBytes deserializes a block header byte slice.
func (h *BlockHeader) FromBytes(b []byte) error {
	r := bytes.NewReader(b)
	return h.Deserialize(r)
}

// Bytes returns the serialized block header.
func (h *BlockHeader) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	if err := h.Serialize(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewBlockHeader returns a new BlockHeader using the provided previous block
// hash, merkle root hash, timestamp, difficulty, and height with a zero nonce.
func NewBlockHeader(prevHash, merkleRootHash *chainhash.Hash, timestamp uint64,
	difficulty uint32, height uint64) *BlockHeader {

	return &BlockHeader{
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  timestamp,
		Difficulty: difficulty,
		Nonce:      0,
		Height:     height,
	}
}

// readBlockHeader reads a qtc block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	if _, err := io.ReadFull(r, bh.PrevBlock[:]); err != nil {
		return err
	}

	if _, err := io.ReadFull(r, bh.MerkleRoot[:]); err != nil {
		return err
	}

	var err error
	bh.Timestamp, err = binarySerializer.Uint64(r)
	if err != nil {
		return err
	}

	bh.Difficulty, err = binarySerializer.Uint32(r)
	if err != nil {
		return err
	}

	bh.Nonce, err = binarySerializer.Uint64(r)
	if err != nil {
		return err
	}

	bh.Height, err = binarySerializer.Uint64(r)
	return err
}

// writeBlockHeader writes a qtc block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	if _, err := w.Write(bh.PrevBlock[:]); err != nil {
		return err
	}

	if _, err := w.Write(bh.MerkleRoot[:]); err != nil {
		return err
	}

	if err := binarySerializer.PutUint64(w, bh.Timestamp); err != nil {
		return err
	}

	if err := binarySerializer.PutUint32(w, bh.Difficulty); err != nil {
		return err
	}

	if err := binarySerializer.PutUint64(w, bh.Nonce); err != nil {
		return err
	}

	return binarySerializer.PutUint64(w, bh.Height)
}
