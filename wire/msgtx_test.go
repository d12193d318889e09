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

// testTx returns a transaction with a representative mix of field values for
// serialization tests.
func testTx() *MsgTx {
	prevHash := chainhash.HashH([]byte("prev tx"))
	tx := NewMsgTx(TxVersion)
	tx.AddTxIn(NewTxIn(NewOutPoint(&prevHash, 2), []byte{0x04, 0x31, 0x32, 0x33, 0x34}))
	tx.AddTxOut(NewTxOut(5000000000, []byte{
		0x76, 0xa9, 0x14, 0xc3, 0x98, 0xef, 0xa9, 0xc3,
		0x92, 0xba, 0x60, 0x13, 0xc5, 0xe0, 0x4e, 0xe7,
		0x29, 0x75, 0x5e, 0xf7, 0xf5, 0x8b, 0x32, 0x88,
		0xac,
	}))
	tx.AddTxOut(NewTxOut(1000, []byte{0x76, 0xa9}))
	tx.LockTime = 9
	return tx
}

// TestTxSerialize tests MsgTx serialize and deserialize round trips.
func TestTxSerialize(t *testing.T) {
	tx := testTx()

	var buf bytes.Buffer
	err := tx.Serialize(&buf)
	require.NoError(t, err)
	require.Equal(t, tx.SerializeSize(), buf.Len())

	var decoded MsgTx
	err = decoded.Deserialize(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, tx, &decoded)

	// The hash must commit to the exact encoding.
	require.Equal(t, tx.TxHash(), decoded.TxHash())
}

// TestTxSerializeSize performs tests to ensure the serialize size for various
// transactions is accurate.
func TestTxSerializeSize(t *testing.T) {
	// Empty tx message.
	noTx := NewMsgTx(1)

	tests := []struct {
		in   *MsgTx // Tx to encode
		size int    // Expected serialized size
	}{
		// No inputs or outputs.  Version 4 bytes + in count 4 bytes +
		// out count 4 bytes + lock time 8 bytes.
		{noTx, 20},

		// Transaction with an input and two outputs.
		{testTx(), 20 + (40 + 4 + 5) + (8 + 4 + 25) + (8 + 4 + 2)},
	}

	for i, test := range tests {
		serializedSize := test.in.SerializeSize()
		if serializedSize != test.size {
			t.Errorf("MsgTx.SerializeSize: #%d got: %d, want: %d", i,
				serializedSize, test.size)
			continue
		}
	}
}

// TestTxHashDeterminism ensures the transaction hash only depends on the
// serialized bytes.
func TestTxHashDeterminism(t *testing.T) {
	tx := testTx()
	h1 := tx.TxHash()
	h2 := tx.Copy().TxHash()
	require.Equal(t, h1, h2)

	// Mutating any field must change the hash.
	mutated := tx.Copy()
	mutated.TxOut[0].Value++
	require.NotEqual(t, h1, mutated.TxHash())

	mutated = tx.Copy()
	mutated.TxIn[0].Sequence--
	require.NotEqual(t, h1, mutated.TxHash())
}

// TestTxOverflowErrors performs tests to ensure deserializing transactions
// which are intentionally crafted to use large values for the variable number
// of inputs and outputs are handled properly.  This could otherwise
// potentially be used as an attack vector.
func TestTxOverflowErrors(t *testing.T) {
	tests := []struct {
		buf []byte // Serialized data
	}{
		// Transaction that claims to have ~uint32 inputs.
		{[]byte{
			0x01, 0x00, 0x00, 0x00, // Version
			0xff, 0xff, 0xff, 0xff, // TxIn count
		}},

		// Transaction that claims to have ~uint32 outputs.
		{[]byte{
			0x01, 0x00, 0x00, 0x00, // Version
			0x00, 0x00, 0x00, 0x00, // TxIn count
			0xff, 0xff, 0xff, 0xff, // TxOut count
		}},
	}

	for i, test := range tests {
		var msg MsgTx
		err := msg.Deserialize(bytes.NewReader(test.buf))
		if _, ok := err.(*MessageError); !ok {
			t.Errorf("Deserialize #%d wrong error got: %v, want: %T",
				i, err, MessageError{})
			continue
		}
	}
}

// TestOutPointString checks the human-readable outpoint rendering.
func TestOutPointString(t *testing.T) {
	hash := chainhash.HashH([]byte("op"))
	op := NewOutPoint(&hash, 7)
	require.Equal(t, hash.String()+":7", op.String())

	op = NewOutPoint(&hash, 0)
	require.Equal(t, hash.String()+":0", op.String())
}
