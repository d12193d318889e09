// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGenesisBlocksDeterministic tests that every network's genesis block
// serializes and hashes identically across runs and that the header commits
// to the coinbase transaction.
func TestGenesisBlocksDeterministic(t *testing.T) {
	nets := []*Params{&MainNetParams, &TestNetParams, &RegNetParams}

	seen := make(map[string]string)
	for _, params := range nets {
		block := params.GenesisBlock

		// A genesis block carries exactly the zero-reward coinbase.
		require.Len(t, block.Transactions, 1, params.Name)
		coinbase := block.Transactions[0]
		require.Len(t, coinbase.TxIn, 1, params.Name)
		require.True(t, coinbase.TxIn[0].PreviousOutPoint.Hash.IsZero(), params.Name)
		require.Equal(t, uint32(0xffffffff), coinbase.TxIn[0].PreviousOutPoint.Index, params.Name)
		require.Equal(t, uint64(0), coinbase.TxOut[0].Value, params.Name)

		// Header commitments.
		require.True(t, block.Header.PrevBlock.IsZero(), params.Name)
		require.Equal(t, coinbase.TxHash(), block.Header.MerkleRoot, params.Name)
		require.Equal(t, uint64(0), block.Header.Height, params.Name)
		require.Equal(t, uint64(0), block.Header.Nonce, params.Name)
		require.Equal(t, params.PowInitialDifficulty, block.Header.Difficulty, params.Name)

		// Recomputing the hash must match the cached params value.
		require.Equal(t, *params.GenesisHash, block.BlockHash(), params.Name)

		// Serialization must succeed and produce a non-empty encoding.
		var buf bytes.Buffer
		require.NoError(t, block.Serialize(&buf))
		require.NotZero(t, buf.Len())

		// Each network must have a distinct genesis hash.
		hashStr := params.GenesisHash.String()
		if other, ok := seen[hashStr]; ok {
			t.Fatalf("%s shares a genesis hash with %s", params.Name, other)
		}
		seen[hashStr] = params.Name
	}
}

// TestParamsValidate checks the monetary parameter sanity rules.
func TestParamsValidate(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNetParams, &RegNetParams} {
		require.NoError(t, params.Validate(), params.Name)
	}

	// A supply cap above the theoretical emission bound must be rejected.
	bad := MainNetParams
	bad.MaxSupply = ^uint64(0)
	require.ErrorIs(t, bad.Validate(), ErrInvalidMonetaryParams)

	bad = MainNetParams
	bad.SubsidyHalvingInterval = 0
	require.ErrorIs(t, bad.Validate(), ErrInvalidMonetaryParams)
}
