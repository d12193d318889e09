// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chainutil provides qtc-specific convenience functions and types.

# Block Overview

A Block defines a qtc block that provides easier and more efficient
manipulation of raw wire protocol blocks.  It also memoizes hashes for the
block and its transactions on their first access so subsequent accesses don't
have to repeat the relatively expensive hashing operations.

# Tx Overview

A Tx defines a qtc transaction that provides more efficient manipulation of
raw wire protocol transactions.  It memoizes the hash for the transaction on
its first access so subsequent accesses don't have to repeat the relatively
expensive hashing operations.

# Address Overview

The Address interface provides an abstraction for a qtc address.  While the
most common type is a pay-to-pubkey-hash address, future address types are
expected, such as the post-quantum tagged variant already reserved by the
network parameters.
*/
package chainutil
