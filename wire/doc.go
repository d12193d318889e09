// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the qtc wire protocol.

At a high level, this package provides the canonical binary encoding for every
structure that is persisted or hashed by the chain: block headers, transactions
and full blocks.  The same encoding is used for hashing, for long-term database
storage, and for the submit interfaces exposed to collaborators, so there is a
single Serialize/Deserialize pair per type and it round-trips exactly.

All integers are fixed-width little-endian.  Variable-length byte fields carry
a uint32 length prefix and sequences carry a uint32 count prefix.
*/
package wire
