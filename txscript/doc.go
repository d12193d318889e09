// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements the qtc transaction script templates.

qtc deliberately supports a single standard output shape, pay-to-pubkey-hash,
so this package is a template builder and parser rather than a full script
engine.  It provides the functions to build a P2PKH output script for an
address, to recover the paying address from an output script, and to build
and split the signature scripts that spend such outputs.  Only the structure
of a signature script is checked here; cryptographic acceptance of a
signature is left to the caller.
*/
package txscript
