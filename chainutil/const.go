// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

const (
	// QitPerCent is the number of qit in one qtc cent.
	QitPerCent = 1e6

	// QitPerCoin is the number of qit in one qtc (1 QTC).
	QitPerCoin = 1e8

	// MaxQit is the maximum transaction amount allowed in qit, equal to
	// the monetary policy's supply cap of 19,999,999 QTC.
	MaxQit = 1999999900000000
)
