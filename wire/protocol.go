// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// QTCNet represents which qtc network a message belongs to.
type QTCNet uint32

// Constants used to indicate the message qtc network.  They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main qtc network.
	MainNet QTCNet = 0xc4d1a7f1

	// TestNet represents the test network.
	TestNet QTCNet = 0xc4d1a7f2

	// RegNet represents the regression/development network.
	RegNet QTCNet = 0xc4d1a7f3
)

// qtcNetStrings is a map of qtc networks back to their constant names for
// pretty printing.
var qtcNetStrings = map[QTCNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegNet:  "RegNet",
}

// String returns the QTCNet in human-readable form.
func (n QTCNet) String() string {
	if s, ok := qtcNetStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown QTCNet (%d)", uint32(n))
}
