// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main qtc network, which is intended for the transfer
// of monetary value, there also exists a test network and a regression
// network for development.  While qtc applications will typically want to
// use the main network, the other networks are provided so that applications
// can be tested without spending real money.
//
// For library packages, chaincfg provides the ability to look up chain
// parameters.  For main packages, a (typically global) var may be assigned
// the address of one of the standard Param vars for use as the application's
// "active" network.
package chaincfg
