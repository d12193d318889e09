// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides an API for working with modified base58 and Base58Check
encodings.

# Modified Base58 Encoding

Standard base64 encoding would otherwise be a suitable candidate for encoding
binary data as printable text, however it has the downside that several
characters look the same in many fonts (0 and O, I and l).  The modified base58
alphabet drops those characters.

# Base58Check Encoding Scheme

The Base58Check encoding scheme is primarily used for qtc addresses at the
time of this writing, however it can be used to generically encode arbitrary
byte arrays into human-readable strings along with a version byte that can be
used to differentiate the same payload.  A checksum is also calculated to
detect common transcription errors.
*/
package base58
