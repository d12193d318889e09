// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2025 The QTC developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AmountUnit describes a method of converting an Amount to something
// other than the base unit of a qtc.  The value of the AmountUnit
// is the exponent component of the decadic multiple to convert from
// an amount in qtc to an amount counted in units.
type AmountUnit int

// These constants define various units used when describing a qtc
// monetary amount.
const (
	AmountMegaQTC  AmountUnit = 6
	AmountKiloQTC  AmountUnit = 3
	AmountQTC      AmountUnit = 0
	AmountMilliQTC AmountUnit = -3
	AmountMicroQTC AmountUnit = -6
	AmountQit      AmountUnit = -8
)

// String returns the unit as a string.  For recognized units, the SI
// prefix is used, or "Qit" for the base unit.  For all unrecognized
// units, "1eN QTC" is returned, where N is the AmountUnit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaQTC:
		return "MQTC"
	case AmountKiloQTC:
		return "kQTC"
	case AmountQTC:
		return "QTC"
	case AmountMilliQTC:
		return "mQTC"
	case AmountMicroQTC:
		return "μQTC"
	case AmountQit:
		return "Qit"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " QTC"
	}
}

// Amount represents the base qtc monetary unit (colloquially referred
// to as a `Qit').  A single Amount is equal to 1e-8 of a qtc.
type Amount uint64

// round converts a floating point number, which may or may not be
// representable as an integer, to the Amount integer type by rounding to the
// nearest integer.  This is performed by adding 0.5 and relying on integer
// truncation to round the value to the nearest Amount.
func round(f float64) Amount {
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// some value in qtc.  NewAmount errors if f is NaN, infinite, or negative,
// but does not check that the amount is within the total amount of qtc
// producible as f may not refer to an amount at a single moment in time.
//
// NewAmount is for specifically for converting QTC to Qit.
// For creating a new Amount with a uint64 value which denotes a quantity of
// Qit, do a simple type conversion from type uint64 to Amount.
func NewAmount(f float64) (Amount, error) {
	// The amount is only considered invalid if it cannot be represented
	// as an integer type.  This may happen if f is NaN or +-Infinity.
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid qtc amount")
	case f < 0:
		return 0, errors.New("negative qtc amount")
	}

	return round(f * QitPerCoin), nil
}

// ToUnit converts a monetary amount counted in qtc base units to a
// floating point value representing an amount of qtc.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToQTC is the equivalent of calling ToUnit with AmountQTC.
func (a Amount) ToQTC() float64 {
	return a.ToUnit(AmountQTC)
}

// Format formats a monetary amount counted in qtc base units as a
// string for a given unit.  The conversion will succeed for any unit,
// however, known units will be formatted with an appended label describing
// the units with SI notation, or "Qit" for the base unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	formatted := strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64)

	// When formatting full QTC, add trailing zeroes for numbers
	// with decimal point to ease reading of qit amount.
	if u == AmountQTC {
		if strings.Contains(formatted, ".") {
			return fmt.Sprintf("%.8f%s", a.ToUnit(u), units)
		}
	}
	return formatted + units
}

// String is the equivalent of calling Format with AmountQTC.
func (a Amount) String() string {
	return a.Format(AmountQTC)
}

// MulF64 multiplies an Amount by a floating point value.  While this is not
// an operation that must typically be done by a full node or wallet, it is
// useful for services that build on top of qtc (for example, calculating
// a fee by multiplying by a percentage).
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
