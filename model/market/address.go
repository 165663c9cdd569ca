package market

import (
	"encoding/hex"
	"strings"
)

// Address represents the 8 byte address of a marketplace account.
// The reputation engine treats it as an opaque identity reference; address
// derivation and registration are owned by the host.
type Address [AddressLength]byte

const (
	// AddressLength is the size of an account address.
	AddressLength = 8
)

// EmptyAddress represents the "zero address" (account that no one owns).
// It is never a valid reputation subject; the engine itself uses it as the
// actor of automatically triggered bans.
var EmptyAddress = Address{}

// HexToAddress converts a hex string to an Address.
func HexToAddress(h string) Address {
	b, _ := hex.DecodeString(strings.TrimPrefix(h, "0x"))
	return BytesToAddress(b)
}

// BytesToAddress returns Address with value b.
//
// If b is larger than 8, b will be cropped from the left.
// If b is smaller than 8, b will be appended by zeroes at the front.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// Bytes returns the byte representation of the address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the hex string representation of the address.
func (a Address) Hex() string {
	return hex.EncodeToString(a.Bytes())
}

// String returns the string representation of the address.
func (a Address) String() string {
	return a.Hex()
}

// IsEmpty returns true if this is the zero address.
func (a Address) IsEmpty() bool {
	return a == EmptyAddress
}
