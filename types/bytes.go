// Package types provides the value types and result discriminants used
// throughout the ewasm package.
package types

import (
	"encoding/hex"
	"errors"
)

// Bytes20 is an owned array of 160 bits, zero by default.
type Bytes20 [20]byte

// Bytes32 is an owned array of 256 bits, zero by default.
type Bytes32 [32]byte

// Uint128 is a little-endian unsigned 128-bit integer. It is an opaque
// byte container; this package does not implement arithmetic on it.
type Uint128 [16]byte

// Uint256 is a little-endian unsigned 256-bit integer. Like Uint128 it is
// an opaque byte container.
type Uint256 [32]byte

// Semantic aliases for the fixed-width quantities crossing the host boundary.
type (
	Address      = Bytes20
	Hash         = Bytes32
	StorageKey   = Bytes32
	StorageValue = Bytes32
	Topic        = Bytes32
	EtherValue   = Uint128
	Difficulty   = Uint256
)

func (b Bytes20) String() string { return hex.EncodeToString(b[:]) }
func (b Bytes32) String() string { return hex.EncodeToString(b[:]) }
func (u Uint128) String() string { return hex.EncodeToString(u[:]) }
func (u Uint256) String() string { return hex.EncodeToString(u[:]) }

// Bytes returns the value as a byte slice.
func (b Bytes20) Bytes() []byte { return b[:] }

// Bytes returns the value as a byte slice.
func (b Bytes32) Bytes() []byte { return b[:] }

// NewBytes20 creates a Bytes20 from a byte slice.
// Returns an error if the slice is not exactly 20 bytes long.
func NewBytes20(b []byte) (Bytes20, error) {
	if len(b) != len(Bytes20{}) {
		return Bytes20{}, errors.New("got wrong number of bytes for Bytes20")
	}
	var out Bytes20
	copy(out[:], b)
	return out, nil
}

// NewBytes32 creates a Bytes32 from a byte slice.
// Returns an error if the slice is not exactly 32 bytes long.
func NewBytes32(b []byte) (Bytes32, error) {
	if len(b) != len(Bytes32{}) {
		return Bytes32{}, errors.New("got wrong number of bytes for Bytes32")
	}
	var out Bytes32
	copy(out[:], b)
	return out, nil
}

// ForceNewBytes20 creates a Bytes20 from a hex string.
// It panics in case the input is invalid.
func ForceNewBytes20(input string) Bytes20 {
	data, err := hex.DecodeString(input)
	if err != nil {
		panic("could not decode hex bytes")
	}
	out, err := NewBytes20(data)
	if err != nil {
		panic(err)
	}
	return out
}

// ForceNewBytes32 creates a Bytes32 from a hex string.
// It panics in case the input is invalid.
func ForceNewBytes32(input string) Bytes32 {
	data, err := hex.DecodeString(input)
	if err != nil {
		panic("could not decode hex bytes")
	}
	out, err := NewBytes32(data)
	if err != nil {
		panic(err)
	}
	return out
}
