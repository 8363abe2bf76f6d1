// Package evmvalue implements the canonical EVM immediate byte encoding
// used when literal integers, addresses, and byte strings are emitted as
// PUSH immediates.
//
// Any type that can produce its EVM byte form satisfies Value; this package
// provides implementations for the common primitive and wide-integer types,
// plus the capability for a caller to supply their own.
package evmvalue

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Value is the capability any encodable value must satisfy: it can
// produce its canonical EVM immediate byte form.
type Value interface {
	ToEVMBytes() []byte
}

// Encode returns v's canonical EVM immediate byte form, failing if the
// result would exceed the 32-byte PUSH immediate ceiling.
func Encode(v Value) ([]byte, error) {
	b := v.ToEVMBytes()
	if len(b) > 32 {
		return nil, &ValueTooLargeError{Len: len(b)}
	}
	return b, nil
}

// stripLeadingZeros strips leading zero bytes from a big-endian unsigned
// integer representation, with the special case that the zero value still
// encodes to a single 0x00 byte (never the empty sequence).
func stripLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	if i == len(b) {
		if len(b) == 0 {
			return []byte{0x00}
		}
		return b[len(b)-1:]
	}
	return b[i:]
}

// Uint64 is an unsigned integer value, encoded minimally (leading zero
// bytes stripped; zero encodes to a single 0x00 byte).
type Uint64 uint64

func (v Uint64) ToEVMBytes() []byte {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> uint(8*(7-i)))
	}
	return stripLeadingZeros(buf[:])
}

// Uint32 is an unsigned integer value, encoded minimally.
type Uint32 uint32

func (v Uint32) ToEVMBytes() []byte {
	return Uint64(v).ToEVMBytes()
}

// Uint16 is an unsigned integer value, encoded minimally.
type Uint16 uint16

func (v Uint16) ToEVMBytes() []byte {
	return Uint64(v).ToEVMBytes()
}

// Byte is a single unsigned byte value, encoded minimally (0 still
// encodes to 0x00, not the empty sequence).
type Byte byte

func (v Byte) ToEVMBytes() []byte {
	return []byte{byte(v)}
}

// BigUint wraps a *big.Int known to be non-negative, encoded minimally.
type BigUint struct {
	Int *big.Int
}

func (v BigUint) ToEVMBytes() []byte {
	if v.Int == nil || v.Int.Sign() == 0 {
		return []byte{0x00}
	}
	return v.Int.Bytes()
}

// Uint256 wraps a uint256.Int, the canonical 256-bit EVM word type,
// encoded minimally.
type Uint256 struct {
	Int uint256.Int
}

func (v Uint256) ToEVMBytes() []byte {
	b := v.Int.Bytes()
	if len(b) == 0 {
		return []byte{0x00}
	}
	return b
}

// Address is a 20-byte EVM account address, encoded verbatim (no
// stripping: fixed-width identity is semantically meaningful).
type Address [20]byte

func (v Address) ToEVMBytes() []byte {
	out := make([]byte, 20)
	copy(out, v[:])
	return out
}

// AddressFromCommon converts a go-ethereum common.Address into an
// Address value.
func AddressFromCommon(a common.Address) Address {
	return Address(a)
}

// Common converts v back into a go-ethereum common.Address.
func (v Address) Common() common.Address {
	return common.Address(v)
}

// Hash is a 32-byte fixed value (e.g. a storage slot or a hash), encoded
// verbatim.
type Hash [32]byte

func (v Hash) ToEVMBytes() []byte {
	out := make([]byte, 32)
	copy(out, v[:])
	return out
}

// HashFromCommon converts a go-ethereum common.Hash into a Hash value.
func HashFromCommon(h common.Hash) Hash {
	return Hash(h)
}

// Common converts v back into a go-ethereum common.Hash.
func (v Hash) Common() common.Hash {
	return common.Hash(v)
}

// FixedBytes is an N-byte fixed-width array (1..32 bytes), encoded
// verbatim, no stripping.
type FixedBytes []byte

func (v FixedBytes) ToEVMBytes() []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

// Bytes is a variable-length byte string, encoded verbatim, no stripping.
type Bytes []byte

func (v Bytes) ToEVMBytes() []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
