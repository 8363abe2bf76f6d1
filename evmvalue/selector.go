package evmvalue

import (
	"golang.org/x/crypto/sha3"
)

// Selector returns the 4-byte function selector for the given signature
// (e.g. "transfer(address,uint256)"): the leading 4 bytes of the
// signature's Keccak-256 digest.
func Selector(signature string) Bytes {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	sum := h.Sum(nil)
	return Bytes(sum[:4])
}
