package evmasm

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers can match against these with errors.Is;
// the concrete error types below carry the offending name or index and
// are reachable via errors.As.
var (
	ErrUnknownOpcode      = errors.New("evmasm: unknown opcode")
	ErrUndefinedReference = errors.New("evmasm: undefined reference")
	ErrDuplicateScope     = errors.New("evmasm: duplicate scope name")
	ErrAddressOverflow    = errors.New("evmasm: address overflow")
	ErrMissingArgument    = errors.New("evmasm: missing template argument")
)

// UnknownOpcodeError reports that a mnemonic has no entry in the opcode
// table.
type UnknownOpcodeError struct {
	Name string
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("evmasm: unknown opcode %q", e.Name)
}

func (e *UnknownOpcodeError) Unwrap() error { return ErrUnknownOpcode }

// UndefinedReferenceError reports that a LabelRef, BytesPtr, or BytesSize
// names no Scope or BytesScope anywhere in the tree.
type UndefinedReferenceError struct {
	Name string
}

func (e *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("evmasm: undefined reference %q", e.Name)
}

func (e *UndefinedReferenceError) Unwrap() error { return ErrUndefinedReference }

// DuplicateScopeError reports that two Scope/BytesScope nodes share a
// name. Scope and BytesScope names share one flat namespace; shadowing
// is not supported (see DESIGN.md).
type DuplicateScopeError struct {
	Name string
}

func (e *DuplicateScopeError) Error() string {
	return fmt.Sprintf("evmasm: duplicate scope name %q", e.Name)
}

func (e *DuplicateScopeError) Unwrap() error { return ErrDuplicateScope }

// AddressOverflowError reports that an offset or size failed to fit in
// 32 bytes.
type AddressOverflowError struct {
	Name  string
	Value uint64
}

func (e *AddressOverflowError) Error() string {
	return fmt.Sprintf("evmasm: address overflow at %q: value %d does not fit in 32 bytes", e.Name, e.Value)
}

func (e *AddressOverflowError) Unwrap() error { return ErrAddressOverflow }

// MissingArgumentError reports that a Template.Instantiate call did not
// supply enough arguments to satisfy every Placeholder in the template.
type MissingArgumentError struct {
	Index int
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("evmasm: missing argument for placeholder %d", e.Index)
}

func (e *MissingArgumentError) Unwrap() error { return ErrMissingArgument }
