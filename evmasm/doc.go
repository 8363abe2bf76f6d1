// Package evmasm assembles a nested, symbolic description of an EVM
// program into the flat byte sequence an EVM implementation executes.
//
// A program is built from the Node constructors in this package: Lit,
// Op, Ref, Scope, RawBytesScope, BytesPtr, BytesSize, RefTable, and
// Block for plain sequences. Scope introduces a named jump target
// (JUMPDEST followed by its children, emitted at the Scope's defining
// position — never relocated); RawBytesScope introduces a named data
// region with no JUMPDEST, addressable via BytesPtr/BytesSize.
//
// Assemble(root) resolves every Ref/BytesPtr/BytesSize to a PUSH
// immediate of the address or size it names, choosing the narrowest
// PUSH width that still fits, and writes the resulting bytecode. The
// width choice and every scope's address are found by a fixed-point
// iteration (see layout.go): widths start at one byte and only grow,
// so the loop is monotone and terminates.
//
// NewTemplate/Template.Instantiate implement the parameterized path: a
// tree containing Placeholder(i) nodes is built once, then each
// Instantiate call substitutes the i-th supplied evmvalue.Value and
// re-runs the same pipeline.
//
// The assembler is a pure, synchronous computation: no I/O, no shared
// mutable state, no suspension points. The same IR may be assembled
// concurrently from multiple goroutines, since Assemble's internal
// layout state is scratch local to each call and the IR itself is never
// mutated.
package evmasm
