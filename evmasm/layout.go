package evmasm

import (
	"bytes"
	"fmt"
)

// This file implements the fixed-point layout algorithm: flatten the IR
// into a linear instruction stream, then iterate assigning addresses and
// choosing the narrowest PUSH width for each reference until nothing
// changes. It is structured after the Assembler.Fix / Assembler.process
// queue-driven convergence loop this package's layered address-resolution
// style is descended from, simplified because EVM PUSH-width resolution
// has no equivalent of a negative-offset, variable-length code-offset
// encoding: a reference's width depends only on the magnitude of its
// target address or size, so the grow-only fixed point alone is complete
// (see DESIGN.md).

type refKind int

const (
	refLabel refKind = iota
	refBytesPtr
	refBytesSize
)

type itemKind int

const (
	kindOpcode itemKind = iota
	kindLiteral
	kindScopeEntry
	kindScopeExit
	kindBytesScope
	kindRef
)

// item is one entry in the flattened instruction stream.
type item struct {
	kind itemKind

	// kindOpcode
	opcodeByte byte

	// kindLiteral
	literal []byte

	// kindScopeEntry / kindBytesScope / kindRef: Name identifies the
	// scope this item defines or refers to.
	name string

	// kindBytesScope
	blob []byte

	// kindRef
	refKind refKind
	width   uint // current width guess, grows monotonically to the minimum required

	// offset is this item's starting address, valid once layout is stable.
	offset uint64
}

// length returns this item's byte length given its current width guess.
func (it *item) length() uint64 {
	switch it.kind {
	case kindOpcode:
		return 1
	case kindLiteral:
		return 1 + uint64(len(it.literal))
	case kindScopeEntry:
		return 1
	case kindScopeExit:
		return 0
	case kindBytesScope:
		return uint64(len(it.blob))
	case kindRef:
		return 1 + uint64(it.width)
	default:
		panic("evmasm: unhandled item kind")
	}
}

// String renders one item for debugging: its offset, byte length, kind,
// and (where relevant) the name it defines or refers to.
func (it *item) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%06x ", it.offset)
	switch it.kind {
	case kindOpcode:
		fmt.Fprintf(&buf, "op   0x%02x", it.opcodeByte)
	case kindLiteral:
		fmt.Fprintf(&buf, "lit  %x", it.literal)
	case kindScopeEntry:
		fmt.Fprintf(&buf, "scope-entry %s", it.name)
	case kindScopeExit:
		fmt.Fprintf(&buf, "scope-exit  %s", it.name)
	case kindBytesScope:
		fmt.Fprintf(&buf, "bytes %s (%d bytes)", it.name, len(it.blob))
	case kindRef:
		fmt.Fprintf(&buf, "ref  %s w=%d", it.name, it.width)
	}
	return buf.String()
}

// flattener walks the IR in program order, producing the linear item
// list and validating structural invariants as it goes.
type flattener struct {
	items []*item
	seen  map[string]struct{}
}

func flatten(root Node) ([]*item, error) {
	f := &flattener{seen: make(map[string]struct{})}
	if err := f.walk(root); err != nil {
		return nil, err
	}
	return f.items, nil
}

func (f *flattener) declare(name string) error {
	if _, dup := f.seen[name]; dup {
		return &DuplicateScopeError{Name: name}
	}
	f.seen[name] = struct{}{}
	return nil
}

func (f *flattener) walk(n Node) error {
	switch v := n.(type) {
	case *LiteralNode:
		assert(len(v.Bytes) >= 1 && len(v.Bytes) <= 32, "Literal must carry 1..32 bytes, got %d", len(v.Bytes))
		f.items = append(f.items, &item{kind: kindLiteral, literal: v.Bytes})
		return nil

	case *OpcodeNode:
		code, err := Lookup(v.Name)
		if err != nil {
			return err
		}
		f.items = append(f.items, &item{kind: kindOpcode, opcodeByte: code})
		return nil

	case *LabelRefNode:
		f.items = append(f.items, &item{kind: kindRef, refKind: refLabel, name: v.Name, width: 1})
		return nil

	case *BytesPtrNode:
		f.items = append(f.items, &item{kind: kindRef, refKind: refBytesPtr, name: v.Name, width: 1})
		return nil

	case *BytesSizeNode:
		f.items = append(f.items, &item{kind: kindRef, refKind: refBytesSize, name: v.Name, width: 1})
		return nil

	case *RefTableNode:
		for _, name := range v.Names {
			f.items = append(f.items, &item{kind: kindRef, refKind: refLabel, name: name, width: 1})
		}
		return nil

	case *BlockNode:
		for _, child := range v.Children {
			if err := f.walk(child); err != nil {
				return err
			}
		}
		return nil

	case *ScopeNode:
		if err := f.declare(v.Name); err != nil {
			return err
		}
		f.items = append(f.items, &item{kind: kindScopeEntry, name: v.Name})
		for _, child := range v.Children {
			if err := f.walk(child); err != nil {
				return err
			}
		}
		f.items = append(f.items, &item{kind: kindScopeExit, name: v.Name})
		return nil

	case *BytesScopeNode:
		if err := f.declare(v.Name); err != nil {
			return err
		}
		f.items = append(f.items, &item{kind: kindBytesScope, name: v.Name, blob: v.Blob})
		return nil

	case *PlaceholderNode:
		panic("evmasm: unsubstituted Placeholder reached flattening; substitute via Template before Assemble")

	default:
		panic("evmasm: unhandled node type")
	}
}

// Layout is the stable result of the fixed-point solver: an address map,
// a size map (for BytesScopes), and the flattened, width-resolved
// instruction stream ready for Emit.
type Layout struct {
	items []*item
	addr  map[string]uint64
	size  map[string]uint64
	total uint64
}

// String renders every item in program order, one per line, for callers
// who want to print a layout while debugging. Assemble and Instantiate
// never call this themselves.
func (l *Layout) String() string {
	var buf bytes.Buffer
	for _, it := range l.items {
		buf.WriteString(it.String())
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "total: %d bytes\n", l.total)
	return buf.String()
}

// computeLayout runs the address/width fixed-point iteration to completion.
func computeLayout(items []*item) (*Layout, error) {
	addr := make(map[string]uint64)
	size := make(map[string]uint64)

	for {
		addr = make(map[string]uint64, len(addr))
		size = make(map[string]uint64, len(size))

		var offset uint64
		for _, it := range items {
			switch it.kind {
			case kindScopeEntry:
				addr[it.name] = offset
			case kindBytesScope:
				addr[it.name] = offset
				size[it.name] = uint64(len(it.blob))
			}
			it.offset = offset

			length := it.length()
			next := offset + length
			if next < offset {
				return nil, &AddressOverflowError{Name: it.name, Value: offset}
			}
			offset = next
		}

		changed := false
		for _, it := range items {
			if it.kind != kindRef {
				continue
			}
			var target uint64
			switch it.refKind {
			case refLabel, refBytesPtr:
				v, ok := addr[it.name]
				if !ok {
					return nil, &UndefinedReferenceError{Name: it.name}
				}
				target = v
			case refBytesSize:
				v, ok := size[it.name]
				if !ok {
					return nil, &UndefinedReferenceError{Name: it.name}
				}
				target = v
			}
			w := minWidth(target)
			if w > 32 {
				return nil, &AddressOverflowError{Name: it.name, Value: target}
			}
			if w != it.width {
				it.width = w
				changed = true
			}
		}

		if !changed {
			return &Layout{items: items, addr: addr, size: size, total: offset}, nil
		}
	}
}

// minWidth returns the minimum number of bytes needed to hold v as a
// big-endian unsigned integer, with leading zero bytes stripped (minimum
// 1, even for v == 0).
func minWidth(v uint64) uint {
	if v == 0 {
		return 1
	}
	var n uint
	for v > 0 {
		n++
		v >>= 8
	}
	return n
}
