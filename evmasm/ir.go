package evmasm

// Node is a program element: a tagged variant over literals, opcodes,
// label references, named scopes, raw byte regions, and their pointer
// and size references. The IR is built once, never mutated after
// construction, and is only borrowed by Layout/Emit — the tree itself
// is owned by the caller.
type Node interface {
	node()
}

// LiteralNode emits PUSH{len(Bytes)} followed by Bytes verbatim.
// Bytes must be 1..32 bytes long.
type LiteralNode struct {
	Bytes []byte
}

func (*LiteralNode) node() {}

// Lit constructs a Literal node. b must be 1..32 bytes.
func Lit(b []byte) *LiteralNode {
	return &LiteralNode{Bytes: b}
}

// OpcodeNode emits the one-byte opcode resolved from Name via Lookup.
type OpcodeNode struct {
	Name string
}

func (*OpcodeNode) node() {}

// Op constructs an Opcode node for the given mnemonic.
func Op(name string) *OpcodeNode {
	return &OpcodeNode{Name: name}
}

// LabelRefNode emits PUSH{w} of the named Scope's entry address, with w
// chosen by the layout engine.
type LabelRefNode struct {
	Name string
}

func (*LabelRefNode) node() {}

// Ref constructs a LabelRef node naming a Scope.
func Ref(name string) *LabelRefNode {
	return &LabelRefNode{Name: name}
}

// BlockNode is an unnamed ordered sequence of elements: it contributes no
// JUMPDEST and no address of its own, simply concatenating its
// children's emissions in order. It is how a top-level program (or any
// nested grouping that isn't itself a jump target) is expressed — a
// program is just a list of elements with no container of its own.
type BlockNode struct {
	Children []Node
}

func (*BlockNode) node() {}

// Block constructs an unnamed sequence of elements.
func Block(children ...Node) *BlockNode {
	return &BlockNode{Children: children}
}

// ScopeNode is a jump target: it emits JUMPDEST at its address, then its
// children in order. Children appear at the Scope's defining position in
// the parent — they are never relocated to an end-of-program section.
type ScopeNode struct {
	Name     string
	Children []Node
}

func (*ScopeNode) node() {}

// Scope constructs a Scope node with the given name and children.
func Scope(name string, children ...Node) *ScopeNode {
	return &ScopeNode{Name: name, Children: children}
}

// BytesScopeNode is a data region: its Blob is emitted verbatim at its
// address; no JUMPDEST is emitted, and the blob is data, not code.
type BytesScopeNode struct {
	Name string
	Blob []byte
}

func (*BytesScopeNode) node() {}

// RawBytesScope constructs a BytesScope node holding a raw byte blob.
func RawBytesScope(name string, blob []byte) *BytesScopeNode {
	return &BytesScopeNode{Name: name, Blob: blob}
}

// BytesPtrNode emits PUSH{w} of the named BytesScope's starting address
// (the address of its first blob byte, not a JUMPDEST).
type BytesPtrNode struct {
	Name string
}

func (*BytesPtrNode) node() {}

// BytesPtr constructs a BytesPtr node naming a BytesScope.
func BytesPtr(name string) *BytesPtrNode {
	return &BytesPtrNode{Name: name}
}

// BytesSizeNode emits PUSH{w} of the named BytesScope's byte length.
type BytesSizeNode struct {
	Name string
}

func (*BytesSizeNode) node() {}

// BytesSize constructs a BytesSize node naming a BytesScope.
func BytesSize(name string) *BytesSizeNode {
	return &BytesSizeNode{Name: name}
}

// RefTableNode emits len(Names) consecutive PUSH{w} immediates, one per
// named Scope, each width chosen independently by the layout engine. It
// is sugar for writing out a dense jump table without one Ref per entry.
type RefTableNode struct {
	Names []string
}

func (*RefTableNode) node() {}

// RefTable constructs a RefTable node over the given Scope names.
func RefTable(names ...string) *RefTableNode {
	return &RefTableNode{Names: names}
}

// PlaceholderNode is a deferred literal slot, valid only on the
// parameterized path (see Template). At Instantiate time it is replaced
// by the Value-Encoder output of the Index-th runtime argument.
type PlaceholderNode struct {
	Index int
}

func (*PlaceholderNode) node() {}

// Placeholder constructs a Placeholder node for the i-th runtime
// argument (i >= 0).
func Placeholder(i int) *PlaceholderNode {
	return &PlaceholderNode{Index: i}
}
