package evmasm

// Convenience composition helpers over the core IR constructors. These
// introduce no new layout or emission semantics — they're thin sugar
// grounded on go-ethereum's core/vm/program package (Jump/JumpIf/Return
// methods on its Program type), kept separate from ir.go so the core
// element constructors stay easy to tell apart from derived sugar.

// Jump pushes the destination label and emits JUMP.
func Jump(label string) *BlockNode {
	return Block(Ref(label), Op("jump"))
}

// JumpIf pushes condition and the destination label, then emits JUMPI.
// condition is itself a Node (e.g. Op("iszero") or a Literal) whose
// emission is expected to leave exactly one word on the stack.
func JumpIf(label string, condition Node) *BlockNode {
	return Block(condition, Ref(label), Op("jumpi"))
}

// Return pushes size then offset and emits RETURN.
func Return(offset, size []byte) *BlockNode {
	return Block(Lit(size), Lit(offset), Op("return"))
}
