package evmasm

import "bytes"

// emit performs the one final, purely sequential walk of a stable Layout,
// writing bytes to an output buffer sized to the final length.
func emit(l *Layout) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, l.total))

	for _, it := range l.items {
		switch it.kind {
		case kindOpcode:
			buf.WriteByte(it.opcodeByte)

		case kindLiteral:
			buf.WriteByte(Push1Op + byte(len(it.literal)-1))
			buf.Write(it.literal)

		case kindScopeEntry:
			buf.WriteByte(JumpdestOp)

		case kindScopeExit:
			// bookkeeping only; contributes no bytes.

		case kindBytesScope:
			buf.Write(it.blob)

		case kindRef:
			var target uint64
			switch it.refKind {
			case refLabel, refBytesPtr:
				target = l.addr[it.name]
			case refBytesSize:
				target = l.size[it.name]
			}
			buf.WriteByte(Push1Op + byte(it.width-1))
			writeBigEndian(buf, target, it.width)

		default:
			panic("evmasm: unhandled item kind during emit")
		}
	}

	return buf.Bytes()
}

// writeBigEndian writes v as exactly width big-endian bytes, left-padded
// with zeros so the emitted length matches the promised PUSH width.
func writeBigEndian(buf *bytes.Buffer, v uint64, width uint) {
	out := make([]byte, width)
	for i := int(width) - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	buf.Write(out)
}

// Assemble flattens root, resolves the fixed point, and emits the
// final byte sequence. It is a pure, synchronous computation with no
// dependency on any prior Assemble call.
func Assemble(root Node) ([]byte, error) {
	items, err := flatten(root)
	if err != nil {
		return nil, err
	}
	layout, err := computeLayout(items)
	if err != nil {
		return nil, err
	}
	return emit(layout), nil
}
