package evmasm

import "github.com/kungfuflex/emasm/evmvalue"

// Template holds an IR tree containing Placeholder nodes and, on each
// Instantiate call, substitutes them with Literal nodes built from the
// Value Encoder output of the positional arguments, then runs Layout and
// Emit exactly as Assemble does.
//
// Placeholder substitution happens before flattening, so layout only
// ever sees Literals — no special handling is needed during Layout for
// the parameterized path.
type Template struct {
	root  Node
	arity int
}

// NewTemplate builds a reusable Template from an IR tree that may
// contain Placeholder nodes. Arity is max(i)+1 over every
// Placeholder(i) found in the tree (0 if none are present).
func NewTemplate(root Node) *Template {
	arity := 0
	walkPlaceholders(root, func(i int) {
		if i+1 > arity {
			arity = i + 1
		}
	})
	return &Template{root: root, arity: arity}
}

// Arity returns the number of positional arguments Instantiate requires.
func (t *Template) Arity() int {
	return t.arity
}

// Instantiate substitutes each Placeholder(i) with the Value-Encoder
// output of args[i], then assembles the result. Extra arguments beyond
// Arity are accepted and ignored (see DESIGN.md).
func (t *Template) Instantiate(args ...evmvalue.Value) ([]byte, error) {
	if len(args) < t.arity {
		return nil, &MissingArgumentError{Index: len(args)}
	}

	root, err := substitute(t.root, args)
	if err != nil {
		return nil, err
	}
	return Assemble(root)
}

// String substitutes args into the template and renders the resulting
// Layout, one item per line, for callers debugging a particular
// instantiation. It never writes to stdout/stderr itself.
func (t *Template) String(args ...evmvalue.Value) (string, error) {
	if len(args) < t.arity {
		return "", &MissingArgumentError{Index: len(args)}
	}
	root, err := substitute(t.root, args)
	if err != nil {
		return "", err
	}
	items, err := flatten(root)
	if err != nil {
		return "", err
	}
	layout, err := computeLayout(items)
	if err != nil {
		return "", err
	}
	return layout.String(), nil
}

// walkPlaceholders calls f once for every Placeholder node's index found
// anywhere in the tree, in no particular order.
func walkPlaceholders(n Node, f func(i int)) {
	switch v := n.(type) {
	case *PlaceholderNode:
		f(v.Index)
	case *ScopeNode:
		for _, child := range v.Children {
			walkPlaceholders(child, f)
		}
	case *BlockNode:
		for _, child := range v.Children {
			walkPlaceholders(child, f)
		}
	}
}

// substitute returns a copy of the tree rooted at n with every
// Placeholder(i) replaced by a Literal built from args[i]'s canonical
// EVM bytes.
func substitute(n Node, args []evmvalue.Value) (Node, error) {
	switch v := n.(type) {
	case *PlaceholderNode:
		b, err := evmvalue.Encode(args[v.Index])
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			b = []byte{0x00}
		}
		return Lit(b), nil

	case *ScopeNode:
		children := make([]Node, len(v.Children))
		for i, child := range v.Children {
			sub, err := substitute(child, args)
			if err != nil {
				return nil, err
			}
			children[i] = sub
		}
		return &ScopeNode{Name: v.Name, Children: children}, nil

	case *BlockNode:
		children := make([]Node, len(v.Children))
		for i, child := range v.Children {
			sub, err := substitute(child, args)
			if err != nil {
				return nil, err
			}
			children[i] = sub
		}
		return &BlockNode{Children: children}, nil

	default:
		return n, nil
	}
}
