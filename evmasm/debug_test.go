package evmasm

import (
	"strings"
	"testing"

	"github.com/kungfuflex/emasm/evmvalue"
)

func TestLayout_String(t *testing.T) {
	root := Block(Ref("end"), Op("jump"), Scope("end", Op("stop")))
	items, err := flatten(root)
	if err != nil {
		t.Fatal(err)
	}
	layout, err := computeLayout(items)
	if err != nil {
		t.Fatal(err)
	}
	dump := layout.String()
	if !strings.Contains(dump, "scope-entry end") {
		t.Errorf("Layout.String() missing scope-entry line:\n%s", dump)
	}
	if !strings.Contains(dump, "total: 5 bytes") {
		t.Errorf("Layout.String() missing total line:\n%s", dump)
	}
}

func TestTemplate_String(t *testing.T) {
	tmpl := NewTemplate(Block(Placeholder(0), Op("pop")))
	dump, err := tmpl.String(evmvalue.Uint64(0x2a))
	if err != nil {
		t.Fatalf("Template.String: unexpected error: %v", err)
	}
	if !strings.Contains(dump, "lit  2a") {
		t.Errorf("Template.String() missing substituted literal:\n%s", dump)
	}
	if _, err := tmpl.String(); err == nil {
		t.Fatal("Template.String with too few args: expected error, got nil")
	}
}
