package evmasm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHelpers_Jump(t *testing.T) {
	root := Block(Jump("end"), Scope("end", Op("stop")))
	got, err := Assemble(root)
	if err != nil {
		t.Fatalf("Assemble: unexpected error: %v", err)
	}
	want := []byte{0x60, 0x03, 0x56, 0x5b, 0x00}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpers_JumpIf(t *testing.T) {
	root := Block(JumpIf("end", Lit([]byte{0x01})), Scope("end", Op("stop")))
	got, err := Assemble(root)
	if err != nil {
		t.Fatalf("Assemble: unexpected error: %v", err)
	}
	// PUSH1 1 (condition), PUSH1 addr(end) (destination), JUMPI, JUMPDEST, STOP.
	want := []byte{0x60, 0x01, 0x60, 0x05, 0x57, 0x5b, 0x00}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble mismatch (-want +got):\n%s", diff)
	}
}

func TestHelpers_Return(t *testing.T) {
	root := Return([]byte{0x00}, []byte{0x20})
	got, err := Assemble(root)
	if err != nil {
		t.Fatalf("Assemble: unexpected error: %v", err)
	}
	want := []byte{0x60, 0x20, 0x60, 0x00, 0xf3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble mismatch (-want +got):\n%s", diff)
	}
}

func TestRefTable(t *testing.T) {
	root := Block(
		RefTable("a", "b"),
		Scope("a", Op("stop")),
		Scope("b", Op("stop")),
	)
	got, err := Assemble(root)
	if err != nil {
		t.Fatalf("Assemble: unexpected error: %v", err)
	}
	// ref(a): len2, ref(b): len2 => scope "a" starts at offset 4;
	// scope "b" starts after "a"'s JUMPDEST+STOP, at offset 6.
	want := []byte{0x60, 0x04, 0x60, 0x06, 0x5b, 0x00, 0x5b, 0x00}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble mismatch (-want +got):\n%s", diff)
	}
}
