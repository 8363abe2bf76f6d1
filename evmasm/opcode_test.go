package evmasm

import "testing"

type lookupRow struct {
	Name     string
	Expected byte
}

func runLookupTests(t *testing.T, rows []lookupRow) {
	t.Helper()
	for _, row := range rows {
		actual, err := Lookup(row.Name)
		if err != nil {
			t.Errorf("Lookup(%q): unexpected error: %v", row.Name, err)
			continue
		}
		if actual != row.Expected {
			t.Errorf("Lookup(%q) = 0x%02x, want 0x%02x", row.Name, actual, row.Expected)
		}
	}
}

func TestLookup_WellKnown(t *testing.T) {
	runLookupTests(t, []lookupRow{
		{"stop", 0x00},
		{"add", 0x01},
		{"mstore", 0x52},
		{"jump", 0x56},
		{"jumpi", 0x57},
		{"jumpdest", 0x5b},
		{"push0", 0x5f},
		{"return", 0xf3},
		{"sha3", 0x20},
		{"keccak256", 0x20},
	})
}

func TestLookup_CaseInsensitive(t *testing.T) {
	runLookupTests(t, []lookupRow{
		{"ADD", 0x01},
		{"MSTORE", 0x52},
		{"JumpDest", 0x5b},
	})
}

func TestLookup_PushFamily(t *testing.T) {
	for n := 1; n <= 32; n++ {
		name := pushName(n)
		code, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): unexpected error: %v", name, err)
		}
		want := Push1Op + byte(n-1)
		if code != want {
			t.Errorf("Lookup(%q) = 0x%02x, want 0x%02x", name, code, want)
		}
	}
}

func TestLookup_DupAndSwapAndLogFamilies(t *testing.T) {
	for n := 1; n <= 16; n++ {
		dup, err := Lookup(dupName(n))
		if err != nil {
			t.Fatalf("Lookup(%q): unexpected error: %v", dupName(n), err)
		}
		if want := byte(0x80 + n - 1); dup != want {
			t.Errorf("Lookup(%q) = 0x%02x, want 0x%02x", dupName(n), dup, want)
		}
		swap, err := Lookup(swapName(n))
		if err != nil {
			t.Fatalf("Lookup(%q): unexpected error: %v", swapName(n), err)
		}
		if want := byte(0x90 + n - 1); swap != want {
			t.Errorf("Lookup(%q) = 0x%02x, want 0x%02x", swapName(n), swap, want)
		}
	}
	for n := 0; n <= 4; n++ {
		log, err := Lookup(logName(n))
		if err != nil {
			t.Fatalf("Lookup(%q): unexpected error: %v", logName(n), err)
		}
		if want := byte(0xa0 + n); log != want {
			t.Errorf("Lookup(%q) = 0x%02x, want 0x%02x", logName(n), log, want)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("frobnicate")
	if err == nil {
		t.Fatal("Lookup(\"frobnicate\"): expected error, got nil")
	}
	var unknown *UnknownOpcodeError
	ok := false
	if e, is := err.(*UnknownOpcodeError); is {
		unknown = e
		ok = true
	}
	if !ok {
		t.Fatalf("Lookup(\"frobnicate\"): error %v is not *UnknownOpcodeError", err)
	}
	if unknown.Name != "frobnicate" {
		t.Errorf("UnknownOpcodeError.Name = %q, want %q", unknown.Name, "frobnicate")
	}
}

func TestIsPushAndIsJump(t *testing.T) {
	if !IsPush("push1") {
		t.Error("IsPush(\"push1\") = false, want true")
	}
	if !IsPush("PUSH32") {
		t.Error("IsPush(\"PUSH32\") = false, want true")
	}
	if !IsPush("push0") {
		t.Error("IsPush(\"push0\") = false, want true")
	}
	if IsPush("add") {
		t.Error("IsPush(\"add\") = true, want false")
	}
	if !IsJump("jump") || !IsJump("JUMPI") {
		t.Error("IsJump should match jump/jumpi case-insensitively")
	}
	if IsJump("jumpdest") {
		t.Error("IsJump(\"jumpdest\") = true, want false")
	}
}
