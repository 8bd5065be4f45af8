package types

import (
	"encoding/json"
	"strings"
	"testing"
)

// EIP-55 reference vector.
const checksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func TestValidateAddress(t *testing.T) {
	lower := strings.ToLower(checksummed)
	upper := "0x" + strings.ToUpper(checksummed[2:])

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"lowercase body", lower, checksummed, true},
		{"uppercase body", upper, checksummed, true},
		{"already checksummed", checksummed, checksummed, true},
		{"no prefix", lower[2:], checksummed, true},
		{"39 hex chars", "0x" + strings.Repeat("a", 39), "", false},
		{"41 hex chars", "0x" + strings.Repeat("a", 41), "", false},
		{"non-hex char", "0x" + strings.Repeat("a", 39) + "g", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAddress(tt.input)
			if tt.ok && err != nil {
				t.Fatalf("ValidateAddress(%q) error: %v", tt.input, err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("ValidateAddress(%q) should fail", tt.input)
				}
				return
			}
			if string(got) != tt.want {
				t.Errorf("ValidateAddress(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateAddressIdempotent(t *testing.T) {
	inputs := []string{
		strings.ToLower(checksummed),
		checksummed,
		"fb6916095ca1df60bb79ce92ce3ea74c37c5d359",
	}
	for _, in := range inputs {
		once, err := ValidateAddress(in)
		if err != nil {
			t.Fatalf("first validation of %q: %v", in, err)
		}
		twice, err := ValidateAddress(string(once))
		if err != nil {
			t.Fatalf("revalidating %q: %v", once, err)
		}
		if once != twice {
			t.Errorf("not idempotent: %s != %s", once, twice)
		}
	}
}

func TestAddressFromBytes(t *testing.T) {
	raw := make([]byte, 20)
	for i := range raw {
		raw[i] = byte(i)
	}
	addr, err := AddressFromBytes(raw)
	if err != nil {
		t.Fatalf("AddressFromBytes: %v", err)
	}
	// Round-trips through the string validator to the same value.
	again, err := ValidateAddress(string(addr))
	if err != nil || again != addr {
		t.Errorf("round trip mismatch: %s vs %s (err %v)", addr, again, err)
	}

	if _, err := AddressFromBytes(raw[:19]); err == nil {
		t.Error("19-byte input should fail")
	}
}

func TestValidateKeccak256Lengths(t *testing.T) {
	body64 := strings.Repeat("ab", 32)

	if _, err := ValidateKeccak256("0x" + body64[:63]); err == nil {
		t.Error("63 hex chars should be rejected")
	}
	if _, err := ValidateKeccak256("0x" + body64 + "a"); err == nil {
		t.Error("65 hex chars should be rejected")
	}
	got, err := ValidateKeccak256("0x" + body64)
	if err != nil {
		t.Fatalf("64 hex chars should be accepted: %v", err)
	}
	if string(got) != "0x"+body64 {
		t.Errorf("unexpected normalization: %s", got)
	}

	// Prefix is added, casing preserved.
	mixed := strings.Repeat("Ab", 32)
	got, err = ValidateKeccak256(mixed)
	if err != nil {
		t.Fatalf("unprefixed input: %v", err)
	}
	if string(got) != "0x"+mixed {
		t.Errorf("case not preserved: %s", got)
	}
}

// The relaxed validator exists for padded-address log topics, but the
// accepted textual set is identical to ValidateKeccak256's.
func TestKeccakOrPaddedSameSet(t *testing.T) {
	inputs := []string{
		"0x" + strings.Repeat("0", 24*2) + "fb6916095ca1df60bb79ce92ce3ea74c37c5d359"[:16], // padded short
		"0x" + strings.Repeat("00", 12) + "fb6916095ca1df60bb79ce92ce3ea74c37c5d359",       // zero-padded address
		"0x" + strings.Repeat("ab", 32),
		strings.Repeat("ab", 32),
		"0x" + strings.Repeat("ab", 31), // 62 chars: reject
		"0x" + strings.Repeat("zz", 32), // non-hex: reject
		"",
	}
	for _, in := range inputs {
		_, strictErr := ValidateKeccak256(in)
		_, relaxedErr := ValidateKeccakOrPadded(in)
		if (strictErr == nil) != (relaxedErr == nil) {
			t.Errorf("validators disagree on %q: strict=%v relaxed=%v", in, strictErr, relaxedErr)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	if got := NormalizeHex("deadbeef"); got != "0xdeadbeef" {
		t.Errorf("NormalizeHex: %s", got)
	}
	if got := NormalizeHex("0xdeadbeef"); got != "0xdeadbeef" {
		t.Errorf("NormalizeHex already prefixed: %s", got)
	}
	// No length validation by design.
	if got := NormalizeHex(""); got != "0x" {
		t.Errorf("NormalizeHex empty: %s", got)
	}
	if got := NormalizeHexBytes([]byte{0xde, 0xad}); got != "0xdead" {
		t.Errorf("NormalizeHexBytes: %s", got)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	_, err := ValidateAddress("0x1234")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "40 hex chars") || !strings.Contains(msg, "0x1234") {
		t.Errorf("error should name expected format and value: %q", msg)
	}
}

func TestJSONValidatingTypes(t *testing.T) {
	var addr EthAddress
	if err := json.Unmarshal([]byte(`"`+strings.ToLower(checksummed)+`"`), &addr); err != nil {
		t.Fatalf("EthAddress unmarshal: %v", err)
	}
	if string(addr) != checksummed {
		t.Errorf("EthAddress not checksummed: %s", addr)
	}
	if err := json.Unmarshal([]byte(`"0x123"`), &addr); err == nil {
		t.Error("short address should fail to unmarshal")
	}

	var hash Keccak256
	if err := json.Unmarshal([]byte(`"0x`+strings.Repeat("1f", 32)+`"`), &hash); err != nil {
		t.Fatalf("Keccak256 unmarshal: %v", err)
	}

	var opt OptionalKeccak256
	if err := json.Unmarshal([]byte(`""`), &opt); err != nil {
		t.Fatalf("OptionalKeccak256 empty: %v", err)
	}
	if opt != "" {
		t.Errorf("expected empty, got %q", opt)
	}
	if err := json.Unmarshal([]byte(`"0x12"`), &opt); err == nil {
		t.Error("malformed non-empty OptionalKeccak256 should fail")
	}

	var padded PaddedKeccak256
	topic := `"0x` + strings.Repeat("00", 12) + "fb6916095ca1df60bb79ce92ce3ea74c37c5d359" + `"`
	if err := json.Unmarshal([]byte(topic), &padded); err != nil {
		t.Fatalf("PaddedKeccak256 unmarshal: %v", err)
	}
}
