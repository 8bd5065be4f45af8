package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// EthAddress is a 0x-prefixed, EIP-55 checksummed Ethereum address string.
// Values produced by ValidateAddress are always in canonical casing.
type EthAddress string

// Keccak256 is a 0x-prefixed 32-byte hash string (64 hex characters).
// Casing of the accepted body is preserved.
type Keccak256 string

// FormatError reports a value that does not match its expected hex format.
// It is always a local input-validation failure and is never retried.
type FormatError struct {
	Expected string
	Value    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s: got %q", e.Expected, e.Value)
}

// NormalizeHex prefixes a hex string with 0x if missing. No length check.
func NormalizeHex(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return "0x" + s[2:]
	}
	return "0x" + s
}

// NormalizeHexBytes formats raw bytes as a 0x-prefixed hex string.
func NormalizeHexBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func isHexBody(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ValidateAddress normalizes an address given with or without 0x prefix and
// in any casing, and returns it in canonical checksummed form.
func ValidateAddress(s string) (EthAddress, error) {
	v := NormalizeHex(s)
	body := v[2:]
	if len(body) != common.AddressLength*2 || !isHexBody(body) {
		return "", &FormatError{Expected: "Ethereum address (0x + 40 hex chars)", Value: s}
	}
	return EthAddress(common.HexToAddress(v).Hex()), nil
}

// AddressFromBytes converts a raw 20-byte address to its checksummed form.
func AddressFromBytes(b []byte) (EthAddress, error) {
	if len(b) != common.AddressLength {
		return "", &FormatError{Expected: "Ethereum address (20 bytes)", Value: NormalizeHexBytes(b)}
	}
	return EthAddress(common.BytesToAddress(b).Hex()), nil
}

// ValidateKeccak256 normalizes a 32-byte hash given with or without 0x
// prefix. Unlike addresses there is no canonical casing; the body is kept
// as received.
func ValidateKeccak256(s string) (Keccak256, error) {
	v := NormalizeHex(s)
	if len(v) != 66 || !isHexBody(v[2:]) {
		return "", &FormatError{Expected: "Keccak256 hash (0x + 64 hex chars)", Value: s}
	}
	return Keccak256(v), nil
}

// KeccakFromBytes converts a raw 32-byte hash to its 0x-prefixed hex form.
func KeccakFromBytes(b []byte) (Keccak256, error) {
	if len(b) != common.HashLength {
		return "", &FormatError{Expected: "Keccak256 hash (32 bytes)", Value: NormalizeHexBytes(b)}
	}
	return Keccak256(NormalizeHexBytes(b)), nil
}

// ValidateKeccakOrPadded accepts any well-formed 32-byte hex value. Some log
// topics are zero-padded addresses rather than true Keccak256 hashes, so no
// semantic hash validation is possible here. It accepts exactly the same
// textual set as ValidateKeccak256; the separate entry point documents that
// the value may not be a real hash.
func ValidateKeccakOrPadded(s string) (Keccak256, error) {
	v := NormalizeHex(s)
	if len(v) != 66 || !isHexBody(v[2:]) {
		return "", &FormatError{
			Expected: fmt.Sprintf("66-character hex value (0x + 64 hex chars), got %d characters", len(v)),
			Value:    s,
		}
	}
	return Keccak256(v), nil
}

// UnmarshalJSON validates the address and stores it in checksummed form.
func (a *EthAddress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ValidateAddress(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Bytes returns the 20-byte form of the address.
func (a EthAddress) Bytes() []byte {
	return common.HexToAddress(string(a)).Bytes()
}

func (k *Keccak256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ValidateKeccak256(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// OptionalKeccak256 is a Keccak256 that may also be an empty string. Activity
// rows of type REWARD or CONVERSION carry no condition id.
type OptionalKeccak256 string

func (k *OptionalKeccak256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*k = ""
		return nil
	}
	v, err := ValidateKeccak256(s)
	if err != nil {
		return err
	}
	*k = OptionalKeccak256(v)
	return nil
}

// PaddedKeccak256 is a 32-byte hex value that may be either a true hash or a
// zero-padded address (certain log topics). See ValidateKeccakOrPadded.
type PaddedKeccak256 string

func (k *PaddedKeccak256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ValidateKeccakOrPadded(s)
	if err != nil {
		return err
	}
	*k = PaddedKeccak256(v)
	return nil
}
