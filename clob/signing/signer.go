package signing

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/betbot/polyapis/clob/types"
)

// ConfigurationError reports a signer that cannot be constructed. It is fatal:
// the caller must fix the key or chain id before any signing can happen.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "signer configuration: " + e.Reason
}

// Signer holds one private key and one chain id for its lifetime. The key is
// never mutated after construction, so a Signer is safe to share across
// goroutines, and it never appears in errors or logs.
type Signer struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    int64
}

// NewSigner parses a hex private key (0x prefix optional) and binds it to a
// chain id.
func NewSigner(privateKeyHex string, chainID int64) (*Signer, error) {
	privateKeyHex = strings.TrimSpace(privateKeyHex)
	if privateKeyHex == "" {
		return nil, &ConfigurationError{Reason: "private key is empty"}
	}
	if chainID <= 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("chain id must be positive, got %d", chainID)}
	}

	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")
	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		// Deliberately drops the underlying value: the key must not leak
		// through the error chain.
		return nil, &ConfigurationError{Reason: "private key is not a valid 32-byte secp256k1 scalar"}
	}
	return NewSignerFromKey(key, chainID)
}

// NewSignerFromKey wraps an already-parsed key.
func NewSignerFromKey(key *ecdsa.PrivateKey, chainID int64) (*Signer, error) {
	if key == nil {
		return nil, &ConfigurationError{Reason: "private key is nil"}
	}
	if chainID <= 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("chain id must be positive, got %d", chainID)}
	}
	return &Signer{
		privateKey: key,
		address:    crypto.PubkeyToAddress(key.PublicKey),
		chainID:    chainID,
	}, nil
}

// Address returns the address derived from the private key.
func (s *Signer) Address() common.Address {
	return s.address
}

// ChecksumAddress returns the derived address in EIP-55 checksummed form.
func (s *Signer) ChecksumAddress() types.EthAddress {
	return types.EthAddress(s.address.Hex())
}

// ChainID returns the chain the signer's signatures are scoped to.
func (s *Signer) ChainID() int64 {
	return s.chainID
}

// Sign produces a deterministic recoverable ECDSA signature over a 32-byte
// digest. The digest must already be hashed by the caller; Sign never hashes
// its input. The result is 0x + 130 hex chars (r ‖ s ‖ v with v in {27, 28},
// the encoding Ethereum verifiers expect).
func (s *Signer) Sign(digest []byte) (string, error) {
	if len(digest) != common.HashLength {
		return "", &types.FormatError{
			Expected: "32-byte digest",
			Value:    types.NormalizeHexBytes(digest),
		}
	}

	sig, err := crypto.Sign(digest, s.privateKey)
	if err != nil {
		// Curve failures mean corrupted key material or a library defect;
		// nothing to recover from here.
		return "", err
	}
	sig[64] += 27

	return "0x" + hex.EncodeToString(sig), nil
}
