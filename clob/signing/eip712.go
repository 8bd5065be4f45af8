package signing

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// The CLOB auth flow signs exactly two struct shapes, so the schemas are
// written out by hand instead of going through a reflective typed-data
// encoder. Field order is part of the type hash and must never change.

type schemaField struct {
	Name string
	Type string
}

type structSchema struct {
	Name   string
	Fields []schemaField
}

var (
	domainSchema = structSchema{
		Name: "EIP712Domain",
		Fields: []schemaField{
			{Name: "name", Type: "string"},
			{Name: "version", Type: "string"},
			{Name: "chainId", Type: "uint256"},
		},
	}

	clobAuthSchema = structSchema{
		Name: "ClobAuth",
		Fields: []schemaField{
			{Name: "address", Type: "address"},
			{Name: "timestamp", Type: "string"},
			{Name: "nonce", Type: "uint256"},
			{Name: "message", Type: "string"},
		},
	}

	domainTypeHash   = domainSchema.typeHash()
	clobAuthTypeHash = clobAuthSchema.typeHash()
)

// encodeType renders the canonical type string, e.g.
// "ClobAuth(address address,string timestamp,uint256 nonce,string message)".
func (s structSchema) encodeType() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, f := range s.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Type)
		b.WriteByte(' ')
		b.WriteString(f.Name)
	}
	b.WriteByte(')')
	return b.String()
}

func (s structSchema) typeHash() common.Hash {
	return crypto.Keccak256Hash([]byte(s.encodeType()))
}

// abiEncodeUint left-pads an unsigned integer to a 32-byte big-endian word.
func abiEncodeUint(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), 32)
}

// DomainSeparator hashes the ClobAuthDomain for the given chain id. The
// separator is unique per (name, version, chainId) and scopes every auth
// signature to one chain, so a Polygon signature cannot be replayed on
// mainnet.
func DomainSeparator(chainID int64) common.Hash {
	enc := make([]byte, 0, 128)
	enc = append(enc, domainTypeHash.Bytes()...)
	enc = append(enc, crypto.Keccak256([]byte(ClobDomainName))...)
	enc = append(enc, crypto.Keccak256([]byte(ClobVersion))...)
	enc = append(enc, abiEncodeUint(big.NewInt(chainID))...)
	return crypto.Keccak256Hash(enc)
}

// hashClobAuth computes hashStruct(ClobAuth). String fields are hashed before
// concatenation, the address is left-padded to a word, the nonce is a
// big-endian word.
func hashClobAuth(address common.Address, timestamp string, nonce int64) common.Hash {
	enc := make([]byte, 0, 160)
	enc = append(enc, clobAuthTypeHash.Bytes()...)
	enc = append(enc, common.LeftPadBytes(address.Bytes(), 32)...)
	enc = append(enc, crypto.Keccak256([]byte(timestamp))...)
	enc = append(enc, abiEncodeUint(big.NewInt(nonce))...)
	enc = append(enc, crypto.Keccak256([]byte(MsgToSign))...)
	return crypto.Keccak256Hash(enc)
}

// AuthDigest computes the final EIP-712 digest:
// keccak256(0x1901 ‖ domainSeparator ‖ hashStruct(ClobAuth)).
func AuthDigest(chainID int64, address common.Address, timestamp string, nonce int64) common.Hash {
	raw := make([]byte, 0, 66)
	raw = append(raw, 0x19, 0x01)
	raw = append(raw, DomainSeparator(chainID).Bytes()...)
	raw = append(raw, hashClobAuth(address, timestamp, nonce).Bytes()...)
	return crypto.Keccak256Hash(raw)
}
