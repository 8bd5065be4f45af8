package signing

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/betbot/polyapis/clob/types"
)

// CreateL1Headers assembles the EIP-712 wallet attestation header set.
// A nil timestamp means "now".
func CreateL1Headers(s *Signer, nonce int64, timestamp *int64) (*types.L1AuthHeader, error) {
	ts := time.Now().Unix()
	if timestamp != nil {
		ts = *timestamp
	}

	sig, err := SignClobAuthMessage(s, ts, nonce)
	if err != nil {
		return nil, errors.Wrap(err, "sign clob auth message")
	}

	return &types.L1AuthHeader{
		PolyAddress:   string(s.ChecksumAddress()),
		PolySignature: sig,
		PolyTimestamp: strconv.FormatInt(ts, 10),
		PolyNonce:     strconv.FormatInt(nonce, 10),
	}, nil
}

// CreateL2Headers assembles the API-key header set for one request.
func CreateL2Headers(s *Signer, creds *types.ApiKeyCreds, args types.L2HeaderArgs, timestamp *int64) (*types.L2AuthHeader, error) {
	if creds == nil {
		return nil, &ConfigurationError{Reason: "api credentials are required for L2 auth"}
	}

	ts := time.Now().Unix()
	if timestamp != nil {
		ts = *timestamp
	}

	sig, err := BuildHmacSignature(creds.Secret, ts, args.Method, args.RequestPath, args.Body)
	if err != nil {
		return nil, errors.Wrap(err, "build hmac signature")
	}

	return &types.L2AuthHeader{
		PolyAddress:    string(s.ChecksumAddress()),
		PolySignature:  sig,
		PolyTimestamp:  strconv.FormatInt(ts, 10),
		PolyAPIKey:     creds.Key,
		PolyPassphrase: creds.Passphrase,
	}, nil
}
