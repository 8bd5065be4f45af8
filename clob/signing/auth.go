package signing

import "strconv"

// SignClobAuthMessage builds and signs the ClobAuth attestation for the
// signer's own address. The timestamp is unix seconds, string-encoded inside
// the struct; the nonce distinguishes multiple API keys under one wallet.
// This is the single entry point of the auth core: stateless, safe to call
// repeatedly with fresh timestamps and nonces.
func SignClobAuthMessage(s *Signer, timestamp int64, nonce int64) (string, error) {
	digest := AuthDigest(s.ChainID(), s.Address(), strconv.FormatInt(timestamp, 10), nonce)
	return s.Sign(digest.Bytes())
}
