package signing

// EIP-712 domain and attestation constants for CLOB L1 authentication.
// These are a wire-format contract shared with the server's verifier; any
// change invalidates every previously issued signature.
const (
	ClobDomainName = "ClobAuthDomain"

	ClobVersion = "1"

	MsgToSign = "This message attests that I control the given wallet"
)
