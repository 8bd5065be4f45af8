package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"

	"github.com/pkg/errors"
)

// BuildHmacSignature computes the L2 request signature: base64url
// HMAC-SHA256 over timestamp + method + path + body, keyed with the
// base64url-decoded API secret. Padding is kept on the output, matching the
// server's verifier.
func BuildHmacSignature(secret string, timestamp int64, method, requestPath, body string) (string, error) {
	key, err := base64.URLEncoding.DecodeString(secret)
	if err != nil {
		return "", errors.Wrap(err, "decode api secret")
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte(method))
	mac.Write([]byte(requestPath))
	mac.Write([]byte(body))

	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}
