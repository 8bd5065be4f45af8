package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/betbot/polyapis/clob/signing"
	"github.com/betbot/polyapis/clob/types"
	"github.com/betbot/polyapis/pkg/httpclient"
)

// ClobClient talks to the CLOB REST API. L1 endpoints (key management) need a
// signer; L2 endpoints additionally need derived API credentials.
type ClobClient struct {
	http   *httpclient.Client
	signer *signing.Signer
	creds  *types.ApiKeyCreds
	log    *logrus.Entry
}

func NewClobClient(host string, signer *signing.Signer, creds *types.ApiKeyCreds, log *logrus.Logger) *ClobClient {
	if host == "" {
		host = DefaultClobHost
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ClobClient{
		http:   httpclient.New(host),
		signer: signer,
		creds:  creds,
		log:    log.WithField("component", "clob"),
	}
}

// SetCreds installs API credentials for L2 endpoints.
func (c *ClobClient) SetCreds(creds *types.ApiKeyCreds) {
	c.creds = creds
}

func (c *ClobClient) canL1Auth() error {
	if c.signer == nil {
		return &signing.ConfigurationError{Reason: "a signer is required for L1 endpoints"}
	}
	return nil
}

func (c *ClobClient) canL2Auth() error {
	if err := c.canL1Auth(); err != nil {
		return err
	}
	if c.creds == nil {
		return &signing.ConfigurationError{Reason: "api credentials are required for L2 endpoints"}
	}
	return nil
}

// ServerTime returns the CLOB server's unix timestamp. Useful for keeping
// L1/L2 header timestamps within the server's acceptance window.
func (c *ClobClient) ServerTime(ctx context.Context) (int64, error) {
	// The endpoint answers with a bare number.
	raw, err := c.http.GetText(ctx, EndpointTime, nil)
	if err != nil {
		return 0, err
	}
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse server time")
	}
	return ts, nil
}

// CreateAPIKey mints a new API key for the wallet (L1).
func (c *ClobClient) CreateAPIKey(ctx context.Context, nonce int64) (*types.ApiKeyCreds, error) {
	if err := c.canL1Auth(); err != nil {
		return nil, err
	}

	headers, err := signing.CreateL1Headers(c.signer, nonce, nil)
	if err != nil {
		return nil, err
	}

	var raw types.ApiKeyRaw
	err = c.http.Post(ctx, EndpointCreateAPIKey, &httpclient.RequestOptions{Headers: headers.Map()}, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "create api key")
	}
	return &types.ApiKeyCreds{Key: raw.ApiKey, Secret: raw.Secret, Passphrase: raw.Passphrase}, nil
}

// DeriveAPIKey re-derives the existing API key for the wallet and nonce (L1).
func (c *ClobClient) DeriveAPIKey(ctx context.Context, nonce int64) (*types.ApiKeyCreds, error) {
	if err := c.canL1Auth(); err != nil {
		return nil, err
	}

	headers, err := signing.CreateL1Headers(c.signer, nonce, nil)
	if err != nil {
		return nil, err
	}

	var raw types.ApiKeyRaw
	err = c.http.Get(ctx, EndpointDeriveAPIKey, &httpclient.RequestOptions{Headers: headers.Map()}, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "derive api key")
	}
	return &types.ApiKeyCreds{Key: raw.ApiKey, Secret: raw.Secret, Passphrase: raw.Passphrase}, nil
}

// CreateOrDeriveAPIKey derives the wallet's existing key and falls back to
// creating one when the wallet has none yet (the derive endpoint answers 400).
func (c *ClobClient) CreateOrDeriveAPIKey(ctx context.Context, nonce int64) (*types.ApiKeyCreds, error) {
	creds, err := c.DeriveAPIKey(ctx, nonce)
	if err == nil {
		return creds, nil
	}
	if httpclient.IsStatus(err, http.StatusBadRequest) {
		c.log.WithField("nonce", nonce).Debug("no existing api key, creating one")
		return c.CreateAPIKey(ctx, nonce)
	}
	return nil, err
}

// GetAPIKeys lists the wallet's active API keys (L2).
func (c *ClobClient) GetAPIKeys(ctx context.Context) ([]string, error) {
	if err := c.canL2Auth(); err != nil {
		return nil, err
	}

	headers, err := signing.CreateL2Headers(c.signer, c.creds, types.L2HeaderArgs{
		Method:      http.MethodGet,
		RequestPath: EndpointGetAPIKeys,
	}, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		ApiKeys []string `json:"apiKeys"`
	}
	err = c.http.Get(ctx, EndpointGetAPIKeys, &httpclient.RequestOptions{Headers: headers.Map()}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "get api keys")
	}
	return out.ApiKeys, nil
}

// DeleteAPIKey revokes the credentials the client is currently using (L2).
func (c *ClobClient) DeleteAPIKey(ctx context.Context) error {
	if err := c.canL2Auth(); err != nil {
		return err
	}

	headers, err := signing.CreateL2Headers(c.signer, c.creds, types.L2HeaderArgs{
		Method:      http.MethodDelete,
		RequestPath: EndpointDeleteAPIKey,
	}, nil)
	if err != nil {
		return err
	}

	return c.http.Delete(ctx, EndpointDeleteAPIKey, &httpclient.RequestOptions{Headers: headers.Map()}, nil)
}

// ClosedOnly reports whether the wallet is restricted to closing positions (L2).
func (c *ClobClient) ClosedOnly(ctx context.Context) (bool, error) {
	if err := c.canL2Auth(); err != nil {
		return false, err
	}

	headers, err := signing.CreateL2Headers(c.signer, c.creds, types.L2HeaderArgs{
		Method:      http.MethodGet,
		RequestPath: EndpointClosedOnly,
	}, nil)
	if err != nil {
		return false, err
	}

	var out struct {
		ClosedOnly bool `json:"closed_only"`
	}
	err = c.http.Get(ctx, EndpointClosedOnly, &httpclient.RequestOptions{Headers: headers.Map()}, &out)
	if err != nil {
		return false, errors.Wrap(err, "get ban status")
	}
	return out.ClosedOnly, nil
}
