package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const userAgent = "polyapis-go"

// Client is a thin resty wrapper shared by the CLOB, data-api and subgraph
// clients: base URL, retries with Retry-After handling, JSON in/out.
// Proxy settings come from the environment (HTTP_PROXY / HTTPS_PROXY),
// which resty honors by default.
type Client struct {
	client *resty.Client
}

func New(host string) *Client {
	host = strings.TrimSuffix(host, "/")

	client := resty.New().
		SetBaseURL(host).
		SetTimeout(60 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		SetRetryAfter(func(client *resty.Client, resp *resty.Response) (time.Duration, error) {
			if resp.StatusCode() == http.StatusTooManyRequests {
				if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
					if d, err := time.ParseDuration(retryAfter + "s"); err == nil {
						return d, nil
					}
				}
				return 10 * time.Second, nil
			}
			return 0, nil
		})

	return &Client{client: client}
}

// RequestOptions carries per-request headers, query params and JSON body.
type RequestOptions struct {
	Headers map[string]string
	Params  map[string]string
	Body    any
}

func (c *Client) newRequest(ctx context.Context, opt *RequestOptions, out any) *resty.Request {
	r := c.client.R().SetContext(ctx)
	r.SetHeader("Accept", "application/json")
	r.SetHeader("User-Agent", userAgent)

	if opt != nil {
		for k, v := range opt.Headers {
			r.SetHeader(k, v)
		}
		if len(opt.Params) > 0 {
			r.SetQueryParams(opt.Params)
		}
		if opt.Body != nil {
			r.SetHeader("Content-Type", "application/json")
			r.SetBody(opt.Body)
		}
	}
	if out != nil {
		r.SetResult(out)
	}
	return r
}

func (c *Client) Get(ctx context.Context, endpoint string, opt *RequestOptions, out any) error {
	return checkResponse(c.newRequest(ctx, opt, out).Get(endpoint))
}

func (c *Client) Post(ctx context.Context, endpoint string, opt *RequestOptions, out any) error {
	return checkResponse(c.newRequest(ctx, opt, out).Post(endpoint))
}

func (c *Client) Delete(ctx context.Context, endpoint string, opt *RequestOptions, out any) error {
	return checkResponse(c.newRequest(ctx, opt, out).Delete(endpoint))
}

// GetText fetches an endpoint that answers with a bare text body.
func (c *Client) GetText(ctx context.Context, endpoint string, opt *RequestOptions) (string, error) {
	resp, err := c.newRequest(ctx, opt, nil).Get(endpoint)
	if cerr := checkResponse(resp, err); cerr != nil {
		return "", cerr
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return "http " + e.Status + ": " + e.Body
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return errors.Wrap(err, "http request")
	}
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	var wire struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(resp.Body(), &wire) == nil && wire.Error != "" {
		body = wire.Error
	}
	return &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       body,
	}
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
