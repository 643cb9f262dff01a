package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client so the application can add behavior
// without hiding the resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that asks for gzip-encoded
// responses and gives up after timeout (no timeout when zero). resty
// decompresses gzip bodies transparently.
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().Get("https://example.com/api/version")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Encoding", "gzip")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
