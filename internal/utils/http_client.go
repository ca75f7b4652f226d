package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient("http://localhost:8000", 30*time.Second, 5)
//	resp, err := client.R().Get("/api/auth/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client bound to baseURL. A positive timeout
// bounds every request; a positive rps installs a token-bucket limiter that
// makes each request wait for its turn (or for its context to end) instead
// of failing fast.
func NewHTTPClient(baseURL string, timeout time.Duration, rps float64) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	if rps > 0 {
		burst := max(int(rps), 1)
		limiter := rate.NewLimiter(rate.Limit(rps), burst)
		client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			return limiter.Wait(r.Context())
		})
	}

	return &HTTPClient{Client: client}
}
