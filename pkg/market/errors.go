package market

import (
	"fmt"
	"net/http"
)

// UpstreamError is a non-2xx response (or transport/decode failure) from the
// market data API. StatusCode is 0 when no HTTP status was available.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream error: %s", e.Message)
	}
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}

// RateLimited reports whether the upstream rejected the request with a 429.
func (e *UpstreamError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
