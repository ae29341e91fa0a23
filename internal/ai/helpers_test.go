package ai

import (
	"net/http"
	"net/url"
)

// hostRewriter points every request at an httptest server while keeping the
// path and query the provider built.
type hostRewriter struct {
	target *url.URL
}

func (h hostRewriter) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = h.target.Scheme
	req.URL.Host = h.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(serverURL string) *http.Client {
	u, err := url.Parse(serverURL)
	if err != nil {
		panic(err)
	}
	return &http.Client{Transport: hostRewriter{target: u}}
}
