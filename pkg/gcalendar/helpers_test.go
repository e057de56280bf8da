package gcalendar_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"golang.org/x/oauth2"
)

// oauth2HTTPClientKey makes oauth2 use the test server's client for token exchange.
var oauth2HTTPClientKey = oauth2.HTTPClient

func rewritingClient(ts *httptest.Server) *http.Client {
	c := ts.Client()
	c.Transport = &rewriteTransport{
		Transport: c.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	return c
}
