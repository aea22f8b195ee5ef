package sdk

import (
	"net/http"
	"strings"
)

// unauthorizedInterceptor watches every response on the client's transport
// and fires the configured hook on any 401, mirroring a global response
// interceptor. Requests to the login and register endpoints are exempt so a
// failed sign-in attempt does not bounce the user who is already on the
// sign-in screen.
type unauthorizedInterceptor struct {
	next http.RoundTripper
	hook func()
}

func (t *unauthorizedInterceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized && !isAuthenticating(req.URL.Path) && t.hook != nil {
		t.hook()
	}
	return resp, nil
}

func isAuthenticating(path string) bool {
	return strings.HasSuffix(path, "/auth/login") || strings.HasSuffix(path, "/auth/register")
}
