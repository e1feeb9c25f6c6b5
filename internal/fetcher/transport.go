package fetcher

import (
	"net"
	"net/http"
	"time"
)

const maxProxyConns = 16

// newTransport builds the transport shared by every collector of a Fetcher.
// All requests go to the proxy host, so idle connections are kept per host.
func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:          maxProxyConns,
		MaxIdleConnsPerHost:   maxProxyConns,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
}
