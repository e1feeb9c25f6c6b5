package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/nDmitry/rssreader/internal/entity"
)

const (
	DefaultProxyURL = "https://allorigins.hexlet.app/get"
	defaultTimeout  = 30 * time.Second
	userAgent       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
)

// Fetcher downloads feed markup through a CORS-bypass proxy
type Fetcher struct {
	proxyURL  string
	timeout   time.Duration
	transport *http.Transport
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// New creates a fetcher for the given proxy endpoint, DefaultProxyURL if empty
func New(proxyURL string, opts ...Option) *Fetcher {
	if proxyURL == "" {
		proxyURL = DefaultProxyURL
	}

	f := &Fetcher{
		proxyURL: proxyURL,
		timeout:  defaultTimeout,
	}

	for _, opt := range opts {
		opt(f)
	}

	f.transport = newTransport(f.timeout)

	return f
}

type proxyResponse struct {
	Contents string `json:"contents"`
}

// Fetch returns the raw content of target as relayed by the proxy.
// Every failure, including an empty body, is reported as entity.ErrNetwork.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("could not fetch %s: %w: %w", target, entity.ErrNetwork, err)
	}

	requestURL, err := f.requestURL(target)

	if err != nil {
		return "", fmt.Errorf("could not build proxy URL for %s: %w: %w", target, entity.ErrNetwork, err)
	}

	var (
		body     []byte
		fetchErr error
	)

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
		colly.StdlibContext(ctx),
	)

	c.WithTransport(f.transport)
	c.SetRequestTimeout(f.timeout)

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(requestURL); err != nil && fetchErr == nil {
		fetchErr = err
	}

	if fetchErr != nil {
		return "", fmt.Errorf("could not fetch %s: %w: %w", target, entity.ErrNetwork, fetchErr)
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("could not fetch %s: %w: %w", target, entity.ErrNetwork, err)
	}

	var resp proxyResponse

	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("could not decode proxy response for %s: %w: %w", target, entity.ErrNetwork, err)
	}

	if resp.Contents == "" {
		return "", fmt.Errorf("proxy returned no content for %s: %w", target, entity.ErrNetwork)
	}

	return resp.Contents, nil
}

// requestURL builds <proxy>?disableCache=true&url=<encoded target>
func (f *Fetcher) requestURL(target string) (string, error) {
	u, err := url.Parse(f.proxyURL)

	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("disableCache", "true")
	q.Set("url", target)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
