package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pfrederiksen/tsw/internal/config"
	"github.com/pfrederiksen/tsw/internal/logger"
)

const UserAgent = "tsw/1.0 (github.com/pfrederiksen/tsw)"

// ErrStatus is returned, wrapped, for non-200 responses.
var ErrStatus = errors.New("unexpected status code")

// Client fetches tournament pages. It is safe for concurrent use.
type Client struct {
	client    *http.Client
	url       string
	cookieURL string
	log       *logger.Logger

	cookieMu   sync.Mutex
	cookieDone bool
	cookieErr  error
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for diagnostics and bracket warnings.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a Client for the site at cfg.URL.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	c := &Client{
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		url:       strings.TrimRight(cfg.URL, "/"),
		cookieURL: cfg.CookieURL,
		log:       logger.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Default()
	}
	return c, nil
}

// AcceptCookies posts the cookie wall consent form. The session cookie it sets
// is kept in the client's jar. Fetch methods call it on first use.
//
// The outcome is kept for the life of the client, except when ctx was
// cancelled or timed out, in which case the next call tries again.
func (c *Client) AcceptCookies(ctx context.Context) error {
	c.cookieMu.Lock()
	defer c.cookieMu.Unlock()

	if c.cookieDone {
		return c.cookieErr
	}

	err := c.acceptCookies(ctx)
	if err != nil && (ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return err
	}
	c.cookieDone, c.cookieErr = true, err
	return err
}

func (c *Client) acceptCookies(ctx context.Context) error {
	if c.cookieURL == "" {
		return nil
	}

	q := url.Values{}
	q.Set("ReturnUrl", "")
	q.Set("SettingsOpen", "false")
	q.Add("CookiePurposes", "4")
	q.Add("CookiePurposes", "16")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cookieURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("accepting cookies: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("accepting cookies: %w: %d", ErrStatus, resp.StatusCode)
	}

	c.log.Debug("Accepted cookie wall", logger.Fields{"url": c.cookieURL})
	return nil
}

// fetch GETs page with the given query and hands the body to parse.
func (c *Client) fetch(ctx context.Context, page string, query url.Values, parse func(io.Reader) error) error {
	if err := c.AcceptCookies(ctx); err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.url, page, query.Encode())
	c.log.Debug("Using URL", logger.Fields{"url": reqURL})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logger.IncrCounter("fetch.errors")
		return fmt.Errorf("fetching %s: %w", page, err)
	}
	defer resp.Body.Close()

	logger.IncrCounter("fetch." + page)
	logger.RecordTiming("fetch."+page, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		logger.IncrCounter("fetch.errors")
		return fmt.Errorf("fetching %s: %w: %d", page, ErrStatus, resp.StatusCode)
	}

	if err := parse(resp.Body); err != nil {
		return fmt.Errorf("parsing %s: %w", page, err)
	}
	return nil
}
