// Package probe provides an HTTP executor that probes a single target and
// classifies the response.
package probe

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/swagscan/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// Executor implements ports.Prober using net/http.
type Executor struct {
	client  *http.Client
	marker  string
	limiter *rate.Limiter
}

// Option configures an Executor.
type Option func(*Executor)

// WithClient replaces the default HTTP client. The caller is responsible for
// the client's timeout.
func WithClient(c *http.Client) Option {
	return func(e *Executor) {
		e.client = c
	}
}

// NewExecutor creates an Executor from the resolved configuration.
func NewExecutor(cfg *domain.Config, opts ...Option) *Executor {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.ProbeTimeout
	}

	marker := cfg.Marker
	if marker == "" {
		marker = domain.DefaultMarker
	}

	e := &Executor{
		client: &http.Client{Timeout: timeout},
		marker: marker,
	}
	if cfg.RateLimit > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Probe issues one GET for the task and classifies the response.
// The permit is released as soon as the response headers (or an error) arrive.
func (e *Executor) Probe(ctx context.Context, task domain.Task, permit ports.Permit) domain.Outcome {
	target := task.URL()

	resp, err := e.fetch(ctx, target)
	permit.Release()
	if err != nil {
		return domain.TransportError(target, zerr.With(
			zerr.Wrap(err, domain.ErrRequestFailed.Error()),
			"target", target,
		))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := readText(resp)
	if err != nil {
		return domain.TransportError(target, zerr.With(
			zerr.Wrap(err, domain.ErrBodyDecodeFailed.Error()),
			"target", target,
		))
	}

	if !strings.Contains(string(body), e.marker) {
		return domain.NotMatched(target)
	}
	return domain.Matched(target, pageTitle(body))
}

func (e *Executor) fetch(ctx context.Context, target string) (*http.Response, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	return e.client.Do(req)
}

// readText decodes the body using the charset from Content-Type or the
// document itself. Undecodable bytes become U+FFFD.
func readText(resp *http.Response) ([]byte, error) {
	rd, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(rd)
}

// pageTitle returns the document title, or "" if the body is not HTML.
func pageTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
