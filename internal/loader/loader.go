// Package loader performs the single startup fetch of the post collection.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"postboard/internal/model"

	"github.com/rs/zerolog"
)

const DefaultURL = "https://jsonplaceholder.typicode.com/posts"

const defaultUserAgent = "postboard"

// ErrFetch is returned for any non-2xx response.
var ErrFetch = errors.New("Failed to fetch data")

type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return "loading"
	}
}

// Result is the outcome of one fetch. Exactly one of Err / Posts is meaningful,
// selected by Status.
type Result struct {
	Status Status
	Err    error
	Posts  []model.Post
}

func Loading() Result { return Result{Status: StatusLoading} }

func Failed(err error) Result { return Result{Status: StatusError, Err: err} }

func Ready(posts []model.Post) Result {
	if posts == nil {
		posts = []model.Post{}
	}
	return Result{Status: StatusReady, Posts: posts}
}

// Message is the text shown to the user in place of the view.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

type Loader struct {
	url       string
	client    *http.Client
	userAgent string
	log       zerolog.Logger
}

type Option func(*Loader)

func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(ua) != "" {
			l.userAgent = ua
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) { l.log = log }
}

func New(url string, opts ...Option) *Loader {
	if strings.TrimSpace(url) == "" {
		url = DefaultURL
	}
	l := &Loader{
		url:       url,
		client:    http.DefaultClient,
		userAgent: defaultUserAgent,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) URL() string { return l.url }

// Load issues one GET and never retries. There is no timeout beyond ctx.
func (l *Loader) Load(ctx context.Context) Result {
	posts, err := l.fetch(ctx)
	if err != nil {
		l.log.Error().Err(err).Str("url", l.url).Msg("fetch posts")
		return Failed(err)
	}
	l.log.Info().Str("url", l.url).Int("count", len(posts)).Msg("fetched posts")
	return Ready(posts)
}

// Fetch is shorthand for New(url, opts...).Load(ctx).
func Fetch(ctx context.Context, url string, opts ...Option) Result {
	return New(url, opts...).Load(ctx)
}

func (l *Loader) fetch(ctx context.Context) ([]model.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		l.log.Debug().Int("status", resp.StatusCode).Msg("non-success response")
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrFetch
	}

	body, err := decodedBody(resp)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	b, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}
	return decodePosts(b)
}

func decodePosts(b []byte) ([]model.Post, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	if err := validatePosts(raw); err != nil {
		return nil, fmt.Errorf("invalid posts payload: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal(b, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}
