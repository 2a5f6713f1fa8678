package jobdesc

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/ats-scorer/internal/cache"
)

// MinContentLength is the extracted length below which a page is assumed to be
// rendered client-side and, if allowed, is retried in a browser.
const MinContentLength = 500

// Options configures a Loader.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// UseBrowser allows a headless Chrome retry for pages with little static text
	UseBrowser bool
	// Cache, when set, memoizes text fetched from URLs
	Cache  *cache.Cache
	Logger *slog.Logger
}

// Loader reads job descriptions from local files or URLs.
type Loader struct {
	client *http.Client
	opts   Options
	render func(ctx context.Context, rawURL string, timeout time.Duration, logger *slog.Logger) (string, error)
}

// NewLoader creates a Loader, filling unset options with defaults.
func NewLoader(opts Options) *Loader {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Loader{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
		render: renderWithBrowser,
	}
}

// IsURL reports whether source looks like an http(s) URL rather than a file path.
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load returns the job description text at source, a URL or a file path.
// An empty source yields an empty description.
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return "", nil
	case IsURL(source):
		return l.FromURL(ctx, source)
	default:
		return FromFile(source)
	}
}

// FromFile reads a plain-text job description.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Source: path, Message: "failed to read file", Cause: err}
	}
	return CleanText(string(data)), nil
}

// FromURL fetches a posting and extracts its text with board-specific selectors.
func (l *Loader) FromURL(ctx context.Context, rawURL string) (string, error) {
	key := cache.Key("jobdesc", rawURL)
	if l.opts.Cache != nil {
		if data, ok := l.opts.Cache.Get(ctx, key); ok {
			return string(data), nil
		}
	}

	platform := DetectPlatform(rawURL)
	html, err := fetchHTML(ctx, l.client, rawURL, l.opts.UserAgent)
	if err != nil {
		return "", err
	}

	text, err := ExtractMainText(html, ContentSelectors(platform), NoiseSelectors(platform)...)
	if err != nil {
		return "", &Error{Source: rawURL, Message: "failed to extract text", Cause: err}
	}

	if l.opts.UseBrowser && utf8.RuneCountInString(text) < MinContentLength {
		l.opts.Logger.Info("jobdesc: little static text, retrying with browser",
			slog.String("url", rawURL), slog.Int("chars", utf8.RuneCountInString(text)))

		rendered, renderErr := l.render(ctx, rawURL, l.opts.Timeout, l.opts.Logger)
		if renderErr != nil {
			l.opts.Logger.Warn("jobdesc: browser render failed, keeping static text", slog.Any("error", renderErr))
		} else if browserText, extractErr := ExtractMainText(rendered, ContentSelectors(platform), NoiseSelectors(platform)...); extractErr == nil &&
			utf8.RuneCountInString(browserText) > utf8.RuneCountInString(text) {
			text = browserText
		}
	}

	if text == "" {
		return "", &Error{Source: rawURL, Message: "no text found on page"}
	}

	if l.opts.Cache != nil {
		l.opts.Cache.Set(ctx, key, []byte(text))
	}
	return text, nil
}
