package feeds

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/sethvargo/go-retry"

	"github.com/killallgit/podcast-profile-api/pkg/config"
)

// Fetcher downloads and parses RSS/Atom documents
type Fetcher struct {
	parser     *gofeed.Parser
	attempts   int
	retryDelay time.Duration
	stripHTML  bool
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used for downloads
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.parser.Client = client
	}
}

// WithUserAgent sets the User-Agent header sent to feed hosts
func WithUserAgent(userAgent string) Option {
	return func(f *Fetcher) {
		if userAgent != "" {
			f.parser.UserAgent = userAgent
		}
	}
}

// WithRetry sets the total number of attempts and the delay between them
func WithRetry(attempts int, delay time.Duration) Option {
	return func(f *Fetcher) {
		if attempts < 1 {
			attempts = 1
		}
		if delay <= 0 {
			delay = time.Millisecond
		}
		f.attempts = attempts
		f.retryDelay = delay
	}
}

// WithStripHTML removes markup from summaries
func WithStripHTML(strip bool) Option {
	return func(f *Fetcher) {
		f.stripHTML = strip
	}
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		parser:     gofeed.NewParser(),
		attempts:   1,
		retryDelay: time.Second,
	}
	f.parser.Client = &http.Client{Timeout: 20 * time.Second}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFetcherFromConfig builds a Fetcher from the feed section of the config
func NewFetcherFromConfig(cfg config.FeedConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return NewFetcher(
		WithHTTPClient(&http.Client{Timeout: timeout}),
		WithUserAgent(cfg.UserAgent),
		WithRetry(cfg.RetryAttempts, cfg.RetryDelay),
		WithStripHTML(cfg.StripHTML),
	)
}

// Fetch downloads and parses the feed at feedURL. Every failure, including a
// document without a channel title, is reported as ErrInvalidFeed.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) (*Document, error) {
	if _, err := url.ParseRequestURI(feedURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeed, err)
	}

	var parsed *gofeed.Feed
	backoff := retry.WithMaxRetries(uint64(f.attempts-1), retry.NewConstant(f.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			if isTransient(err) {
				log.Printf("[WARN] Transient error fetching feed %s: %v", feedURL, err)
				return retry.RetryableError(err)
			}
			return err
		}
		parsed = feed
		return nil
	})
	if err != nil {
		log.Printf("[WARN] Could not fetch feed %s: %v", feedURL, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeed, err)
	}

	if strings.TrimSpace(parsed.Title) == "" {
		log.Printf("[WARN] Feed %s has no channel title", feedURL)
		return nil, fmt.Errorf("%w: channel has no title", ErrInvalidFeed)
	}

	return f.toDocument(parsed), nil
}

func (f *Fetcher) toDocument(feed *gofeed.Feed) *Document {
	doc := &Document{
		Title:   feed.Title,
		Author:  feedAuthor(feed),
		Summary: f.clean(feedSummary(feed)),
		Image:   feedImage(feed),
		Entries: make([]Entry, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		doc.Entries = append(doc.Entries, Entry{
			Title:   item.Title,
			Summary: f.clean(itemSummary(item)),
			Image:   itemImage(item),
			Links:   itemLinks(item),
		})
	}
	return doc
}

var stripPolicy = bluemonday.StrictPolicy()

func (f *Fetcher) clean(s string) string {
	if !f.stripHTML {
		return s
	}
	return strings.TrimSpace(stripPolicy.Sanitize(s))
}

func feedAuthor(feed *gofeed.Feed) string {
	for _, person := range feed.Authors {
		if person != nil && person.Name != "" {
			return person.Name
		}
	}
	if feed.ITunesExt != nil {
		return feed.ITunesExt.Author
	}
	return ""
}

func feedSummary(feed *gofeed.Feed) string {
	if feed.Description != "" {
		return feed.Description
	}
	if feed.ITunesExt != nil {
		if feed.ITunesExt.Summary != "" {
			return feed.ITunesExt.Summary
		}
		return feed.ITunesExt.Subtitle
	}
	return ""
}

func feedImage(feed *gofeed.Feed) *string {
	if feed.Image != nil && feed.Image.URL != "" {
		return stringPtr(feed.Image.URL)
	}
	if feed.ITunesExt != nil && feed.ITunesExt.Image != "" {
		return stringPtr(feed.ITunesExt.Image)
	}
	return nil
}

func itemSummary(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	if item.ITunesExt != nil {
		return item.ITunesExt.Summary
	}
	return ""
}

func itemImage(item *gofeed.Item) *string {
	if item.Image != nil && item.Image.URL != "" {
		return stringPtr(item.Image.URL)
	}
	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		return stringPtr(item.ITunesExt.Image)
	}
	return nil
}

// itemLinks lists the item links, then any enclosure not already listed
func itemLinks(item *gofeed.Item) []string {
	links := make([]string, 0, len(item.Links)+len(item.Enclosures))
	seen := make(map[string]bool)
	add := func(link string) {
		if link == "" || seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	}

	if len(item.Links) == 0 {
		add(item.Link)
	}
	for _, link := range item.Links {
		add(link)
	}
	for _, enclosure := range item.Enclosures {
		if enclosure != nil {
			add(enclosure.URL)
		}
	}
	return links
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var httpErr gofeed.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError || httpErr.StatusCode == http.StatusTooManyRequests
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func stringPtr(s string) *string {
	return &s
}
