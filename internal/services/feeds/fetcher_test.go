package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const podcastRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>NerdCast</title>
    <link>https://jovemnerd.com.br</link>
    <description>O mundo vira piada no &lt;b&gt;Jovem Nerd&lt;/b&gt;</description>
    <itunes:author>Jovem Nerd</itunes:author>
    <image>
      <url>https://example.com/nc-feed.jpg</url>
      <title>NerdCast</title>
      <link>https://jovemnerd.com.br</link>
    </image>
    <item>
      <title>NerdCast 961</title>
      <link>https://jovemnerd.com.br/961</link>
      <description>Sem pauta</description>
      <itunes:image href="https://example.com/961.jpg"/>
      <enclosure url="https://example.com/961.mp3" length="1000" type="audio/mpeg"/>
    </item>
    <item>
      <title>Only a link</title>
      <link>https://jovemnerd.com.br/960</link>
      <description>No audio here</description>
    </item>
    <item>
      <title>Nothing at all</title>
      <description>No links</description>
    </item>
  </channel>
</rss>`

const bareRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Bare</title>
    <description>No cover</description>
  </channel>
</rss>`

const untitledRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <description>Missing title</description>
  </channel>
</rss>`

func serveFeed(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetcher_Fetch(t *testing.T) {
	server := serveFeed(t, podcastRSS)
	fetcher := NewFetcher()

	doc, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "NerdCast", doc.Title)
	assert.Equal(t, "Jovem Nerd", doc.Author)
	assert.Equal(t, "O mundo vira piada no <b>Jovem Nerd</b>", doc.Summary)
	require.NotNil(t, doc.Image)
	assert.Equal(t, "https://example.com/nc-feed.jpg", doc.ImageURL())
	require.Len(t, doc.Entries, 3)

	tests := []struct {
		name      string
		entry     Entry
		wantTitle string
		wantAudio string
		wantImage string
		wantLinks int
	}{
		{
			name:      "link and enclosure",
			entry:     doc.Entries[0],
			wantTitle: "NerdCast 961",
			wantAudio: "https://example.com/961.mp3",
			wantImage: "https://example.com/961.jpg",
			wantLinks: 2,
		},
		{
			name:      "single link has no audio",
			entry:     doc.Entries[1],
			wantTitle: "Only a link",
			wantLinks: 1,
		},
		{
			name:      "no links",
			entry:     doc.Entries[2],
			wantTitle: "Nothing at all",
			wantLinks: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTitle, tt.entry.Title)
			assert.Equal(t, tt.wantAudio, tt.entry.AudioURL())
			assert.Equal(t, tt.wantImage, tt.entry.ImageURL())
			assert.Len(t, tt.entry.Links, tt.wantLinks)
		})
	}
}

func TestFetcher_StripHTML(t *testing.T) {
	server := serveFeed(t, podcastRSS)
	fetcher := NewFetcher(WithStripHTML(true))

	doc, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "O mundo vira piada no Jovem Nerd", doc.Summary)
}

func TestFetcher_NoCover(t *testing.T) {
	server := serveFeed(t, bareRSS)

	doc, err := NewFetcher().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Bare", doc.Title)
	assert.Nil(t, doc.Image)
	assert.Empty(t, doc.ImageURL())
	assert.Empty(t, doc.Entries)
}

func TestFetcher_InvalidFeeds(t *testing.T) {
	notFound := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(notFound.Close)

	tests := []struct {
		name string
		url  string
	}{
		{name: "not a url", url: "not a url"},
		{name: "not found", url: notFound.URL},
		{name: "malformed document", url: serveFeed(t, "<html><body>hello</body>").URL},
		{name: "missing channel title", url: serveFeed(t, untitledRSS).URL},
	}

	fetcher := NewFetcher(WithRetry(3, time.Millisecond))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := fetcher.Fetch(context.Background(), tt.url)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFeed)
			assert.Nil(t, doc)
		})
	}
}

func TestFetcher_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(bareRSS))
	}))
	t.Cleanup(server.Close)

	doc, err := NewFetcher(WithRetry(3, time.Millisecond)).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Bare", doc.Title)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetcher_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusGone)
	}))
	t.Cleanup(server.Close)

	_, err := NewFetcher(WithRetry(3, time.Millisecond)).Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFeed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetcher_UserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.UserAgent()
		_, _ = w.Write([]byte(bareRSS))
	}))
	t.Cleanup(server.Close)

	_, err := NewFetcher(WithUserAgent("PodcastProfileAPI/test")).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "PodcastProfileAPI/test", got)
}
