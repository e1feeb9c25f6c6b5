package reader_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/nDmitry/rssreader/internal/entity"
	"github.com/nDmitry/rssreader/internal/i18n"
	"github.com/nDmitry/rssreader/internal/reader"
	"github.com/nDmitry/rssreader/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedURL = "https://lorem-rss.hexlet.app/feed"

// MockFetcher is a mock implementation of the Fetcher interface
type MockFetcher struct {
	FetchFunc func(ctx context.Context, url string) (string, error)
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return m.FetchFunc(ctx, url)
}

func fixture(t *testing.T) string {
	t.Helper()

	raw, err := os.ReadFile("../parser/testdata/lorem.xml")
	require.NoError(t, err)

	return string(raw)
}

func newReader(t *testing.T, fetch func(ctx context.Context, url string) (string, error)) (*reader.Reader, *state.Store) {
	t.Helper()

	bundle, err := i18n.New()
	require.NoError(t, err)

	store := state.NewStore("ru")

	return reader.New(store, &MockFetcher{FetchFunc: fetch}, bundle), store
}

func TestReader_Submit(t *testing.T) {
	raw := fixture(t)

	tests := []struct {
		name          string
		url           string
		fetch         func(ctx context.Context, url string) (string, error)
		expectedErr   error
		expectedKind  entity.ErrorKind
		expectedFeeds int
	}{
		{
			name: "Valid feed",
			url:  "  " + feedURL + " ",
			fetch: func(_ context.Context, url string) (string, error) {
				if url != feedURL {
					return "", fmt.Errorf("unexpected url %q", url)
				}

				return raw, nil
			},
			expectedKind:  entity.ErrorNone,
			expectedFeeds: 1,
		},
		{
			name:         "Nonvalid URL",
			url:          "not a url",
			expectedErr:  entity.ErrNonvalidURL,
			expectedKind: entity.ErrorNonvalidURL,
		},
		{
			name: "Network error",
			url:  feedURL,
			fetch: func(context.Context, string) (string, error) {
				return "", fmt.Errorf("proxy down: %w", entity.ErrNetwork)
			},
			expectedErr:  entity.ErrNetwork,
			expectedKind: entity.ErrorNetwork,
		},
		{
			name: "Not a feed",
			url:  feedURL,
			fetch: func(context.Context, string) (string, error) {
				return "<html><body>hello</body></html>", nil
			},
			expectedErr:  entity.ErrParse,
			expectedKind: entity.ErrorParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetch := tt.fetch

			if fetch == nil {
				fetch = func(context.Context, string) (string, error) {
					t.Fatal("fetch must not be called")
					return "", nil
				}
			}

			r, store := newReader(t, fetch)

			var processes []state.Process

			store.Subscribe(func(e state.Event) {
				processes = append(processes, e.Current.LoadingProcess)
			}, state.LoadingProcessChanged)

			err := r.Submit(context.Background(), tt.url)
			st := store.Snapshot()

			assert.Equal(t, tt.expectedKind, st.Error)
			assert.Len(t, st.Feeds, tt.expectedFeeds)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.False(t, st.Valid)
				assert.Equal(t, []state.Process{state.ProcessLoading, state.ProcessFailed}, processes)

				return
			}

			require.NoError(t, err)
			assert.True(t, st.Valid)
			assert.Equal(t, []state.Process{state.ProcessLoading, state.ProcessSuccess}, processes)
			assert.Equal(t, feedURL, st.Feeds[0].URL)
			assert.NotEmpty(t, st.Feeds[0].ID)
			require.Len(t, st.Posts, 5)

			for _, p := range st.Posts {
				assert.Equal(t, st.Feeds[0].ID, p.FeedID)
			}
		})
	}
}

func TestReader_SubmitDuplicateLeavesFeedsUnchanged(t *testing.T) {
	raw := fixture(t)
	r, store := newReader(t, func(context.Context, string) (string, error) { return raw, nil })

	require.NoError(t, r.Submit(context.Background(), feedURL))

	before := store.Snapshot()
	err := r.Submit(context.Background(), feedURL)
	after := store.Snapshot()

	assert.ErrorIs(t, err, entity.ErrDuplication)
	assert.Equal(t, entity.ErrorDuplication, after.Error)
	assert.Equal(t, state.ProcessFailed, after.LoadingProcess)
	assert.Equal(t, before.Feeds, after.Feeds)
	assert.Equal(t, before.Posts, after.Posts)
}

func TestReader_ErrorClearedOnSuccess(t *testing.T) {
	raw := fixture(t)
	r, store := newReader(t, func(context.Context, string) (string, error) { return raw, nil })

	require.Error(t, r.Submit(context.Background(), "nope"))
	assert.Equal(t, entity.ErrorNonvalidURL, store.Snapshot().Error)
	assert.Equal(t, "nope", store.Snapshot().Input, "rejected URL is kept for correction")

	require.NoError(t, r.Submit(context.Background(), feedURL))
	assert.Equal(t, entity.ErrorNone, store.Snapshot().Error)
	assert.Empty(t, store.Snapshot().Input)
}

func TestReader_SwitchLanguage(t *testing.T) {
	r, store := newReader(t, nil)

	require.NoError(t, r.SwitchLanguage("en"))
	assert.Equal(t, "en", store.Snapshot().Language)

	assert.ErrorIs(t, r.SwitchLanguage("de"), reader.ErrUnsupportedLanguage)
	assert.Equal(t, "en", store.Snapshot().Language)
}

func TestReader_Posts(t *testing.T) {
	r, store := newReader(t, nil)

	require.NoError(t, store.AddFeed(
		entity.Feed{ID: "f1", URL: feedURL},
		[]entity.Post{
			{ID: "p1", FeedID: "f1", Title: "One", Link: "https://example.com/1"},
			{ID: "p2", FeedID: "f1", Title: "Two", Link: "https://example.com/2"},
		},
	))

	assert.True(t, r.OpenPost("https://example.com/1"))
	assert.False(t, r.OpenPost("https://evil.example/"))

	assert.True(t, r.PreviewPost("https://example.com/2"))
	assert.False(t, r.PreviewPost("https://example.com/404"))

	st := store.Snapshot()
	assert.Equal(t, []string{"https://example.com/1", "https://example.com/2"}, st.UI.ViewedLinks)
	assert.Equal(t, "https://example.com/2", st.UI.ClickedPostLink)

	r.ClosePreview()

	assert.Empty(t, store.Snapshot().UI.ClickedPostLink)
}
