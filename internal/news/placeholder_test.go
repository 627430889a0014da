package news_test

import (
	"testing"

	"github.com/scoopnews/newsdesk/internal/news"
	"github.com/stretchr/testify/require"
)

func TestIndexPlaceholderDiffersPerIndex(t *testing.T) {
	require.Equal(t, "https://picsum.photos/seed/news-0/800/600", news.IndexPlaceholder(0))
	require.Equal(t, "https://picsum.photos/seed/news-7/800/600", news.IndexPlaceholder(7))
	require.NotEqual(t, news.IndexPlaceholder(1), news.IndexPlaceholder(2))
}

func TestGeneratedPlaceholderIncludesAllSeedParts(t *testing.T) {
	got := news.GeneratedPlaceholder("Technology", "global", 3, 1700000000000)
	require.Equal(t, "https://picsum.photos/seed/Technology-global-3-1700000000000/800/600", got)
}

func TestBaselineArticlesAreComplete(t *testing.T) {
	articles := news.BaselineArticles()
	require.NotEmpty(t, articles)

	for _, a := range articles {
		require.NotEmpty(t, a.Headline)
		require.NotEmpty(t, a.ImageURL)
		require.NotEmpty(t, a.Category)
		require.NotEmpty(t, a.Date)
	}
}

func TestBaselineArticlesHeadlinesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range news.BaselineArticles() {
		require.False(t, seen[a.Headline], "duplicate headline %q", a.Headline)
		seen[a.Headline] = true
	}
}
