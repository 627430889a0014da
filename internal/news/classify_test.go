package news_test

import (
	"testing"

	"github.com/scoopnews/newsdesk/internal/news"
	"github.com/stretchr/testify/require"
)

func TestCategoryFromSource(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"techcrunch", news.CategoryTechnology},
		{"wired", news.CategoryTechnology},
		{"theverge", news.CategoryTechnology},
		{"financialtimes", news.CategoryBusiness},
		{"economist", news.CategoryBusiness},
		{"espn", news.CategorySports},
		{"skysports", news.CategorySports},
		{"nature", news.CategoryScience},
		{"artnews", news.CategoryArts},
		{"culturemag", news.CategoryArts},
		{"bbc", news.CategoryWorld},
		{"", news.CategoryWorld},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, news.CategoryFromSource(tc.source), "source %q", tc.source)
	}
}

func TestCategoryFromSourceIsCaseInsensitive(t *testing.T) {
	require.Equal(t, news.CategoryTechnology, news.CategoryFromSource("TechCrunch"))
	require.Equal(t, news.CategorySports, news.CategoryFromSource("ESPN"))
}
