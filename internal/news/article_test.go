package news_test

import (
	"testing"
	"time"

	"github.com/scoopnews/newsdesk/internal/news"
	"github.com/stretchr/testify/require"
)

func TestDisplayDateAggregatorFormat(t *testing.T) {
	require.Equal(t, "Oct 24, 2023", news.DisplayDate("2023-10-24 08:15:00"))
}

func TestDisplayDateRFC3339(t *testing.T) {
	require.Equal(t, "Jan 5, 2024", news.DisplayDate("2024-01-05T12:00:00Z"))
}

func TestDisplayDateDateOnly(t *testing.T) {
	require.Equal(t, "Mar 1, 2025", news.DisplayDate("2025-03-01"))
}

func TestDisplayDateUnparseableFallsBackToToday(t *testing.T) {
	today := time.Now().Format("Jan 2, 2006")
	require.Equal(t, today, news.DisplayDate("not a date"))
	require.Equal(t, today, news.DisplayDate(""))
}
