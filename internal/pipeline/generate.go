package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scoopnews/newsdesk/internal/gemini"
	"github.com/scoopnews/newsdesk/internal/metrics"
	"github.com/scoopnews/newsdesk/internal/news"
)

const (
	generateTemperature = 0.8
	generateMaxTokens   = 8192
)

// fallbackBuckets are the topical buckets synthesized for an "All" request.
var fallbackBuckets = []string{
	news.CategoryWorld, news.CategoryTechnology, news.CategoryBusiness,
	news.CategoryScience, news.CategorySports, news.CategoryArts, "Health",
}

// generatedItem mirrors the JSON shape requested from the model.
type generatedItem struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	Category    string `json:"category"`
	Location    string `json:"location"`
}

// generateFallback synthesizes an edition in the display language directly,
// no separate translation pass. Buckets run sequentially; a failed bucket
// contributes nothing. Returns nil when every bucket fails.
func (p *Pipeline) generateFallback(ctx context.Context, req Request, languageName string) []news.Article {
	if p.generator == nil {
		return nil
	}
	metrics.Global.IncrementFallbackRuns()

	buckets := fallbackBuckets
	perBucket := 5
	if req.Category != All && req.Category != "" {
		buckets = []string{req.Category}
		perBucket = 15
	}

	countryContext := ""
	if req.Country != "" && req.Country != "global" {
		countryContext = fmt.Sprintf("Focus on news relevant to %s.", req.Country)
	}
	today := time.Now().Format("2006-01-02")

	var all []news.Article
	for _, bucket := range buckets {
		articles, err := p.generateBucket(ctx, bucket, perBucket, languageName, countryContext, today, req.Country)
		if err != nil {
			slog.Warn("[Pipeline] bucket generation failed",
				slog.String("bucket", bucket), slog.String("error", err.Error()))
			continue
		}
		all = append(all, articles...)
	}
	return all
}

func (p *Pipeline) generateBucket(ctx context.Context, bucket string, count int, languageName, countryContext, today, country string) ([]news.Article, error) {
	if p.limiter != nil {
		if !p.limiter.CanUse() {
			return nil, fmt.Errorf("gemini budget exhausted")
		}
		if err := p.limiter.Use(); err != nil {
			return nil, err
		}
	}

	prompt := fmt.Sprintf(`Generate %d realistic news articles in %s for %s news. %s

Return ONLY a JSON array:
[{
  "headline": "Compelling headline",
  "subheadline": "Brief engaging description",
  "author": "Reporter Name",
  "date": "%s",
  "content": "Full article with 2-3 detailed paragraphs about current events",
  "summary": "TL;DR summary",
  "category": "%s",
  "location": "City, Country"
}]

Requirements:
- Current events style (date: %s)
- Professional journalism tone
- Diverse topics within %s
- No fictional/fantasy content`,
		count, languageName, bucket, countryContext, today, bucket, today, bucket)

	text, err := p.generator.Generate(ctx, prompt, generateTemperature, generateMaxTokens)
	if err != nil {
		return nil, err
	}

	var items []generatedItem
	if err := gemini.UnmarshalFirstArray(text, &items); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	articles := make([]news.Article, 0, len(items))
	for i, item := range items {
		if item.Headline == "" {
			continue
		}
		category := item.Category
		if category == "" {
			category = bucket
		}
		articles = append(articles, news.Article{
			Headline:    item.Headline,
			Subheadline: item.Subheadline,
			Author:      item.Author,
			Date:        item.Date,
			Content:     item.Content,
			Summary:     item.Summary,
			ImageURL:    news.GeneratedPlaceholder(bucket, country, i, now),
			Category:    category,
			Location:    item.Location,
		})
	}
	return articles, nil
}
