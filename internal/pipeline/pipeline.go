// Package pipeline assembles one newspaper edition: aggregator fan-out,
// deduplication, optional translation, and a two-level synthetic fallback.
// Fetch never returns an error to its caller; every failure mode degrades to
// a smaller or synthetic result set.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/scoopnews/newsdesk/internal/cache"
	"github.com/scoopnews/newsdesk/internal/config"
	"github.com/scoopnews/newsdesk/internal/metrics"
	"github.com/scoopnews/newsdesk/internal/news"
	"github.com/scoopnews/newsdesk/internal/newsdata"
	"github.com/scoopnews/newsdesk/internal/ratelimit"
)

// All selects every section at once and triggers the category fan-out.
const All = "All"

// allBuckets are the aggregator categories queried in parallel for an "All"
// request. One request per bucket maximizes diversity against the
// aggregator's fixed per-request item cap. Result order follows this list,
// not completion order.
var allBuckets = []string{
	"top", "technology", "business", "science",
	"sports", "entertainment", "health", "world",
}

// Aggregator is the news-search API. Satisfied by *newsdata.Client.
type Aggregator interface {
	Search(ctx context.Context, query, language string, size int) ([]newsdata.Result, error)
	Category(ctx context.Context, category, language, country string, size int) ([]newsdata.Result, error)
}

// ArticleTranslator is the batch translation stage.
type ArticleTranslator interface {
	TranslateArticles(ctx context.Context, articles []news.Article, languageName string) []news.Article
}

// Generator produces text for a prompt, used by the synthetic fallback.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error)
}

// Request identifies one edition. The zero Country and "global" both mean no
// country filter.
type Request struct {
	Category string
	Query    string
	Language string
	Country  string
}

type Options struct {
	PageSize        int
	MaxArticles     int
	DefaultLanguage string
	CacheTTL        time.Duration
}

type Pipeline struct {
	aggregator Aggregator
	translator ArticleTranslator
	generator  Generator
	limiter    *ratelimit.GeminiLimiter
	languages  []config.Language
	store      *cache.Store[[]news.Article]
	opts       Options
}

func New(agg Aggregator, tr ArticleTranslator, gen Generator, limiter *ratelimit.GeminiLimiter, langs []config.Language, opts Options) *Pipeline {
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}
	if opts.MaxArticles <= 0 {
		opts.MaxArticles = 200
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = "en"
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if len(langs) == 0 {
		langs = config.DefaultLanguages()
	}

	return &Pipeline{
		aggregator: agg,
		translator: tr,
		generator:  gen,
		limiter:    limiter,
		languages:  langs,
		store:      cache.New[[]news.Article](),
		opts:       opts,
	}
}

// Fetch returns the edition for req, from cache when fresh. The returned
// list is never nil and only empty in the theoretical case where even the
// baseline set is empty. Concurrent identical requests are not coalesced:
// both may do full network work.
func (p *Pipeline) Fetch(ctx context.Context, req Request) []news.Article {
	start := time.Now()
	metrics.Global.IncrementFetchesServed()
	defer func() {
		metrics.Global.RecordFetchTime(time.Since(start))
		metrics.Global.SetLastRun()
	}()

	key := cacheKey(req)
	if cached, ok := p.store.Get(key); ok {
		slog.Debug("[Pipeline] cache hit", slog.String("key", key))
		metrics.Global.IncrementCacheHits()
		return cached
	}

	lang := config.LanguageFor(p.languages, req.Language)

	raw := p.fetchRaw(ctx, req, lang.Aggregator)
	unique := dedupeByTitle(raw)
	articles := p.mapArticles(unique, req.Category)

	if len(articles) > 0 && req.Language != p.opts.DefaultLanguage && p.translator != nil {
		slog.Info("[Pipeline] translating edition",
			slog.Int("articles", len(articles)), slog.String("language", lang.PromptName))
		articles = p.translator.TranslateArticles(ctx, articles, lang.PromptName)
	}

	if len(articles) == 0 {
		slog.Warn("[Pipeline] aggregator yielded nothing, generating edition",
			slog.String("category", req.Category), slog.String("query", req.Query))
		articles = p.generateFallback(ctx, req, lang.PromptName)
	}

	if len(articles) == 0 {
		slog.Warn("[Pipeline] generation failed, serving baseline edition")
		metrics.Global.IncrementBaselineEscalated()
		articles = news.BaselineArticles()
	}

	p.store.Set(key, articles, p.opts.CacheTTL)
	metrics.Global.AddArticlesReturned(len(articles))
	return articles
}

// cacheKey concatenates the request parameters verbatim. Delimiter
// collisions between category and query values are possible and accepted.
func cacheKey(req Request) string {
	return req.Category + "-" + req.Query + "-" + req.Language + "-" + req.Country
}

// fetchRaw gathers raw aggregator items. A non-empty query issues a single
// search-scoped request; category and country are ignored while a text query
// is present. Otherwise the category branches run in parallel, each
// independently fault-tolerant, joined in fixed bucket order.
func (p *Pipeline) fetchRaw(ctx context.Context, req Request, aggLanguage string) []newsdata.Result {
	if req.Query != "" {
		metrics.Global.IncrementBranchesFetched()
		results, err := p.aggregator.Search(ctx, req.Query, aggLanguage, p.opts.PageSize)
		if err != nil {
			slog.Warn("[Pipeline] search failed", slog.String("query", req.Query),
				slog.String("error", err.Error()))
			metrics.Global.IncrementBranchFailures()
			return nil
		}
		return results
	}

	buckets := requestBuckets(req.Category)
	country := req.Country
	if country == "global" {
		country = ""
	}

	resultsByBucket := make([][]newsdata.Result, len(buckets))
	var wg sync.WaitGroup
	for i, bucket := range buckets {
		wg.Add(1)
		go func(i int, bucket string) {
			defer wg.Done()
			metrics.Global.IncrementBranchesFetched()
			results, err := p.aggregator.Category(ctx, bucket, aggLanguage, country, p.opts.PageSize)
			if err != nil {
				slog.Warn("[Pipeline] branch failed", slog.String("bucket", bucket),
					slog.String("error", err.Error()))
				metrics.Global.IncrementBranchFailures()
				return
			}
			resultsByBucket[i] = results
		}(i, bucket)
	}
	wg.Wait()

	var all []newsdata.Result
	for _, results := range resultsByBucket {
		all = append(all, results...)
	}
	return all
}

func requestBuckets(category string) []string {
	if category == All || category == "" {
		return allBuckets
	}
	return []string{strings.ToLower(category)}
}

// dedupeByTitle drops items whose exact title text was already seen. First
// occurrence wins; order is preserved. Near-duplicate titles with trivial
// differences are not merged.
func dedupeByTitle(results []newsdata.Result) []newsdata.Result {
	seen := make(map[string]struct{}, len(results))
	unique := make([]newsdata.Result, 0, len(results))
	for _, r := range results {
		if _, dup := seen[r.Title]; dup {
			continue
		}
		seen[r.Title] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// mapArticles converts raw items into Articles, capped at MaxArticles.
// Every output article has a non-empty headline and image URL.
func (p *Pipeline) mapArticles(results []newsdata.Result, requestedCategory string) []news.Article {
	if len(results) > p.opts.MaxArticles {
		results = results[:p.opts.MaxArticles]
	}

	articles := make([]news.Article, 0, len(results))
	for i, r := range results {
		headline := news.StripHTML(r.Title)
		if headline == "" {
			headline = "No title"
		}
		description := news.StripHTML(r.Description)

		content := news.StripHTML(r.Content)
		if content == "" {
			content = description
		}
		if content == "" {
			content = "Content not available."
		}

		author := r.Author()
		if author == "" {
			author = "Editorial"
		}

		imageURL := r.ImageURL
		if imageURL == "" {
			imageURL = news.IndexPlaceholder(i)
		}

		category := requestedCategory
		if requestedCategory == All || requestedCategory == "" {
			category = news.CategoryFromSource(r.SourceID)
		}

		location := r.SourceID
		if location == "" {
			location = "International"
		}

		sourceName := r.SourceID
		if sourceName == "" {
			sourceName = "News Source"
		}

		articles = append(articles, news.Article{
			Headline:    headline,
			Subheadline: description,
			Author:      author,
			Date:        news.DisplayDate(r.PubDate),
			Content:     content,
			Summary:     description,
			ImageURL:    imageURL,
			Category:    category,
			Location:    location,
			SourceURL:   r.Link,
			SourceName:  sourceName,
		})
	}
	return articles
}
