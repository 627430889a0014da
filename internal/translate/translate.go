// Package translate converts batches of articles into the reader's display
// language. Translation never drops content: a chunk that cannot be
// translated is passed through in its original language.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/scoopnews/newsdesk/internal/gemini"
	"github.com/scoopnews/newsdesk/internal/metrics"
	"github.com/scoopnews/newsdesk/internal/news"
	"github.com/scoopnews/newsdesk/internal/ratelimit"
)

const (
	translateTemperature = 0.2
	translateMaxTokens   = 8192
)

// Generator produces text for a prompt. Satisfied by *gemini.Client.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error)
}

type Options struct {
	ChunkSize    int           // articles per request
	ChunkDelay   time.Duration // pause between chunks, for service rate limits
	ContentLimit int           // content runes submitted per article
}

type Translator struct {
	gen     Generator
	limiter *ratelimit.GeminiLimiter
	opts    Options
}

func New(gen Generator, limiter *ratelimit.GeminiLimiter, opts Options) *Translator {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 5
	}
	if opts.ContentLimit <= 0 {
		opts.ContentLimit = 500
	}
	return &Translator{gen: gen, limiter: limiter, opts: opts}
}

// chunkItem is the wire shape for one article inside a batch request and its
// response. IDs are positions within the chunk.
type chunkItem struct {
	ID          int    `json:"id"`
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
}

// TranslateArticles returns a list of the same length and order as articles,
// with the text-bearing fields translated into languageName. Image, source
// and category fields pass through unchanged. Chunks are processed strictly
// sequentially.
func (t *Translator) TranslateArticles(ctx context.Context, articles []news.Article, languageName string) []news.Article {
	if len(articles) == 0 {
		return articles
	}

	translated := make([]news.Article, 0, len(articles))

	for start := 0; start < len(articles); start += t.opts.ChunkSize {
		end := start + t.opts.ChunkSize
		if end > len(articles) {
			end = len(articles)
		}
		chunk := articles[start:end]

		out, err := t.translateChunk(ctx, chunk, languageName)
		if err != nil {
			slog.Warn("[Translate] chunk failed, keeping original language",
				slog.Int("chunk_start", start), slog.String("error", err.Error()))
			metrics.Global.IncrementFailedChunks()
			translated = append(translated, chunk...)
		} else {
			metrics.Global.IncrementTranslatedChunks()
			translated = append(translated, out...)
		}

		if end < len(articles) && t.opts.ChunkDelay > 0 {
			time.Sleep(t.opts.ChunkDelay)
		}
	}

	return translated
}

func (t *Translator) translateChunk(ctx context.Context, chunk []news.Article, languageName string) ([]news.Article, error) {
	if t.limiter != nil && !t.limiter.CanUse() {
		return nil, fmt.Errorf("gemini request budget exhausted")
	}

	items := make([]chunkItem, len(chunk))
	for i, a := range chunk {
		items[i] = chunkItem{
			ID:          i,
			Headline:    a.Headline,
			Subheadline: a.Subheadline,
			Content:     truncateRunes(a.Content, t.opts.ContentLimit),
			Summary:     a.Summary,
		}
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling chunk: %w", err)
	}

	prompt := fmt.Sprintf(`You are a professional news translator. Translate these %d news articles to %s.
IMPORTANT:
- Translate ALL text naturally and professionally
- Keep news terminology appropriate for the target language
- Return ONLY a valid JSON array, no explanations
- Each object must have: id, headline, subheadline, content, summary

Articles to translate:
%s

Return the translated JSON array:`, len(chunk), languageName, payload)

	if t.limiter != nil {
		if err := t.limiter.Use(); err != nil {
			return nil, err
		}
	}

	response, err := t.gen.Generate(ctx, prompt, translateTemperature, translateMaxTokens)
	if err != nil {
		return nil, err
	}

	var results []chunkItem
	if err := gemini.UnmarshalFirstArray(response, &results); err != nil {
		return nil, err
	}

	byID := make(map[int]chunkItem, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}

	out := make([]news.Article, len(chunk))
	for i, original := range chunk {
		item, ok := byID[i]
		if !ok && i < len(results) {
			// Positional fallback when the model drops or rewrites ids.
			item, ok = results[i], true
		}
		if !ok {
			out[i] = original
			continue
		}
		out[i] = merge(original, item)
	}

	return out, nil
}

// merge lays translated text fields over the original article. Empty
// translated fields keep the original text; all non-text fields carry over.
func merge(original news.Article, item chunkItem) news.Article {
	merged := original
	if s := stripDisclaimers(item.Headline); s != "" {
		merged.Headline = s
	}
	if s := stripDisclaimers(item.Subheadline); s != "" {
		merged.Subheadline = s
	}
	if s := stripDisclaimers(item.Content); s != "" {
		merged.Content = s
	}
	if s := stripDisclaimers(item.Summary); s != "" {
		merged.Summary = s
	}
	return merged
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
