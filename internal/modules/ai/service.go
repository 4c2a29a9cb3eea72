package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/majlis-kantho/core/internal/config"
	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/settings"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"go.uber.org/zap"
)

const (
	// FallbackSummary is served whenever the provider is disabled, slow or
	// failing. The reader always gets something.
	FallbackSummary = "Summary unavailable at the moment."

	summaryKeyPrefix = "portal:ai:summary:"
	summaryCacheTTL  = 7 * 24 * time.Hour
	requestTimeout   = 30 * time.Second
	maxArticleRunes  = 6000
)

// fallbackTopics covers the trending widget when no provider answers.
var fallbackTopics = []string{"Economy", "Cricket", "Politics", "Weather", "Education"}

// Service produces article summaries and trending topics. Results are
// cached in the snapshot store; concurrent requests for the same article
// share one provider call.
type Service struct {
	provider *config.AIProvider
	settings *settings.Service
	kvs      kv.Store
	logger   *zap.Logger

	mu       sync.Mutex
	inFlight map[string]chan struct{}
}

func NewService(provider *config.AIProvider, st *settings.Service, kvs kv.Store, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		settings: st,
		kvs:      kvs,
		logger:   logger.Named("ai"),
		inFlight: make(map[string]chan struct{}),
	}
}

// SummaryResult distinguishes a real summary from the fallback so the
// frontend can decide whether to show the AI badge.
type SummaryResult struct {
	Summary   string `json:"summary"`
	Generated bool   `json:"generated"`
}

// Summarize returns a short summary for the article. Failures of any kind
// degrade to the fixed fallback text, never to an error page.
func (s *Service) Summarize(ctx context.Context, article *models.ArticleModel) SummaryResult {
	if article == nil {
		return SummaryResult{Summary: FallbackSummary}
	}
	if !s.settings.AISummariesEnabled() {
		return SummaryResult{Summary: FallbackSummary}
	}

	cacheKey := summaryKeyPrefix + summaryHash(article)
	if cached, ok, err := s.kvs.Get(ctx, cacheKey); err == nil && ok {
		return SummaryResult{Summary: cached, Generated: true}
	}

	// One provider call per article at a time; latecomers wait for the
	// first call to land in the cache.
	s.mu.Lock()
	if ch, busy := s.inFlight[article.ID]; busy {
		s.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return SummaryResult{Summary: FallbackSummary}
		}
		if cached, ok, err := s.kvs.Get(ctx, cacheKey); err == nil && ok {
			return SummaryResult{Summary: cached, Generated: true}
		}
		return SummaryResult{Summary: FallbackSummary}
	}
	done := make(chan struct{})
	s.inFlight[article.ID] = done
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, article.ID)
		s.mu.Unlock()
		close(done)
	}()

	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	summary, err := s.summarize(callCtx, article)
	if err != nil {
		s.logger.Warn("summary generation failed",
			zap.String("article", article.ID), zap.Error(err))
		return SummaryResult{Summary: FallbackSummary}
	}

	if err := s.kvs.SetTTL(ctx, cacheKey, summary, summaryCacheTTL); err != nil {
		s.logger.Error("cache summary", zap.Error(err))
	}
	return SummaryResult{Summary: summary, Generated: true}
}

func (s *Service) summarize(ctx context.Context, article *models.ArticleModel) (string, error) {
	systemPrompt := "You are a news desk editor. Respond with JSON only, " +
		`in the shape {"summary": "..."}. The summary is 2 to 3 sentences, ` +
		"neutral in tone, and written in the language of the article."
	prompt := fmt.Sprintf("Title: %s\n\nArticle:\n%s",
		article.Title, truncateRunes(article.Text, maxArticleRunes))

	raw, err := generateText(ctx, s.provider, systemPrompt, prompt)
	if err != nil {
		return "", err
	}
	var out struct {
		Summary string `json:"summary"`
	}
	if err := unmarshalModelJSON(raw, &out); err != nil {
		return "", err
	}
	summary := strings.TrimSpace(out.Summary)
	if summary == "" {
		return "", fmt.Errorf("summary missing in ai response")
	}
	return summary, nil
}

// TrendingTopics asks the provider for short topic labels over recent
// headlines, falling back to a static set.
func (s *Service) TrendingTopics(ctx context.Context, articles []models.ArticleModel) []string {
	if !s.settings.AISummariesEnabled() || len(articles) == 0 {
		return append([]string(nil), fallbackTopics...)
	}

	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title)
	}

	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	systemPrompt := "You label news coverage. Respond with JSON only, in the shape " +
		`{"topics": ["..."]}. Produce at most 5 short topic labels.`
	prompt := "Headlines:\n- " + strings.Join(titles, "\n- ")

	raw, err := generateText(callCtx, s.provider, systemPrompt, prompt)
	if err != nil {
		s.logger.Warn("trending topics failed", zap.Error(err))
		return append([]string(nil), fallbackTopics...)
	}
	var out struct {
		Topics []string `json:"topics"`
	}
	if err := unmarshalModelJSON(raw, &out); err != nil || len(out.Topics) == 0 {
		return append([]string(nil), fallbackTopics...)
	}
	if len(out.Topics) > 5 {
		out.Topics = out.Topics[:5]
	}
	return out.Topics
}

// summaryHash keys the cache by article id and content so edits invalidate
// the stored summary.
func summaryHash(article *models.ArticleModel) string {
	h := sha256.New()
	raw, _ := json.Marshal(struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Text  string `json:"text"`
	}{article.ID, article.Title, article.Text})
	h.Write(raw)
	return hex.EncodeToString(h.Sum(nil))[:32]
}
