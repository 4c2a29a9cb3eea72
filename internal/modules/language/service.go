package language

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/majlis-kantho/core/internal/pkg/kv"
	"go.uber.org/zap"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	storageKey    = "portal:lang"
	DefaultLocale = "en"
)

// locales the portal ships with, in display order.
var supported = []string{"bn", "en", "ar"}

// Translations is the UI string table for one locale. Category names carry
// their own nested table.
type Translations struct {
	Home          string            `json:"home"`
	LatestNews    string            `json:"latestNews"`
	Breaking      string            `json:"breaking"`
	Trending      string            `json:"trending"`
	MostRead      string            `json:"mostRead"`
	Search        string            `json:"search"`
	Login         string            `json:"login"`
	Portal        string            `json:"portal"`
	Mission       string            `json:"mission"`
	Archive       string            `json:"archive"`
	StayUpdated   string            `json:"stayUpdated"`
	NewsletterDsc string            `json:"newsletterDesc"`
	JoinNewslett  string            `json:"joinNewsletter"`
	PublicOpinion string            `json:"publicOpinion"`
	VoteSuccess   string            `json:"voteSuccess"`
	By            string            `json:"by"`
	ReadMore      string            `json:"readMore"`
	BackToTop     string            `json:"backToTop"`
	Categories    map[string]string `json:"categories"`
}

// Service resolves locale string tables and remembers the portal-wide
// default locale across restarts.
type Service struct {
	mu      sync.RWMutex
	current string
	tables  map[string]Translations
	kvs     kv.Store
	logger  *zap.Logger
}

// NewService parses the embedded locale tables and restores the persisted
// locale choice.
func NewService(kvs kv.Store, logger *zap.Logger) (*Service, error) {
	tables := make(map[string]Translations, len(supported))
	for _, code := range supported {
		raw, err := localeFS.ReadFile("locales/" + code + ".json")
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", code, err)
		}
		var t Translations
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("locale %s: %w", code, err)
		}
		tables[code] = t
	}

	s := &Service{current: DefaultLocale, tables: tables, kvs: kvs, logger: logger.Named("language")}
	raw, ok, err := kvs.Get(context.Background(), storageKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if _, known := tables[raw]; known {
			s.current = raw
		}
	}
	return s, nil
}

// Supported lists the locale codes the portal ships with.
func (s *Service) Supported() []string {
	return append([]string(nil), supported...)
}

// Current returns the active portal-wide locale.
func (s *Service) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetCurrent switches the default locale and persists the choice. Unknown
// codes are rejected.
func (s *Service) SetCurrent(code string) error {
	if _, ok := s.tables[code]; !ok {
		return fmt.Errorf("unsupported locale %q", code)
	}
	s.mu.Lock()
	s.current = code
	s.mu.Unlock()
	if err := s.kvs.Set(context.Background(), storageKey, code); err != nil {
		s.logger.Error("persist locale", zap.Error(err))
	}
	return nil
}

// Table returns the string table for a locale, falling back to the default
// locale for unknown codes.
func (s *Service) Table(code string) Translations {
	if t, ok := s.tables[code]; ok {
		return t
	}
	return s.tables[DefaultLocale]
}

// IsRTL reports whether a locale renders right to left.
func IsRTL(code string) bool {
	return code == "ar"
}
