// Package translate is the client for the machine-translation collaborator
// used by the bilingual editing workflow. Translation is only ever invoked
// on demand for a single field pair, never automatically on save.
package translate

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Languages supported by the console. Anything else is rejected at the API
// boundary.
const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// ValidPair reports whether source/target is one of the two supported
// directions.
func ValidPair(source, target string) bool {
	return (source == LangEnglish && target == LangArabic) ||
		(source == LangArabic && target == LangEnglish)
}

// Translator calls a LibreTranslate-compatible endpoint, caching results in
// redis keyed on direction and text hash. The cache client may be nil.
type Translator struct {
	endpoint string
	apiKey   string
	client   *http.Client
	cache    *redis.Client
}

const cacheTTL = 30 * 24 * time.Hour

func New(endpoint, apiKey string, cache *redis.Client) *Translator {
	return &Translator{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 15 * time.Second},
		cache:    cache,
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func cacheKey(text, source, target string) string {
	sum := sha1.Sum([]byte(text))
	return fmt.Sprintf("translate:%s:%s:%s", source, target, hex.EncodeToString(sum[:]))
}

// Translate returns text rendered in the target language. Failures are
// returned as-is; the caller surfaces them as a generic retryable notice.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if !ValidPair(source, target) {
		return "", fmt.Errorf("unsupported language pair %s->%s", source, target)
	}
	if text == "" {
		return "", nil
	}

	key := cacheKey(text, source, target)
	if t.cache != nil {
		if cached, err := t.cache.Get(ctx, key).Result(); err == nil {
			return cached, nil
		}
	}

	body, err := json.Marshal(translateRequest{Q: text, Source: source, Target: target, APIKey: t.apiKey})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("translation request failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("translation service returned an error")
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	if t.cache != nil {
		if err := t.cache.Set(ctx, key, out.TranslatedText, cacheTTL).Err(); err != nil {
			log.Warn().Err(err).Msg("failed to cache translation")
		}
	}
	return out.TranslatedText, nil
}
