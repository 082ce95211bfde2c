package enrichment

import (
	"context"

	"github.com/saulo-duarte/coursegen/internal/config"
)

// NewFromSettings wires whichever backends have credentials; missing keys degrade to empty results.
func NewFromSettings(ctx context.Context, s *config.Settings) Searcher {
	log := config.WithContext(ctx)

	var videos VideoSearcher
	if s.YouTubeAPIKey != "" {
		v, err := NewYouTubeSearcher(ctx, s.YouTubeAPIKey)
		if err != nil {
			log.WithError(err).Warn("Video enrichment disabled")
		} else {
			videos = v
		}
	} else {
		log.Info("YOUTUBE_API_KEY not set, video enrichment disabled")
	}

	var articles ArticleSearcher
	if s.SearchAPIKey != "" && s.SearchEngineID != "" {
		articles = NewArticleSearcher(s.SearchBaseURL, s.SearchAPIKey, s.SearchEngineID)
	} else {
		log.Info("SEARCH_API_KEY or SEARCH_ENGINE_ID not set, article enrichment disabled")
	}

	return NewSearcher(videos, articles)
}
