package enrichment

import (
	"context"
	"unicode/utf8"
)

const (
	MaxResults            = 10
	DefaultCourseVideos   = 5
	DefaultCourseArticles = 5
	DefaultTopicVideos    = 3
	DefaultTopicArticles  = 3
	descriptionLimit      = 200
)

type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string, limit int) []Video
}

type ArticleSearcher interface {
	SearchArticles(ctx context.Context, query string, limit int) []Article
}

// Searcher never fails: upstream errors produce empty lists.
type Searcher interface {
	VideoSearcher
	ArticleSearcher
}

type searcher struct {
	videos   VideoSearcher
	articles ArticleSearcher
}

func NewSearcher(videos VideoSearcher, articles ArticleSearcher) Searcher {
	if videos == nil {
		videos = noop{}
	}
	if articles == nil {
		articles = noop{}
	}
	return &searcher{videos: videos, articles: articles}
}

func (s *searcher) SearchVideos(ctx context.Context, query string, limit int) []Video {
	return s.videos.SearchVideos(ctx, query, limit)
}

func (s *searcher) SearchArticles(ctx context.Context, query string, limit int) []Article {
	return s.articles.SearchArticles(ctx, query, limit)
}

// Noop returns a Searcher with no backends configured.
func Noop() Searcher {
	return noop{}
}

type noop struct{}

func (noop) SearchVideos(context.Context, string, int) []Video { return []Video{} }

func (noop) SearchArticles(context.Context, string, int) []Article { return []Article{} }

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxResults {
		return MaxResults
	}
	return limit
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
