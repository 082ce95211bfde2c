package enrichment

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/saulo-duarte/coursegen/internal/config"
)

const (
	DefaultSearchBaseURL = "https://www.googleapis.com"
	customSearchPath     = "/customsearch/v1"
	searchTimeout        = 10 * time.Second
)

type customSearchResponse struct {
	Items []struct {
		Title       string `json:"title"`
		Snippet     string `json:"snippet"`
		Link        string `json:"link"`
		DisplayLink string `json:"displayLink"`
	} `json:"items"`
}

type articleSearcher struct {
	client   *resty.Client
	apiKey   string
	engineID string
}

// NewArticleSearcher queries the Google Custom Search JSON API.
func NewArticleSearcher(baseURL, apiKey, engineID string) ArticleSearcher {
	if baseURL == "" {
		baseURL = DefaultSearchBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(searchTimeout).
		SetHeader("Accept", "application/json")

	return &articleSearcher{client: client, apiKey: apiKey, engineID: engineID}
}

func (s *articleSearcher) SearchArticles(ctx context.Context, query string, limit int) []Article {
	log := config.WithContext(ctx).WithField("query", query)

	var result customSearchResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": s.apiKey,
			"cx":  s.engineID,
			"q":   query,
			"num": strconv.Itoa(clampLimit(limit)),
		}).
		SetResult(&result).
		Get(customSearchPath)
	if err != nil {
		log.WithError(err).Warn("Article search failed")
		return []Article{}
	}
	if resp.IsError() {
		log.Warnf("Article search returned status %d", resp.StatusCode())
		return []Article{}
	}

	articles := make([]Article, 0, len(result.Items))
	for _, item := range result.Items {
		if item.Link == "" {
			continue
		}
		articles = append(articles, Article{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
			Source:  sourceOf(item.DisplayLink, item.Link),
		})
	}
	if len(articles) > clampLimit(limit) {
		articles = articles[:clampLimit(limit)]
	}
	return articles
}

func sourceOf(displayLink, link string) string {
	if displayLink != "" {
		return displayLink
	}
	if u, err := url.Parse(link); err == nil {
		return u.Host
	}
	return ""
}
