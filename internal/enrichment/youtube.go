package enrichment

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/coursegen/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const watchURL = "https://www.youtube.com/watch?v="

type youtubeSearcher struct {
	svc *youtube.Service
}

// NewYouTubeSearcher builds a video searcher on the YouTube Data API v3.
// Extra options are appended after the API key (endpoint or HTTP client overrides).
func NewYouTubeSearcher(ctx context.Context, apiKey string, opts ...option.ClientOption) (VideoSearcher, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service client: %w", err)
	}
	return &youtubeSearcher{svc: svc}, nil
}

func (s *youtubeSearcher) SearchVideos(ctx context.Context, query string, limit int) []Video {
	log := config.WithContext(ctx).WithField("query", query)

	resp, err := s.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(clampLimit(limit))).
		Context(ctx).
		Do()
	if err != nil {
		log.WithError(err).Warn("YouTube search failed")
		return []Video{}
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, Video{
			Title:        item.Snippet.Title,
			Description:  truncate(item.Snippet.Description, descriptionLimit),
			VideoID:      item.Id.VideoId,
			URL:          watchURL + item.Id.VideoId,
			ThumbnailURL: thumbnailURL(item.Snippet.Thumbnails),
			ChannelName:  item.Snippet.ChannelTitle,
		})
	}
	return videos
}

func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
