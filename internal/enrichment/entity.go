package enrichment

type Video struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoID      string `json:"video_id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	ChannelName  string `json:"channel_name"`
}

type Article struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// Resources is the enrichment bundle attached to a course or subtopic.
type Resources struct {
	Videos   []Video   `json:"videos"`
	Articles []Article `json:"articles"`
}
