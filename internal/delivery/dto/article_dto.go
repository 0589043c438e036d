package dto

// ArticleResponse represents one health article search result proxied from
// the Wikimedia REST API
type ArticleResponse struct {
	Key          string `json:"key"`
	Title        string `json:"title"`
	Excerpt      string `json:"excerpt,omitempty"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	URL          string `json:"url"`
}
