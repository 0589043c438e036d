package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"healthguard-api/config"
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/pkg/httpclient"

	"github.com/sirupsen/logrus"
)

const (
	articleSearchLimit    = 10
	articleRetryAttempts  = 3
	articleRetryBaseDelay = 200 * time.Millisecond
)

var (
	ErrEmptySearchQuery    = errors.New("search query is required")
	ErrArticlesUnavailable = errors.New("article search upstream unavailable")
)

type ArticleUsecase interface {
	SearchArticles(ctx context.Context, query string) ([]dto.ArticleResponse, error)
}

type articleUsecase struct {
	log    *logrus.Logger
	cfg    config.ArticlesConfig
	client *http.Client
}

func NewArticleUsecase(log *logrus.Logger, cfg config.ArticlesConfig) ArticleUsecase {
	return &articleUsecase{
		log:    log,
		cfg:    cfg,
		client: httpclient.New(cfg.Timeout),
	}
}

// wikiSearchResult mirrors the Wikimedia Core REST search response.
type wikiSearchResult struct {
	Pages []struct {
		Key         string `json:"key"`
		Title       string `json:"title"`
		Excerpt     string `json:"excerpt"`
		Description string `json:"description"`
		Thumbnail   *struct {
			URL string `json:"url"`
		} `json:"thumbnail"`
	} `json:"pages"`
}

// SearchArticles proxies the query to the Wikimedia search endpoint.
// Upstream failures surface as ErrArticlesUnavailable after retries.
func (u *articleUsecase) SearchArticles(ctx context.Context, query string) ([]dto.ArticleResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	searchURL := fmt.Sprintf("%s/search/page?q=%s&limit=%d", u.cfg.BaseURL, url.QueryEscape(query), articleSearchLimit)

	var result wikiSearchResult
	err := httpclient.Retry(ctx, articleRetryAttempts, articleRetryBaseDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", u.cfg.UserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := u.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d from article search", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&result)
	})
	if err != nil {
		u.log.Warnf("Failed to search articles: %+v", err)
		return nil, ErrArticlesUnavailable
	}

	articles := make([]dto.ArticleResponse, 0, len(result.Pages))
	for _, page := range result.Pages {
		article := dto.ArticleResponse{
			Key:         page.Key,
			Title:       page.Title,
			Excerpt:     page.Excerpt,
			Description: page.Description,
			URL:         "https://en.wikipedia.org/wiki/" + url.PathEscape(page.Key),
		}
		if page.Thumbnail != nil {
			article.ThumbnailURL = page.Thumbnail.URL
		}
		articles = append(articles, article)
	}

	return articles, nil
}
