package handler

import (
	"net/http"

	"healthguard-api/internal/usecase"
	"healthguard-api/pkg/response"
)

type ArticleHandler struct {
	articleUsecase usecase.ArticleUsecase
}

func NewArticleHandler(articleUsecase usecase.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
	}
}

// SearchArticles handles proxying a health article search upstream
// @Summary Search health articles
// @Tags Articles
// @Security BearerAuth
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /articles/search [get]
func (h *ArticleHandler) SearchArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	articles, err := h.articleUsecase.SearchArticles(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrEmptySearchQuery:
			response.Error(w, http.StatusBadRequest, "q query parameter is required", nil)
		case usecase.ErrArticlesUnavailable:
			response.BadGateway(w, "Article search is temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to search articles")
		}
		return
	}

	response.Success(w, http.StatusOK, "Articles retrieved successfully", articles)
}
