package handler

import (
	"net/http"

	"healthguard-api/internal/i18n"
	"healthguard-api/pkg/response"

	"github.com/gorilla/mux"
)

type TranslationHandler struct {
}

func NewTranslationHandler() *TranslationHandler {
	return &TranslationHandler{}
}

// ListLanguages handles listing supported UI languages
// @Summary List supported languages
// @Tags Translations
// @Produce json
// @Success 200 {object} response.Response
// @Router /translations [get]
func (h *TranslationHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Languages retrieved successfully", i18n.Languages())
}

// GetTranslations handles fetching a language's UI string table.
// Unknown languages fall back to English.
// @Summary Get translation table
// @Tags Translations
// @Produce json
// @Param lang path string true "Language code"
// @Success 200 {object} response.Response
// @Router /translations/{lang} [get]
func (h *TranslationHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	lang := mux.Vars(r)["lang"]
	response.Success(w, http.StatusOK, "Translations retrieved successfully", i18n.Table(lang))
}
