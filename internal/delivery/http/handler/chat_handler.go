package handler

import (
	"encoding/json"
	"net/http"

	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/delivery/http/middleware"
	"healthguard-api/internal/usecase"
	"healthguard-api/pkg/response"
	"healthguard-api/pkg/validator"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
	validator   *validator.CustomValidator
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, validator *validator.CustomValidator) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		validator:   validator,
	}
}

// SendMessage handles a chat message and returns the assistant reply
// @Summary Send a chat message
// @Tags Chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SendChatMessageRequest true "Send Chat Message Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /chat/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SendChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reply, err := h.chatUsecase.SendMessage(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to send message")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", reply)
}

// GetMessages handles fetching the chat transcript in creation order
// @Summary Get chat history
// @Tags Chat
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /chat/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	messages, err := h.chatUsecase.GetMessages(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get chat history")
		return
	}

	response.Success(w, http.StatusOK, "Chat history retrieved successfully", messages)
}
