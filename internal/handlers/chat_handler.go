package handlers

import (
	"net/http"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/internal/services"
	"github.com/codeLord61/Exchangify/pkg/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ChatHandler serves direct messaging: the contact list, conversation
// history, sending, image upload, and deleting own messages.
type ChatHandler struct {
	chatRepository         repositories.ChatRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	chat                   *services.ChatService
	store                  *storage.Store
}

func NewChatHandler(
	chatRepo repositories.ChatRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	chat *services.ChatService,
	store *storage.Store,
) *ChatHandler {
	return &ChatHandler{
		chatRepository:         chatRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
		chat:                   chat,
		store:                  store,
	}
}

func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/chat/users", h.ChatUsers)
	g.GET("/chat/:userId/messages", h.Conversation)
	g.POST("/chat/send", h.SendMessage)
	g.POST("/chat/upload", h.UploadImage)
	g.DELETE("/chat/messages/:id", h.DeleteMessage)
}

// ChatUsers lists everyone the caller can message. Opening the screen marks
// chat notifications read and flags the caller online.
func (h *ChatHandler) ChatUsers(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	if err := h.notificationRepository.MarkKindRead(principal.UserID, models.KindChat); err != nil {
		return httpError(err)
	}
	if err := h.userRepository.SetOnline(principal.UserID, true); err != nil {
		return httpError(err)
	}

	users, err := h.userRepository.ListExcept(principal.UserID)
	if err != nil {
		return httpError(err)
	}

	payload := make([]echo.Map, 0, len(users))
	for _, user := range users {
		payload = append(payload, echo.Map{
			"id":            user.ID,
			"name":          user.FullName(),
			"profile_image": user.ProfileImage,
			"is_online":     user.IsOnline,
			"last_seen":     user.LastSeen,
		})
	}
	return c.JSON(http.StatusOK, payload)
}

// Conversation returns the two-way history with the given user and marks
// their messages to the caller read.
func (h *ChatHandler) Conversation(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	partnerID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	if _, err := h.userRepository.GetByID(partnerID); err != nil {
		return httpError(err)
	}

	if err := h.chatRepository.MarkConversationRead(principal.UserID, partnerID); err != nil {
		return httpError(err)
	}

	messages, err := h.chatRepository.Conversation(principal.UserID, partnerID)
	if err != nil {
		return httpError(err)
	}

	responses := make([]models.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, messages[i].ToResponse())
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.chat.SendMessage(principal.UserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, message.ToResponse())
}

// UploadImage stores a chat image and returns its URL; the client then sends
// an image message carrying it.
func (h *ChatHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image provided")
	}
	if !storage.Allowed(file.Filename) {
		return echo.NewHTTPError(http.StatusBadRequest, "File type not allowed")
	}

	stored, err := h.store.Save(file, storage.SubdirChat)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"url":     h.store.URL(storage.SubdirChat, stored),
	})
}

// DeleteMessage removes one of the caller's own messages.
func (h *ChatHandler) DeleteMessage(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	message, err := h.chatRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}
	if message.SenderID != principal.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You can only delete your own messages")
	}

	if err := h.chatRepository.Delete(message.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
