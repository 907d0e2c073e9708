package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ayeshmadusanka/energyrush/internal/chatbot"
	"github.com/ayeshmadusanka/energyrush/internal/storage"
)

// ChatHandler serves the admin chatbot endpoints
type ChatHandler struct {
	store       storage.Store
	interpreter *chatbot.Interpreter
}

// NewChatHandler creates a new chat handler
func NewChatHandler(store storage.Store, interpreter *chatbot.Interpreter) *ChatHandler {
	return &ChatHandler{
		store:       store,
		interpreter: interpreter,
	}
}

// ChatRequest is the inbound message payload
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// HandleMessage processes one admin chat message. The session is
// correlated via the X-Session-ID header or the session_id field; when
// neither is present a fresh token is minted and echoed back.
func (h *ChatHandler) HandleMessage(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	sessionID := c.Get("X-Session-ID")
	if sessionID == "" {
		sessionID = req.SessionID
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
		log.Printf("Chatbot: minted new session %s", sessionID)
	}

	result := h.interpreter.HandleMessage(sessionID, req.Message)

	return c.JSON(fiber.Map{
		"response":              result.Response,
		"type":                  result.Type,
		"success":               result.Success,
		"requires_confirmation": result.RequiresConfirmation,
		"session_id":            sessionID,
	})
}

// HandleHistory returns the session transcript, oldest first.
func (h *ChatHandler) HandleHistory(c *fiber.Ctx) error {
	sessionID := c.Get("X-Session-ID")
	if sessionID == "" {
		sessionID = c.Query("session_id")
	}
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Session id is required",
		})
	}

	limit := c.QueryInt("limit", 50)

	interactions, err := h.store.RecentInteractions(sessionID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch chat history",
		})
	}

	// Storage returns newest first; a transcript reads oldest first
	for i, j := 0, len(interactions)-1; i < j; i, j = i+1, j-1 {
		interactions[i], interactions[j] = interactions[j], interactions[i]
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"session_id":   sessionID,
		"interactions": interactions,
		"count":        len(interactions),
	})
}
