package handlers

import (
	"github.com/gofiber/fiber/v2"

	"padelmania/internal/chat"
)

type ChatHandler struct {
	Bot *chat.Bot
}

func (h *ChatHandler) Greeting(c *fiber.Ctx) error {
	return c.JSON(chat.Greeting())
}

type chatRequest struct {
	Message string `json:"message"`
	Action  string `json:"action"`
}

// Message answers a user message or a quick-reply action with a canned
// response, possibly carrying product suggestions.
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	var reply chat.Reply
	if req.Action != "" {
		reply = h.Bot.QuickReply(req.Action)
	} else {
		reply = h.Bot.Respond(req.Message)
	}
	return c.JSON(reply)
}
