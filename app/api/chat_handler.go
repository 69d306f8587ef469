package api

import (
	"errors"
	"time"

	"kmis/app/assist"
	"kmis/store"
	"kmis/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionTitleLimit = 60

// ChatHandler runs the AI Q&A surface: one conversation turn per
// request, recorded in the chat session store.
type ChatHandler struct {
	store   store.Storer
	library []types.Answer

	// OfflineDelay simulates analysis time on the canned path.
	OfflineDelay time.Duration
}

func NewChatHandler(s store.Storer, library []types.Answer) *ChatHandler {
	return &ChatHandler{
		store:   s,
		library: library,
	}
}

// HandleAsk answers one question. The target session is bound before
// the strategy call is issued, so a session switch while the request
// is in flight cannot redirect the completing turn.
func (h *ChatHandler) HandleAsk(c *fiber.Ctx) error {
	var params types.AskParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}
	if errs := types.Validate(&params); len(errs) > 0 {
		return NewValidationError(errs)
	}

	if h.store.Role() == types.RoleExternal {
		return ErrUnAuthorized("AI Q&A is only available to internal users")
	}

	var session types.ChatSession
	if params.SessionID != "" {
		existing, ok := h.store.Session(params.SessionID)
		if !ok {
			return ErrNotFound(params.SessionID, "chat session")
		}
		session = existing
	} else {
		session = h.store.CreateSession(sessionTitle(params.Prompt))
	}

	userMsg := types.ChatMessage{
		ID:        "msg-" + uuid.NewString(),
		Role:      types.MessageUser,
		Text:      params.Prompt,
		Timestamp: time.Now(),
	}
	// The question is recorded before the strategy runs so a failed
	// turn is not silently lost.
	if err := h.store.AppendMessage(session.ID, userMsg); err != nil {
		return err
	}

	answerer := assist.Select(h.store.AISettings(), h.store, h.library)
	if m, ok := answerer.(*assist.Matcher); ok {
		m.Delay = h.OfflineDelay
	}

	answer, err := answerer.Answer(c.Context(), params.Prompt, params.Scope)
	if err != nil {
		var upstream *assist.UpstreamError
		if !errors.As(err, &upstream) {
			return err
		}
		errMsg := types.ChatMessage{
			ID:        "msg-" + uuid.NewString(),
			Role:      types.MessageError,
			Text:      "The AI service could not be reached: " + upstream.Error(),
			Timestamp: time.Now(),
		}
		if appendErr := h.store.AppendMessage(session.ID, errMsg); appendErr != nil {
			return appendErr
		}
		return c.JSON(fiber.Map{
			"sessionId": session.ID,
			"message":   errMsg,
		})
	}

	assistantMsg := types.ChatMessage{
		ID:        "msg-" + uuid.NewString(),
		Role:      types.MessageAssistant,
		Text:      answer.AnswerText,
		Answer:    &answer,
		Timestamp: time.Now(),
	}
	if err := h.store.AppendMessage(session.ID, assistantMsg); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"sessionId": session.ID,
		"message":   assistantMsg,
	})
}

func (h *ChatHandler) HandleListSessions(c *fiber.Ctx) error {
	return c.JSON(h.store.Sessions())
}

func (h *ChatHandler) HandleGetSession(c *fiber.Ctx) error {
	id := c.Params("id")
	session, ok := h.store.Session(id)
	if !ok {
		return ErrNotFound(id, "chat session")
	}
	return c.JSON(session)
}

func (h *ChatHandler) HandleDeleteSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.store.DeleteSession(id); err != nil {
		return ErrNotFound(id, "chat session")
	}
	return c.JSON(fiber.Map{"deleted": id})
}

// sessionTitle derives a session title from its first question. The
// title is fixed at creation and never recomputed.
func sessionTitle(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= sessionTitleLimit {
		return prompt
	}
	return string(runes[:sessionTitleLimit]) + "..."
}
