package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kmis/app/api"
	"kmis/store"
	"kmis/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matchedPrompt = "What are the main findings on forest governance in Ghana?"

func testDefaults() store.State {
	return store.State{
		Documents: []types.Document{
			{
				ID:     "doc-1",
				Title:  "Ghana Forest Governance Assessment",
				Status: types.StatusPublished,
				Metadata: types.DocumentMetadata{
					Countries: []string{"Ghana"},
					Themes:    []string{"Forest Governance"},
				},
				ExtractedText: "Community forestry arrangements expanded during the reporting period.",
			},
			{
				ID:     "doc-2",
				Title:  "Brazil Market Trends",
				Status: types.StatusValidated,
				Metadata: types.DocumentMetadata{
					Countries: []string{"Brazil"},
					Themes:    []string{"Markets"},
				},
				ExtractedText: "Export volumes of verified timber rose steadily.",
			},
			{
				ID:     "doc-3",
				Title:  "Ghana Draft Notes",
				Status: types.StatusDraft,
				Metadata: types.DocumentMetadata{
					Countries: []string{"Ghana"},
				},
			},
		},
		Taxonomy: types.Taxonomy{
			Countries: []string{"Ghana", "Brazil"},
			Themes:    []string{"Forest Governance", "Markets"},
		},
		Users: []types.UserAccount{
			{ID: "user-1", Name: "Sarah Johnson", Role: types.RoleAdmin},
			{ID: "user-5", Name: "Claire Dupont", Role: types.RoleExternal},
		},
		ChatSessions: []types.ChatSession{},
		Role:         types.RoleViewer,
	}
}

func testLibrary() []types.Answer {
	return []types.Answer{
		{
			ID:         "ai-test-1",
			Prompt:     matchedPrompt,
			AnswerText: "Forest governance in Ghana strengthened over the period.",
			Bullets:    []string{"Community forestry expanded"},
			Sources: []types.Source{
				{DocumentID: "doc-1", Snippet: "Community forestry arrangements expanded", ReferenceLabel: "Section 2, p. 4"},
			},
		},
	}
}

func newTestApp(t *testing.T) (*fiber.App, *store.FileStore) {
	t.Helper()

	s := store.NewFileStore("", testDefaults)
	app := fiber.New(fiber.Config{ErrorHandler: api.ErrorHandler})

	chatHandler := api.NewChatHandler(s, testLibrary())
	documentHandler := api.NewDocumentHandler(s)

	v1 := app.Group("/api/v1")
	v1.Post("/ask", chatHandler.HandleAsk)
	v1.Get("/sessions", chatHandler.HandleListSessions)
	v1.Get("/sessions/:id", chatHandler.HandleGetSession)
	v1.Delete("/sessions/:id", chatHandler.HandleDeleteSession)
	v1.Get("/documents", documentHandler.HandleList)
	v1.Post("/documents", documentHandler.HandleCreate)
	v1.Get("/documents/:id", documentHandler.HandleGet)
	v1.Patch("/documents/:id", documentHandler.HandleUpdate)
	v1.Post("/documents/:id/status", documentHandler.HandleSetStatus)

	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type askResponse struct {
	SessionID string            `json:"sessionId"`
	Message   types.ChatMessage `json:"message"`
}

func TestAskCreatesSessionAndRecordsTurn(t *testing.T) {
	app, s := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/ask", types.AskParams{Prompt: matchedPrompt})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decode[askResponse](t, resp)
	require.NotEmpty(t, got.SessionID)
	assert.Equal(t, types.MessageAssistant, got.Message.Role)
	require.NotNil(t, got.Message.Answer)
	assert.Equal(t, "ai-test-1", got.Message.Answer.ID)

	session, ok := s.Session(got.SessionID)
	require.True(t, ok)
	assert.Equal(t, matchedPrompt, session.Title)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, types.MessageUser, session.Messages[0].Role)
	assert.Equal(t, matchedPrompt, session.Messages[0].Text)
	assert.Equal(t, types.MessageAssistant, session.Messages[1].Role)
}

func TestAskAppendsToExistingSession(t *testing.T) {
	app, s := newTestApp(t)
	session := s.CreateSession("ongoing")

	resp := doJSON(t, app, "POST", "/api/v1/ask", types.AskParams{
		Prompt:    matchedPrompt,
		SessionID: session.ID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decode[askResponse](t, resp)
	assert.Equal(t, session.ID, got.SessionID)

	stored, _ := s.Session(session.ID)
	assert.Len(t, stored.Messages, 2)
	assert.Equal(t, "ongoing", stored.Title, "title is fixed at creation")
}

func TestAskUnknownSessionNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/ask", types.AskParams{
		Prompt:    matchedPrompt,
		SessionID: "chat-missing",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAskMissingPromptFailsValidation(t *testing.T) {
	app, s := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/ask", types.AskParams{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, s.Sessions(), "a rejected question must not create a session")
}

func TestAskRejectedForExternalUsers(t *testing.T) {
	app, s := newTestApp(t)
	_, err := s.Login("user-5")
	require.NoError(t, err)

	resp := doJSON(t, app, "POST", "/api/v1/ask", types.AskParams{Prompt: matchedPrompt})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, s.Sessions())
}

func TestAskFallbackForUnmatchedPrompt(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/ask", types.AskParams{
		Prompt: "zxcv uiop",
		Scope:  types.Scope{Countries: []string{"Ghana"}},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decode[askResponse](t, resp)
	require.NotNil(t, got.Message.Answer)
	assert.Contains(t, got.Message.Answer.AnswerText, "for Ghana")
	// Drafts never ground an answer, so only doc-1 qualifies.
	require.Len(t, got.Message.Answer.Sources, 1)
	assert.Equal(t, "doc-1", got.Message.Answer.Sources[0].DocumentID)
}

func TestAskRecordsUpstreamFailure(t *testing.T) {
	app, s := newTestApp(t)
	// A configured key routes to the gateway; the endpoint is unreachable.
	s.SetAISettings(types.AISettingsParams{
		Endpoint: "http://127.0.0.1:1",
		APIKey:   "test-key",
		Model:    "test-model",
	})

	resp := doJSON(t, app, "POST", "/api/v1/ask", types.AskParams{Prompt: "What changed this quarter?"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decode[askResponse](t, resp)
	assert.Equal(t, types.MessageError, got.Message.Role)
	assert.Nil(t, got.Message.Answer)

	// The question itself is still on record.
	session, ok := s.Session(got.SessionID)
	require.True(t, ok)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, types.MessageUser, session.Messages[0].Role)
	assert.Equal(t, types.MessageError, session.Messages[1].Role)
}

func TestAskLongPromptTruncatedTitle(t *testing.T) {
	app, s := newTestApp(t)

	prompt := strings.Repeat("governance ", 10)
	resp := doJSON(t, app, "POST", "/api/v1/ask", types.AskParams{Prompt: prompt})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := decode[askResponse](t, resp)
	session, _ := s.Session(got.SessionID)
	assert.True(t, strings.HasSuffix(session.Title, "..."))
	assert.Len(t, []rune(session.Title), 63)
}

func TestSessionEndpoints(t *testing.T) {
	app, s := newTestApp(t)
	session := s.CreateSession("hello")
	require.NoError(t, s.AppendMessage(session.ID, types.ChatMessage{
		ID: "m1", Role: types.MessageUser, Text: "hi", Timestamp: time.Now(),
	}))

	resp := doJSON(t, app, "GET", "/api/v1/sessions", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	sessions := decode[[]types.ChatSession](t, resp)
	require.Len(t, sessions, 1)

	resp = doJSON(t, app, "GET", "/api/v1/sessions/"+session.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[types.ChatSession](t, resp)
	assert.Len(t, got.Messages, 1)

	resp = doJSON(t, app, "DELETE", "/api/v1/sessions/"+session.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	_, ok := s.Session(session.ID)
	assert.False(t, ok)

	resp = doJSON(t, app, "DELETE", "/api/v1/sessions/"+session.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
