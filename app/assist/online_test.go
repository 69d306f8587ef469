package assist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kmis/app/assist"
	"kmis/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewaySettings(endpoint string) types.AISettings {
	return types.AISettings{
		Endpoint:     endpoint,
		APIKey:       "test-key",
		Model:        "test-model",
		SystemPrompt: "You are a test assistant.",
	}
}

func completionEnvelope(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func onlineCorpus() corpusStub {
	return corpusStub{docs: []types.Document{
		doc("d1", types.StatusPublished, []string{"Ghana"}, []string{"Forest Governance"}, nil, ""),
		doc("d2", types.StatusPublished, []string{"Ghana"}, []string{"Markets"}, nil, ""),
		doc("d3", types.StatusValidated, []string{"Ghana"}, []string{"Climate"}, nil, ""),
	}}
}

func TestGroundedClientRequestShape(t *testing.T) {
	var captured struct {
		auth string
		body map[string]any
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))
		json.NewEncoder(w).Encode(completionEnvelope(`{"summary":"ok","bullets":[],"sources":[]}`))
	}))
	defer srv.Close()

	g := assist.NewGroundedClient(gatewaySettings(srv.URL), onlineCorpus())
	_, err := g.Answer(context.Background(), "What changed?", types.Scope{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", captured.auth)
	assert.Equal(t, "test-model", captured.body["model"])
	assert.InDelta(t, 0.2, captured.body["temperature"], 0.001)

	messages := captured.body["messages"].([]any)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	user := messages[1].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "You are a test assistant.", system["content"])
	assert.Equal(t, "user", user["role"])
	content := user["content"].(string)
	assert.Contains(t, content, "What changed?")
	assert.Contains(t, content, "Document 0: Title d1")
	assert.Contains(t, content, "documentIndex")
}

func TestGroundedClientMapsCitations(t *testing.T) {
	completion := `{"summary":"Grounded summary.","bullets":["point one"],"sources":[` +
		`{"documentIndex":1,"snippet":"from d2","referenceLabel":"p. 2"},` +
		`{"documentIndex":0,"snippet":"from d1","referenceLabel":"p. 1"},` +
		`{"documentIndex":9,"snippet":"out of range","referenceLabel":"p. 9"},` +
		`{"documentIndex":-1,"snippet":"negative","referenceLabel":"p. 0"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionEnvelope(completion))
	}))
	defer srv.Close()

	g := assist.NewGroundedClient(gatewaySettings(srv.URL), onlineCorpus())
	answer, err := g.Answer(context.Background(), "q", types.Scope{})
	require.NoError(t, err)

	assert.Equal(t, "Grounded summary.", answer.AnswerText)
	assert.Equal(t, []string{"point one"}, answer.Bullets)
	// Citation order preserved; out-of-range indices dropped.
	require.Len(t, answer.Sources, 2)
	assert.Equal(t, "d2", answer.Sources[0].DocumentID)
	assert.Equal(t, "from d2", answer.Sources[0].Snippet)
	assert.Equal(t, "d1", answer.Sources[1].DocumentID)
}

func TestGroundedClientStripsCodeFences(t *testing.T) {
	completion := "```json\n{\"summary\":\"Fenced.\",\"bullets\":[],\"sources\":[]}\n```"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionEnvelope(completion))
	}))
	defer srv.Close()

	g := assist.NewGroundedClient(gatewaySettings(srv.URL), onlineCorpus())
	answer, err := g.Answer(context.Background(), "q", types.Scope{})
	require.NoError(t, err)
	assert.Equal(t, "Fenced.", answer.AnswerText)
}

func TestGroundedClientDegradesOnNonJSONCompletion(t *testing.T) {
	raw := "Sorry, here is a plain prose answer instead."
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionEnvelope(raw))
	}))
	defer srv.Close()

	g := assist.NewGroundedClient(gatewaySettings(srv.URL), onlineCorpus())
	answer, err := g.Answer(context.Background(), "q", types.Scope{})
	require.NoError(t, err)

	assert.Equal(t, raw, answer.AnswerText)
	assert.Empty(t, answer.Bullets)
	// Sources are synthesized from the leading resolved documents.
	require.Len(t, answer.Sources, 3)
	assert.Equal(t, "d1", answer.Sources[0].DocumentID)
	assert.Equal(t, "d2", answer.Sources[1].DocumentID)
	assert.Equal(t, "d3", answer.Sources[2].DocumentID)
}

func TestGroundedClientDegradesOnMissingSummary(t *testing.T) {
	// Valid JSON, wrong shape: still a degrade, not a failure.
	completion := `{"bullets":["no summary field"],"sources":[]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionEnvelope(completion))
	}))
	defer srv.Close()

	g := assist.NewGroundedClient(gatewaySettings(srv.URL), onlineCorpus())
	answer, err := g.Answer(context.Background(), "q", types.Scope{})
	require.NoError(t, err)
	assert.Equal(t, completion, answer.AnswerText)
	assert.Empty(t, answer.Bullets)
}

func TestGroundedClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := assist.NewGroundedClient(gatewaySettings(srv.URL), onlineCorpus())
	_, err := g.Answer(context.Background(), "q", types.Scope{})

	var upstream *assist.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
	assert.Contains(t, upstream.Body, "model overloaded")
}

func TestGroundedClientNoChoicesIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	g := assist.NewGroundedClient(gatewaySettings(srv.URL), onlineCorpus())
	_, err := g.Answer(context.Background(), "q", types.Scope{})

	var upstream *assist.UpstreamError
	require.ErrorAs(t, err, &upstream)
}

func TestGroundedClientTransportError(t *testing.T) {
	g := assist.NewGroundedClient(gatewaySettings("http://127.0.0.1:1"), onlineCorpus())
	_, err := g.Answer(context.Background(), "q", types.Scope{})

	var upstream *assist.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Zero(t, upstream.Status)
}

func TestSelectStrategyByCapability(t *testing.T) {
	corpus := onlineCorpus()
	library := []types.Answer{}

	online := assist.Select(types.AISettings{APIKey: "k"}, corpus, library)
	assert.IsType(t, &assist.GroundedClient{}, online)

	offline := assist.Select(types.AISettings{}, corpus, library)
	assert.IsType(t, &assist.Matcher{}, offline)
}
