package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"kmis/store"
	"kmis/types"

	"github.com/google/uuid"
	"github.com/pkoukk/tiktoken-go"
)

const gatewayTemperature = 0.2

// UpstreamError is a failed gateway call: a transport failure (Status
// zero) or a non-2xx response. It is the only assist failure surfaced
// to the user as an error bubble.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("ai gateway unreachable: %s", e.Body)
	}
	return fmt.Sprintf("ai gateway returned %d: %s", e.Status, e.Body)
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// structuredAnswer is the JSON shape the gateway is instructed to
// return. Summary is a pointer so a completion missing it entirely is
// rejected as malformed, not accepted as empty.
type structuredAnswer struct {
	Summary *string            `json:"summary"`
	Bullets []string           `json:"bullets"`
	Sources []structuredSource `json:"sources"`
}

// structuredSource cites by 0-based index into the resolved document
// list, keeping the grounding prompt decoupled from storage ids.
type structuredSource struct {
	DocumentIndex  int    `json:"documentIndex"`
	Snippet        string `json:"snippet"`
	ReferenceLabel string `json:"referenceLabel"`
}

// GroundedClient is the online strategy: it grounds the question on
// resolved documents and asks the configured gateway for a structured
// answer with citations.
type GroundedClient struct {
	settings types.AISettings
	docs     store.DocumentSource
	client   *http.Client
	now      func() time.Time
}

func NewGroundedClient(settings types.AISettings, docs store.DocumentSource) *GroundedClient {
	return &GroundedClient{
		settings: settings,
		docs:     docs,
		client:   &http.Client{Timeout: 60 * time.Second},
		now:      time.Now,
	}
}

func (g *GroundedClient) Answer(ctx context.Context, prompt string, scope types.Scope) (types.Answer, error) {
	start := time.Now()
	resolved := Resolve(scope, g.docs.Documents(), OnlineDocumentLimit)

	reqBody, err := json.Marshal(chatRequest{
		Model: g.settings.Model,
		Messages: []chatMessage{
			{Role: "system", Content: g.settings.SystemPrompt},
			{Role: "user", Content: buildUserMessage(prompt, resolved)},
		},
		Temperature: gatewayTemperature,
	})
	if err != nil {
		return types.Answer{}, fmt.Errorf("marshal gateway request: %w", err)
	}

	if count, err := countTokens(reqBody); err == nil {
		log.Printf("[ASSIST] gateway request: %d docs, %d tokens", len(resolved), count)
	}

	completion, err := g.complete(ctx, reqBody)
	if err != nil {
		return types.Answer{}, err
	}
	log.Printf("[ASSIST] gateway answered in %v", time.Since(start))

	answer := types.Answer{
		ID:        "ai-" + uuid.NewString(),
		CreatedAt: g.now(),
		Prompt:    prompt,
		Scope:     scope,
	}

	parsed, ok := parseStructured(completion)
	if !ok {
		// Malformed completion degrades to the raw text with citations
		// synthesized from the leading resolved documents.
		log.Printf("[ASSIST] completion is not the expected JSON shape, degrading to raw text")
		answer.AnswerText = completion
		answer.Bullets = []string{}
		answer.Sources = synthesizedSources(resolved, 3)
		return answer, nil
	}

	answer.AnswerText = *parsed.Summary
	answer.Bullets = parsed.Bullets
	if answer.Bullets == nil {
		answer.Bullets = []string{}
	}
	answer.Sources = g.mapCitations(parsed.Sources, resolved)
	return answer, nil
}

// complete performs the single gateway round trip and extracts the
// first choice's completion text. Failures are not retried; the caller
// shows the error and the human decides whether to ask again.
func (g *GroundedClient) complete(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.settings.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.settings.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &UpstreamError{Body: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Body: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var envelope chatResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Body: "unparseable gateway envelope: " + err.Error()}
	}
	if len(envelope.Choices) == 0 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: "gateway returned no choices"}
	}
	return envelope.Choices[0].Message.Content, nil
}

// buildUserMessage embeds the question and the serialized grounding
// context, with the instruction to answer as JSON citing documents by
// 0-based index.
func buildUserMessage(prompt string, resolved []types.Document) string {
	var sb strings.Builder
	sb.WriteString("Answer the question using only the context documents below.\n\n")
	sb.WriteString("Question: " + prompt + "\n\n")
	sb.WriteString("Context documents:\n")
	sb.WriteString(serializeContext(resolved))
	sb.WriteString("\n\nRespond with a JSON object with exactly three fields: ")
	sb.WriteString(`"summary" (string), "bullets" (array of strings) and "sources" `)
	sb.WriteString(`(array of {"documentIndex": number, "snippet": string, "referenceLabel": string}), `)
	sb.WriteString("where documentIndex is the 0-based index of the cited context document.")
	return sb.String()
}

func serializeContext(resolved []types.Document) string {
	blocks := make([]string, 0, len(resolved))
	for i, d := range resolved {
		blocks = append(blocks, fmt.Sprintf(
			"Document %d: %s\nCountries: %s\nThemes: %s\nType: %s\n%s",
			i,
			d.Title,
			strings.Join(d.Metadata.Countries, ", "),
			strings.Join(d.Metadata.Themes, ", "),
			d.Metadata.DocumentType,
			d.ExtractedText,
		))
	}
	return strings.Join(blocks, "\n\n")
}

// parseStructured validates the completion against the expected shape.
// Code fences around the JSON are tolerated; a missing summary field
// counts as malformed even when the JSON itself parses.
func parseStructured(completion string) (structuredAnswer, bool) {
	var parsed structuredAnswer
	if err := json.Unmarshal([]byte(stripFences(completion)), &parsed); err != nil {
		return structuredAnswer{}, false
	}
	if parsed.Summary == nil {
		return structuredAnswer{}, false
	}
	return parsed, true
}

func stripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.Index(trimmed, "\n"); i >= 0 {
		// Drop the fence language marker line, e.g. "json".
		trimmed = trimmed[i+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// mapCitations translates document indices back to document ids,
// dropping citations that are out of range or point at documents no
// longer in the corpus.
func (g *GroundedClient) mapCitations(cited []structuredSource, resolved []types.Document) []types.Source {
	sources := make([]types.Source, 0, len(cited))
	for _, c := range cited {
		if c.DocumentIndex < 0 || c.DocumentIndex >= len(resolved) {
			log.Printf("[ASSIST] dropping citation with out-of-range index %d", c.DocumentIndex)
			continue
		}
		id := resolved[c.DocumentIndex].ID
		if _, ok := g.docs.Document(id); !ok {
			log.Printf("[ASSIST] dropping citation for vanished document %s", id)
			continue
		}
		sources = append(sources, types.Source{
			DocumentID:     id,
			Snippet:        c.Snippet,
			ReferenceLabel: c.ReferenceLabel,
		})
	}
	return sources
}

func synthesizedSources(resolved []types.Document, limit int) []types.Source {
	if len(resolved) > limit {
		resolved = resolved[:limit]
	}
	sources := make([]types.Source, 0, len(resolved))
	for _, d := range resolved {
		sources = append(sources, types.Source{
			DocumentID:     d.ID,
			Snippet:        snippet(d.ExtractedText),
			ReferenceLabel: fallbackReferenceLabel,
		})
	}
	return sources
}

func countTokens(data []byte) (int, error) {
	enc, err := tiktoken.EncodingForModel("gpt-3.5-turbo")
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(string(data), nil, nil)), nil
}
