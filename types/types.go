package types

import (
	"time"
)

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleAdmin    Role = "admin"
	RoleExternal Role = "external"
)

type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusValidated DocumentStatus = "validated"
	StatusPublished DocumentStatus = "published"
)

// DocumentMetadata carries the taxonomy tags a document is filed under.
type DocumentMetadata struct {
	Countries        []string `json:"countries"`
	Themes           []string `json:"themes"`
	ReportingPeriods []string `json:"reportingPeriods"`
	DocumentType     string   `json:"documentType"`
	Project          string   `json:"project"`
	Contributor      string   `json:"contributor"`
}

type Document struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Filename      string           `json:"filename"`
	SizeMB        float64          `json:"sizeMb"`
	Version       string           `json:"version"`
	Status        DocumentStatus   `json:"status"`
	Metadata      DocumentMetadata `json:"metadata"`
	ExtractedText string           `json:"extractedText"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// DocumentPatch holds partial document fields for merge updates.
// Nil fields are left untouched.
type DocumentPatch struct {
	Title         *string           `json:"title,omitempty"`
	Filename      *string           `json:"filename,omitempty"`
	SizeMB        *float64          `json:"sizeMb,omitempty"`
	Version       *string           `json:"version,omitempty"`
	Metadata      *DocumentMetadata `json:"metadata,omitempty"`
	ExtractedText *string           `json:"extractedText,omitempty"`
}

// Scope narrows which documents ground a question. Empty slices mean
// no constraint on that axis. DocumentIDs pins explicit documents.
type Scope struct {
	Countries        []string `json:"countries"`
	Themes           []string `json:"themes"`
	ReportingPeriods []string `json:"reportingPeriods"`
	Projects         []string `json:"projects"`
	DocumentIDs      []string `json:"documentIds"`
}

// Source ties one claim of an answer back to a document.
type Source struct {
	DocumentID     string `json:"documentId"`
	Snippet        string `json:"snippet"`
	ReferenceLabel string `json:"referenceLabel"`
}

type Answer struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	Prompt     string    `json:"prompt"`
	Scope      Scope     `json:"scope"`
	AnswerText string    `json:"answerText"`
	Bullets    []string  `json:"bullets"`
	Sources    []Source  `json:"sources"`
}

type MessageRole string

const (
	MessageUser      MessageRole = "user"
	MessageAssistant MessageRole = "assistant"
	MessageError     MessageRole = "error"
)

// ChatMessage is immutable once appended to a session. Answer is set
// only for assistant messages.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Text      string      `json:"text"`
	Answer    *Answer     `json:"answer,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type ChatSession struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type Taxonomy struct {
	Countries        []string `json:"countries"`
	Themes           []string `json:"themes"`
	ReportingPeriods []string `json:"reportingPeriods"`
	DocumentTypes    []string `json:"documentTypes"`
	Projects         []string `json:"projects"`
	Contributors     []string `json:"contributors"`
}

type UserAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Initials string `json:"initials"`
}

type PageType string

const (
	PageCountry PageType = "country"
	PageTheme   PageType = "theme"
)

// EvidenceUpdate is a short curated finding pinned to a country or
// theme page, with links back to its source documents.
type EvidenceUpdate struct {
	ID                string   `json:"id"`
	PageType          PageType `json:"pageType"`
	PageKey           string   `json:"pageKey"`
	Date              string   `json:"date"`
	Title             string   `json:"title"`
	Body              string   `json:"body"`
	Tags              []string `json:"tags"`
	SourceDocumentIDs []string `json:"sourceDocumentIds"`
}

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// AISettings configures the grounded-answer gateway. An empty APIKey
// routes questions to the offline matcher instead.
type AISettings struct {
	Endpoint     string `json:"endpoint"`
	APIKey       string `json:"apiKey"`
	Model        string `json:"model"`
	SystemPrompt string `json:"systemPrompt"`
}

// Configured reports whether the online strategy can be used.
func (s AISettings) Configured() bool {
	return s.APIKey != ""
}
