package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"kmis/types"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrBadTransition = errors.New("status transition not allowed")
)

// Storer is the portal state consumed by the API and assist layers.
type Storer interface {
	DocumentSource

	AddDocuments(docs []types.Document) []types.Document
	UpdateDocument(id string, patch types.DocumentPatch) (types.Document, error)
	SetDocumentStatus(id string, next types.DocumentStatus) (types.Document, error)

	Taxonomy() types.Taxonomy
	AddTaxonomyValue(axis, value string) error
	RemoveTaxonomyValue(axis, value string) error
	RenameTaxonomyValue(axis, oldValue, newValue string) error

	EvidenceUpdates() []types.EvidenceUpdate
	EvidenceForPage(pageType types.PageType, pageKey string) []types.EvidenceUpdate
	AddEvidenceUpdate(update types.EvidenceUpdate) types.EvidenceUpdate
	DeleteEvidenceUpdate(id string) error

	CreateSession(title string) types.ChatSession
	AppendMessage(sessionID string, msg types.ChatMessage) error
	Session(id string) (types.ChatSession, bool)
	DeleteSession(id string) error
	Sessions() []types.ChatSession

	Users() []types.UserAccount
	Login(userID string) (types.UserAccount, error)
	Logout()
	CurrentUser() (types.UserAccount, bool)
	Role() types.Role

	Events() []types.Event

	AISettings() types.AISettings
	SetAISettings(patch types.AISettingsParams) types.AISettings

	Subscribe(fn func()) (unsubscribe func())
	Reset()
}

// DocumentSource is the read surface the assist layer grounds on.
type DocumentSource interface {
	Documents() []types.Document
	Document(id string) (types.Document, bool)
}

// State is the single persisted blob. The layout is versionless; the
// load path fills in defaults for keys older blobs do not carry.
type State struct {
	Documents       []types.Document       `json:"documents"`
	EvidenceUpdates []types.EvidenceUpdate `json:"evidenceUpdates"`
	Taxonomy        types.Taxonomy         `json:"taxonomy"`
	Events          []types.Event          `json:"events"`
	Users           []types.UserAccount    `json:"users"`
	AISettings      types.AISettings       `json:"aiSettings"`
	ChatSessions    []types.ChatSession    `json:"chatSessions"`
	Role            types.Role             `json:"role"`
	CurrentUserID   string                 `json:"currentUserId"`
}

// rawState mirrors State with optional top-level keys so that older
// blobs can be detected field by field.
type rawState struct {
	Documents       *[]types.Document       `json:"documents"`
	EvidenceUpdates *[]types.EvidenceUpdate `json:"evidenceUpdates"`
	Taxonomy        *types.Taxonomy         `json:"taxonomy"`
	Events          *[]types.Event          `json:"events"`
	Users           *[]types.UserAccount    `json:"users"`
	AISettings      *types.AISettings       `json:"aiSettings"`
	ChatSessions    *[]types.ChatSession    `json:"chatSessions"`
	Role            *types.Role             `json:"role"`
	CurrentUserID   *string                 `json:"currentUserId"`
}

// FileStore keeps the whole portal state in memory and writes it to a
// single JSON file after every mutation. Path may be empty, in which
// case the state is memory-only (tests).
type FileStore struct {
	mu        sync.RWMutex
	path      string
	state     State
	defaults  func() State
	listeners map[int]func()
	nextID    int
	now       func() time.Time
}

// Option tweaks FileStore construction.
type Option func(*FileStore)

// WithClock replaces the timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(s *FileStore) { s.now = fn }
}

// NewFileStore builds a store over the blob at path. The defaults
// function produces a fresh default State, used when the file is
// absent and for keys it does not carry.
func NewFileStore(path string, defaults func() State, opts ...Option) *FileStore {
	s := &FileStore{
		path:      path,
		defaults:  defaults,
		listeners: make(map[int]func()),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.load()
	return s
}

// load reads the persisted blob, merging defaults over any missing
// top-level keys. A missing or unreadable file yields the defaults.
func (s *FileStore) load() State {
	st := s.defaults()
	if s.path == "" {
		return st
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[STORE] unreadable state file %s: %v, using defaults", s.path, err)
		}
		return st
	}

	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("[STORE] corrupt state file %s: %v, using defaults", s.path, err)
		return st
	}

	if raw.Documents != nil {
		st.Documents = *raw.Documents
	}
	if raw.EvidenceUpdates != nil {
		st.EvidenceUpdates = *raw.EvidenceUpdates
	}
	if raw.Taxonomy != nil {
		st.Taxonomy = *raw.Taxonomy
	}
	if raw.Events != nil {
		st.Events = *raw.Events
	}
	if raw.Users != nil {
		st.Users = *raw.Users
	}
	if raw.AISettings != nil {
		st.AISettings = *raw.AISettings
	}
	if raw.ChatSessions != nil {
		st.ChatSessions = *raw.ChatSessions
	}
	if raw.Role != nil {
		st.Role = *raw.Role
	}
	if raw.CurrentUserID != nil {
		st.CurrentUserID = *raw.CurrentUserID
	}
	return st
}

// save and notify run with the write lock held by the caller.
func (s *FileStore) save() {
	if s.path == "" {
		return
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		log.Printf("[STORE] marshal state: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		log.Printf("[STORE] write state file %s: %v", s.path, err)
	}
}

func (s *FileStore) notify() {
	s.save()
	for _, fn := range s.listeners {
		fn()
	}
}

func (s *FileStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *FileStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.defaults()
	s.notify()
}

// Documents

func (s *FileStore) Documents() []types.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Document, len(s.state.Documents))
	copy(out, s.state.Documents)
	return out
}

func (s *FileStore) Document(id string) (types.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.state.Documents {
		if d.ID == id {
			return d, true
		}
	}
	return types.Document{}, false
}

func (s *FileStore) AddDocuments(docs []types.Document) []types.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	added := make([]types.Document, 0, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			d.ID = "doc-" + uuid.NewString()
		}
		if d.Status == "" {
			d.Status = types.StatusDraft
		}
		if d.Version == "" {
			d.Version = "1.0"
		}
		d.CreatedAt = now
		d.UpdatedAt = now
		added = append(added, d)
	}
	s.state.Documents = append(s.state.Documents, added...)
	s.notify()
	return added
}

func (s *FileStore) UpdateDocument(id string, patch types.DocumentPatch) (types.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.state.Documents {
		if d.ID != id {
			continue
		}
		if patch.Title != nil {
			d.Title = *patch.Title
		}
		if patch.Filename != nil {
			d.Filename = *patch.Filename
		}
		if patch.SizeMB != nil {
			d.SizeMB = *patch.SizeMB
		}
		if patch.Version != nil {
			d.Version = *patch.Version
		}
		if patch.Metadata != nil {
			d.Metadata = *patch.Metadata
		}
		if patch.ExtractedText != nil {
			d.ExtractedText = *patch.ExtractedText
		}
		d.UpdatedAt = s.now()
		s.state.Documents[i] = d
		s.notify()
		return d, nil
	}
	return types.Document{}, ErrNotFound
}

// SetDocumentStatus enforces the publishing workflow: draft moves to
// validated, validated to published, and published may be demoted back
// to validated. Setting the current status again is a no-op.
func (s *FileStore) SetDocumentStatus(id string, next types.DocumentStatus) (types.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.state.Documents {
		if d.ID != id {
			continue
		}
		if d.Status == next {
			return d, nil
		}
		if !transitionAllowed(d.Status, next) {
			return types.Document{}, fmt.Errorf("%w: %s -> %s", ErrBadTransition, d.Status, next)
		}
		d.Status = next
		d.UpdatedAt = s.now()
		s.state.Documents[i] = d
		s.notify()
		return d, nil
	}
	return types.Document{}, ErrNotFound
}

func transitionAllowed(from, to types.DocumentStatus) bool {
	switch {
	case from == types.StatusDraft && to == types.StatusValidated:
		return true
	case from == types.StatusValidated && to == types.StatusPublished:
		return true
	case from == types.StatusPublished && to == types.StatusValidated:
		return true
	}
	return false
}

// Taxonomy

func (s *FileStore) Taxonomy() types.Taxonomy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Taxonomy
}

func (s *FileStore) axisValues(axis string) (*[]string, error) {
	switch axis {
	case "countries":
		return &s.state.Taxonomy.Countries, nil
	case "themes":
		return &s.state.Taxonomy.Themes, nil
	case "reportingPeriods":
		return &s.state.Taxonomy.ReportingPeriods, nil
	case "documentTypes":
		return &s.state.Taxonomy.DocumentTypes, nil
	case "projects":
		return &s.state.Taxonomy.Projects, nil
	case "contributors":
		return &s.state.Taxonomy.Contributors, nil
	}
	return nil, fmt.Errorf("unknown taxonomy axis %q", axis)
}

func (s *FileStore) AddTaxonomyValue(axis, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.axisValues(axis)
	if err != nil {
		return err
	}
	for _, v := range *values {
		if v == value {
			return nil
		}
	}
	*values = append(*values, value)
	s.notify()
	return nil
}

func (s *FileStore) RemoveTaxonomyValue(axis, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.axisValues(axis)
	if err != nil {
		return err
	}
	kept := (*values)[:0]
	for _, v := range *values {
		if v != value {
			kept = append(kept, v)
		}
	}
	*values = kept
	s.notify()
	return nil
}

// RenameTaxonomyValue also rewrites document metadata referencing the
// old value so filters keep working after the rename.
func (s *FileStore) RenameTaxonomyValue(axis, oldValue, newValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.axisValues(axis)
	if err != nil {
		return err
	}
	found := false
	for i, v := range *values {
		if v == oldValue {
			(*values)[i] = newValue
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}

	for i := range s.state.Documents {
		m := &s.state.Documents[i].Metadata
		switch axis {
		case "countries":
			renameAll(m.Countries, oldValue, newValue)
		case "themes":
			renameAll(m.Themes, oldValue, newValue)
		case "reportingPeriods":
			renameAll(m.ReportingPeriods, oldValue, newValue)
		case "documentTypes":
			if m.DocumentType == oldValue {
				m.DocumentType = newValue
			}
		case "projects":
			if m.Project == oldValue {
				m.Project = newValue
			}
		case "contributors":
			if m.Contributor == oldValue {
				m.Contributor = newValue
			}
		}
	}
	s.notify()
	return nil
}

func renameAll(values []string, oldValue, newValue string) {
	for i, v := range values {
		if v == oldValue {
			values[i] = newValue
		}
	}
}

// Evidence

func (s *FileStore) EvidenceUpdates() []types.EvidenceUpdate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.EvidenceUpdate, len(s.state.EvidenceUpdates))
	copy(out, s.state.EvidenceUpdates)
	return out
}

func (s *FileStore) EvidenceForPage(pageType types.PageType, pageKey string) []types.EvidenceUpdate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []types.EvidenceUpdate
	for _, e := range s.state.EvidenceUpdates {
		if e.PageType == pageType && e.PageKey == pageKey {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

func (s *FileStore) AddEvidenceUpdate(update types.EvidenceUpdate) types.EvidenceUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.ID == "" {
		update.ID = "ev-" + uuid.NewString()
	}
	s.state.EvidenceUpdates = append([]types.EvidenceUpdate{update}, s.state.EvidenceUpdates...)
	s.notify()
	return update
}

func (s *FileStore) DeleteEvidenceUpdate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.EvidenceUpdates[:0]
	found := false
	for _, e := range s.state.EvidenceUpdates {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrNotFound
	}
	s.state.EvidenceUpdates = kept
	s.notify()
	return nil
}

// Chat sessions

func (s *FileStore) CreateSession(title string) types.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	session := types.ChatSession{
		ID:        "chat-" + uuid.NewString(),
		Title:     title,
		Messages:  []types.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.state.ChatSessions = append(s.state.ChatSessions, session)
	s.notify()
	return session
}

func (s *FileStore) AppendMessage(sessionID string, msg types.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.ChatSessions {
		if s.state.ChatSessions[i].ID != sessionID {
			continue
		}
		s.state.ChatSessions[i].Messages = append(s.state.ChatSessions[i].Messages, msg)
		s.state.ChatSessions[i].UpdatedAt = s.now()
		s.notify()
		return nil
	}
	return ErrNotFound
}

func (s *FileStore) Session(id string) (types.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.state.ChatSessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return types.ChatSession{}, false
}

func (s *FileStore) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.ChatSessions[:0]
	found := false
	for _, sess := range s.state.ChatSessions {
		if sess.ID == id {
			found = true
			continue
		}
		kept = append(kept, sess)
	}
	if !found {
		return ErrNotFound
	}
	s.state.ChatSessions = kept
	s.notify()
	return nil
}

func (s *FileStore) Sessions() []types.ChatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.ChatSession, len(s.state.ChatSessions))
	copy(out, s.state.ChatSessions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Users and auth

func (s *FileStore) Users() []types.UserAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.UserAccount, len(s.state.Users))
	copy(out, s.state.Users)
	return out
}

func (s *FileStore) Login(userID string) (types.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.ID == userID {
			s.state.CurrentUserID = u.ID
			s.state.Role = u.Role
			s.notify()
			return u, nil
		}
	}
	return types.UserAccount{}, ErrNotFound
}

func (s *FileStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentUserID = ""
	s.state.Role = types.RoleViewer
	s.notify()
}

func (s *FileStore) CurrentUser() (types.UserAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.CurrentUserID == "" {
		return types.UserAccount{}, false
	}
	for _, u := range s.state.Users {
		if u.ID == s.state.CurrentUserID {
			return u, true
		}
	}
	return types.UserAccount{}, false
}

func (s *FileStore) Role() types.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Role
}

// Events

func (s *FileStore) Events() []types.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Event, len(s.state.Events))
	copy(out, s.state.Events)
	return out
}

// AI settings

func (s *FileStore) AISettings() types.AISettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AISettings
}

func (s *FileStore) SetAISettings(patch types.AISettingsParams) types.AISettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Endpoint != "" {
		s.state.AISettings.Endpoint = patch.Endpoint
	}
	if patch.APIKey != "" {
		s.state.AISettings.APIKey = patch.APIKey
	}
	if patch.Model != "" {
		s.state.AISettings.Model = patch.Model
	}
	if patch.SystemPrompt != "" {
		s.state.AISettings.SystemPrompt = patch.SystemPrompt
	}
	s.notify()
	return s.state.AISettings
}
