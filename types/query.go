package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Validater interface {
	Validate() map[string]string
}

func Validate(v Validater) map[string]string {
	return v.Validate()
}

func validateStruct(v any) map[string]string {
	validate := validator.New()
	if err := validate.Struct(v); err != nil {
		errs := err.(validator.ValidationErrors)
		errors := make(map[string]string)
		for _, e := range errs {
			errors[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return errors
	}
	return nil
}

// AskParams is the body of an AI question. SessionID is empty on the
// first turn of a new conversation.
type AskParams struct {
	Prompt    string `json:"prompt" validate:"required"`
	Scope     Scope  `json:"scope"`
	SessionID string `json:"sessionId"`
}

func (p *AskParams) Validate() map[string]string {
	return validateStruct(p)
}

type CreateDocumentParams struct {
	Title         string           `json:"title" validate:"required"`
	Filename      string           `json:"filename"`
	SizeMB        float64          `json:"sizeMb"`
	Metadata      DocumentMetadata `json:"metadata"`
	ExtractedText string           `json:"extractedText"`
}

func (p *CreateDocumentParams) Validate() map[string]string {
	return validateStruct(p)
}

type StatusParams struct {
	Status DocumentStatus `json:"status" validate:"required,oneof=draft validated published"`
}

func (p *StatusParams) Validate() map[string]string {
	return validateStruct(p)
}

type TaxonomyValueParams struct {
	Axis  string `json:"axis" validate:"required,oneof=countries themes reportingPeriods documentTypes projects contributors"`
	Value string `json:"value" validate:"required"`
}

func (p *TaxonomyValueParams) Validate() map[string]string {
	return validateStruct(p)
}

type TaxonomyRenameParams struct {
	Axis     string `json:"axis" validate:"required,oneof=countries themes reportingPeriods documentTypes projects contributors"`
	OldValue string `json:"oldValue" validate:"required"`
	NewValue string `json:"newValue" validate:"required"`
}

func (p *TaxonomyRenameParams) Validate() map[string]string {
	return validateStruct(p)
}

type EvidenceParams struct {
	PageType          PageType `json:"pageType" validate:"required,oneof=country theme"`
	PageKey           string   `json:"pageKey" validate:"required"`
	Date              string   `json:"date" validate:"required"`
	Title             string   `json:"title" validate:"required"`
	Body              string   `json:"body"`
	Tags              []string `json:"tags"`
	SourceDocumentIDs []string `json:"sourceDocumentIds"`
}

func (p *EvidenceParams) Validate() map[string]string {
	return validateStruct(p)
}

type LoginParams struct {
	UserID string `json:"userId" validate:"required"`
}

func (p *LoginParams) Validate() map[string]string {
	return validateStruct(p)
}

// AISettingsParams patches the gateway settings; empty fields keep
// their current value.
type AISettingsParams struct {
	Endpoint     string `json:"endpoint,omitempty"`
	APIKey       string `json:"apiKey,omitempty"`
	Model        string `json:"model,omitempty"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
}

func (p *AISettingsParams) Validate() map[string]string {
	return validateStruct(p)
}
