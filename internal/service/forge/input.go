package forge

import (
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

const (
	maxFieldLen  = 500
	maxPromptLen = 4000
	maxHistory   = 50
)

// BackstoryInput describes the character a backstory is written for.
type BackstoryInput struct {
	Name       string `json:"name"`
	Race       string `json:"race"`
	Class      string `json:"class"`
	Background string `json:"background"`
	Tone       string `json:"tone"`
	Notes      string `json:"notes"`
}

// Validate checks all fields and collects all errors.
func (i BackstoryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	for field, v := range map[string]string{
		"name": i.Name, "race": i.Race, "class": i.Class, "background": i.Background, "tone": i.Tone,
	} {
		if len(v) > maxFieldLen {
			errs = append(errs, domain.FieldError{Field: field, Message: "max 500 characters"})
		}
	}
	if len(i.Notes) > maxPromptLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// NPCInput describes the NPC to invent.
type NPCInput struct {
	Concept    string            `json:"concept"`
	Importance domain.Importance `json:"importance"`
	Setting    string            `json:"setting"`
}

// Validate checks all fields and collects all errors.
func (i NPCInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Concept) == "" {
		errs = append(errs, domain.FieldError{Field: "concept", Message: "required"})
	}
	if len(i.Concept) > maxPromptLen || len(i.Setting) > maxPromptLen {
		errs = append(errs, domain.FieldError{Field: "concept", Message: "max 4000 characters"})
	}
	if i.Importance != "" && !i.Importance.IsValid() {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be minor, major or key"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LootInput describes the treasure hoard to roll.
type LootInput struct {
	PartyLevel int    `json:"partyLevel"`
	Encounter  string `json:"encounter"`
	Count      int    `json:"count"`
}

// Validate checks all fields and collects all errors.
func (i LootInput) Validate() error {
	var errs []domain.FieldError

	if i.PartyLevel < 1 || i.PartyLevel > 20 {
		errs = append(errs, domain.FieldError{Field: "partyLevel", Message: "must be 1..20"})
	}
	if i.Count < 0 || i.Count > 20 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be 0..20"})
	}
	if len(i.Encounter) > maxPromptLen {
		errs = append(errs, domain.FieldError{Field: "encounter", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChatInput is one user turn of the DM assistant. With a ConversationID the
// history is loaded from and the exchange saved to that conversation;
// otherwise History is used as given.
type ChatInput struct {
	ConversationID string               `json:"conversationId"`
	History        []domain.ChatMessage `json:"history"`
	Message        string               `json:"message"`
	CampaignName   string               `json:"campaignName"`
}

// Validate checks all fields and collects all errors.
func (i ChatInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if len(i.Message) > maxPromptLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 4000 characters"})
	}
	if len(i.History) > maxHistory {
		errs = append(errs, domain.FieldError{Field: "history", Message: "max 50 messages"})
	}
	for _, m := range i.History {
		if !m.Role.IsValid() {
			errs = append(errs, domain.FieldError{Field: "history", Message: "role must be user or assistant"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
