package conversation

import (
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

const (
	maxTitleLen   = 200
	maxContentLen = 50000
)

// CreateInput holds the parameters for starting a conversation.
type CreateInput struct {
	CampaignID string `json:"campaignId"`
	Title      string `json:"title"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CampaignID == "" {
		errs = append(errs, domain.FieldError{Field: "campaignId", Message: "required"})
	}
	errs = checkTitle(errs, i.Title)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameInput holds the parameters for renaming a conversation.
type RenameInput struct {
	ID    string `json:"-"`
	Title string `json:"title"`
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = checkTitle(errs, i.Title)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AppendMessageInput holds one message to add to a conversation.
type AppendMessageInput struct {
	ConversationID string          `json:"-"`
	Role           domain.ChatRole `json:"role"`
	Content        string          `json:"content"`
}

// Validate checks all fields and collects all errors.
func (i AppendMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.ConversationID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be user or assistant"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 50000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}
