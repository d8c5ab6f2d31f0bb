package npc

import (
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

const (
	maxNameLen = 200
	maxTextLen = 10000
)

// CreateInput holds the parameters for creating an NPC.
type CreateInput struct {
	CampaignID    string                  `json:"campaignId"`
	Name          string                  `json:"name"`
	Role          string                  `json:"role"`
	Importance    domain.Importance       `json:"importance"`
	Personality   string                  `json:"personality"`
	Goals         string                  `json:"goals"`
	Relationships string                  `json:"relationships"`
	Faction       optional.Option[string] `json:"faction"`
	Location      optional.Option[string] `json:"location"`
	Race          optional.Option[string] `json:"race"`
	Class         optional.Option[string] `json:"class"`
}

// Validate checks all fields and collects all errors. An empty importance
// defaults to minor and is accepted.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CampaignID == "" {
		errs = append(errs, domain.FieldError{Field: "campaignId", Message: "required"})
	}
	errs = checkName(errs, i.Name)
	if i.Importance != "" && !i.Importance.IsValid() {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be minor, major or key"})
	}
	for field, v := range map[string]string{
		"personality":   i.Personality,
		"goals":         i.Goals,
		"relationships": i.Relationships,
	} {
		if len(v) > maxTextLen {
			errs = append(errs, domain.FieldError{Field: field, Message: "max 10000 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating an NPC.
type UpdateInput struct {
	ID    string
	Patch domain.NPCPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Patch == (domain.NPCPatch{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if name, ok := i.Patch.Name.Get(); ok {
		errs = checkName(errs, name)
	}
	if imp, ok := i.Patch.Importance.Get(); ok && !imp.IsValid() {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be minor, major or key"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}
