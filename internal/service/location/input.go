package location

import (
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

const (
	maxNameLen = 200
	maxTextLen = 10000
)

// CreateInput holds the parameters for creating a location.
type CreateInput struct {
	CampaignID   string `json:"campaignId"`
	Name         string `json:"name"`
	Visited      bool   `json:"visited"`
	Region       string `json:"region"`
	LocationType string `json:"locationType"`
	Description  string `json:"description"`
	Notes        string `json:"notes"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CampaignID == "" {
		errs = append(errs, domain.FieldError{Field: "campaignId", Message: "required"})
	}
	errs = checkName(errs, i.Name)
	errs = checkText(errs, "description", i.Description)
	errs = checkText(errs, "notes", i.Notes)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a location.
type UpdateInput struct {
	ID    string
	Patch domain.LocationPatch
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Patch == (domain.LocationPatch{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if name, ok := i.Patch.Name.Get(); ok {
		errs = checkName(errs, name)
	}
	if d, ok := i.Patch.Description.Get(); ok {
		errs = checkText(errs, "description", d)
	}
	if n, ok := i.Patch.Notes.Get(); ok {
		errs = checkText(errs, "notes", n)
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

func checkText(errs []domain.FieldError, field, v string) []domain.FieldError {
	if len(v) > maxTextLen {
		return append(errs, domain.FieldError{Field: field, Message: "max 10000 characters"})
	}
	return errs
}
