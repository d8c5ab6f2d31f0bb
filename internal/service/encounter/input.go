package encounter

import (
	"fmt"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

const (
	maxNameLen       = 200
	maxCombatants    = 100
	maxCombatantName = 100
)

// SaveInput holds a snapshot of a combat to store.
type SaveInput struct {
	CampaignID string             `json:"campaignId"`
	Name       string             `json:"name"`
	Combatants []domain.Combatant `json:"combatants"`
	Round      int                `json:"round"`
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if i.CampaignID == "" {
		errs = append(errs, domain.FieldError{Field: "campaignId", Message: "required"})
	}
	errs = checkName(errs, i.Name)
	if i.Round < 0 {
		errs = append(errs, domain.FieldError{Field: "round", Message: "must not be negative"})
	}
	if len(i.Combatants) > maxCombatants {
		errs = append(errs, domain.FieldError{Field: "combatants", Message: fmt.Sprintf("max %d", maxCombatants)})
	}
	for idx, c := range i.Combatants {
		field := fmt.Sprintf("combatants[%d]", idx)
		if strings.TrimSpace(c.Name) == "" || len(c.Name) > maxCombatantName {
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: "required, max 100 characters"})
		}
		if c.MaxHP < 0 || c.CurrentHP < 0 || c.CurrentHP > c.MaxHP {
			errs = append(errs, domain.FieldError{Field: field + ".currentHp", Message: "must be within 0..maxHp"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameInput holds the parameters for renaming a saved encounter.
type RenameInput struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = checkName(errs, i.Name)

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
