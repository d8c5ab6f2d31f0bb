package combat

import (
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

const maxConditions = 20

// AddInput describes a combatant joining the fight. An absent CurrentHP
// starts the combatant at MaxHP; an explicit 0 adds it downed.
type AddInput struct {
	Name       string               `json:"name"`
	Initiative int                  `json:"initiative"`
	CurrentHP  optional.Option[int] `json:"currentHp"`
	MaxHP      int                  `json:"maxHp"`
	IsPC       bool                 `json:"isPC"`
	Conditions []string             `json:"conditions"`
}

// HP returns the starting hit points.
func (i AddInput) HP() int {
	return i.CurrentHP.OrElse(i.MaxHP)
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.MaxHP < 0 {
		errs = append(errs, domain.FieldError{Field: "maxHp", Message: "must not be negative"})
	}
	if hp, ok := i.CurrentHP.Get(); ok && hp < 0 {
		errs = append(errs, domain.FieldError{Field: "currentHp", Message: "must not be negative"})
	}
	if len(i.Conditions) > maxConditions {
		errs = append(errs, domain.FieldError{Field: "conditions", Message: "max 20 conditions"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SaveInput names the current fight for storage.
type SaveInput struct {
	CampaignID string `json:"campaignId"`
	Name       string `json:"name"`
}

func validateAmount(amount int) error {
	if amount < 0 {
		return domain.NewValidationError("amount", "must not be negative")
	}
	return nil
}
