package usecase

import (
	"context"
	"fmt"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/core/validation"
)

// ValidationService runs the pre-flight validators over a stored campaign
// set. It implements port.ValidationUseCase.
type ValidationService struct {
	repo      port.CampaignSetRepository
	validator *validation.Validator
}

// NewValidationService creates a ValidationService. A nil validator uses the
// built-in rules.
func NewValidationService(repo port.CampaignSetRepository, v *validation.Validator) *ValidationService {
	if v == nil {
		v = validation.New()
	}
	return &ValidationService{repo: repo, validator: v}
}

// ValidateCampaignSet returns every validation problem of the set. An empty,
// non-nil slice means the set is valid.
func (s *ValidationService) ValidateCampaignSet(ctx context.Context, campaignSetID string) ([]domain.ValidationError, error) {
	set, err := s.repo.GetCampaignSetWithRelations(ctx, campaignSetID)
	if err != nil {
		return nil, fmt.Errorf("load campaign set %s: %w", campaignSetID, err)
	}
	if set == nil {
		return nil, port.NewCampaignSetNotFound(campaignSetID)
	}
	errs := s.validator.ValidateCampaignSet(*set)
	if errs == nil {
		errs = []domain.ValidationError{}
	}
	return errs, nil
}
