package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nextsite-backend/domain/core/entities"
	"nextsite-backend/domain/core/validators"
	domainservices "nextsite-backend/domain/services"
	apperrors "nextsite-backend/pkg/errors"
)

// GeneratorService is the application boundary around the generation core.
// The core itself is total; this service adds the only failure path (brief
// validation) plus logging. No I/O happens during assembly.
type GeneratorService struct {
	assembler *domainservices.SpecAssembler
	validator *validators.BriefValidator
	logger    *zap.Logger
}

// NewGeneratorService creates a new generator service
func NewGeneratorService(
	assembler *domainservices.SpecAssembler,
	validator *validators.BriefValidator,
	logger *zap.Logger,
) *GeneratorService {
	return &GeneratorService{
		assembler: assembler,
		validator: validator,
		logger:    logger,
	}
}

// Generate validates the brief and assembles its site specification.
func (s *GeneratorService) Generate(ctx context.Context, brief entities.ClientBrief) (entities.SiteSpecification, error) {
	if err := s.validator.Validate(brief); err != nil {
		return entities.SiteSpecification{}, apperrors.NewValidationError(err.Error())
	}

	spec := s.assembler.Assemble(brief)

	s.logger.Info("site specification generated",
		zap.String("generation_id", uuid.NewString()),
		zap.String("site_id", spec.Meta.SiteID),
		zap.String("archetype", spec.Layout.Archetype),
		zap.String("personality", spec.Brand.Personality),
		zap.Int("seed", spec.Meta.Seed),
	)

	return spec, nil
}
