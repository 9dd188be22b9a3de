package service

import (
	"context"
	"errors"
	"sync"

	courtserrors "courtly/internal/courts/errors"
	"courtly/internal/courts/repository"
	"courtly/internal/courts/validator"
	"courtly/pkg/config"
	apperrors "courtly/pkg/errors"
	"courtly/pkg/model"
	"courtly/pkg/sanitizer"
)

type CourtService interface {
	Create(ctx context.Context, court *model.Court) error
	GetByID(ctx context.Context, id string) (*model.Court, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Court, int64, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*model.Court, error)
	Update(ctx context.Context, id string, updates *model.CourtUpdate) (*model.Court, error)
	Delete(ctx context.Context, id string) error

	// Directory lookups used by the booking workflow.
	ResolveCourt(ctx context.Context, courtID string) (*model.Court, error)
	CourtIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
}

type courtService struct {
	repo      repository.CourtRepository
	validator *validator.CourtValidator
	cfg       *config.Config
}

func NewCourtService(repo repository.CourtRepository, validator *validator.CourtValidator, cfg *config.Config) CourtService {
	return &courtService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *courtService) Create(ctx context.Context, court *model.Court) error {
	s.applyDefaults(court)
	s.sanitize(court)
	if err := s.validate(court); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, court); err != nil {
		s.cfg.Log.Error("Failed to create court", "error", err)
		return apperrors.Internal("Failed to create court", err)
	}

	s.cfg.Log.Info("Court created successfully",
		"id", court.ID,
		"owner_id", court.OwnerID,
		"name", court.Name,
	)
	return nil
}

func (s *courtService) GetByID(ctx context.Context, id string) (*model.Court, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Court ID cannot be empty")
	}

	court, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Court", id)
		}
		if errors.Is(err, courtserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid court ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve court", err)
	}

	return court, nil
}

func (s *courtService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Court, int64, error) {
	var count int64
	var courts []*model.Court
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count courts", "error", errCount)
			errCount = apperrors.Internal("Failed to count courts", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		courts, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list courts", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve courts", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return courts, count, nil
}

func (s *courtService) GetByOwner(ctx context.Context, ownerID string) ([]*model.Court, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidInput("Owner ID cannot be empty")
	}

	courts, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.cfg.Log.Error("Failed to list courts by owner", "owner_id", ownerID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve courts", err)
	}

	return courts, nil
}

func (s *courtService) Update(ctx context.Context, id string, updates *model.CourtUpdate) (*model.Court, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Court update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeCourtUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return nil, err
	}

	if _, err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, courtserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Court", id)
		}
		s.cfg.Log.Error("Failed to update court", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update court", err)
	}

	s.cfg.Log.Info("Court updated successfully", "id", id)
	return merged, nil
}

func (s *courtService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Court ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, courtserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Court", id)
		}
		if errors.Is(err, courtserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid court ID format")
		}
		return apperrors.Internal("Failed to delete court", err)
	}

	s.cfg.Log.Info("Court deleted successfully", "id", id)
	return nil
}

func (s *courtService) ResolveCourt(ctx context.Context, courtID string) (*model.Court, error) {
	return s.GetByID(ctx, courtID)
}

func (s *courtService) CourtIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	courts, err := s.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(courts))
	for _, c := range courts {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

// --- Helpers ---

func (s *courtService) applyDefaults(c *model.Court) {
	if c.OpeningTime == "" {
		c.OpeningTime = s.cfg.DefaultOpeningTime
	}
	if c.ClosingTime == "" {
		c.ClosingTime = s.cfg.DefaultClosingTime
	}
}

func (s *courtService) sanitize(c *model.Court) {
	c.Name = sanitizer.NormalizeName(c.Name)
	c.Sport = sanitizer.NormalizeLabel(c.Sport)
}

func (s *courtService) mergeCourtUpdates(existing *model.Court, updates *model.CourtUpdate) *model.Court {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Sport != "" {
		merged.Sport = updates.Sport
	}
	if updates.HourlyRate != nil {
		merged.HourlyRate = *updates.HourlyRate
	}
	if updates.OpeningTime != "" {
		merged.OpeningTime = updates.OpeningTime
	}
	if updates.ClosingTime != "" {
		merged.ClosingTime = updates.ClosingTime
	}

	return &merged
}

func (s *courtService) validate(court *model.Court) error {
	if err := s.validator.Validate(court); err != nil {
		s.cfg.Log.Warn("Court validation failed", "error", err)
		return apperrors.Validation("Court validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}
