package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Bryan-Quispe/Computer-Parts/internal/model"
	"github.com/Bryan-Quispe/Computer-Parts/platform/logger"
)

type PartRepository interface {
	List(ctx context.Context) ([]*model.Part, error)
	PartByGeneratedID(ctx context.Context, id model.GeneratedID) (*model.Part, error)
	PartByCustomID(ctx context.Context, id model.CustomID) (*model.Part, error)
	Create(ctx context.Context, p *model.Part) (model.GeneratedID, error)
	UpdateByCustomID(ctx context.Context, id model.CustomID, upd model.PartUpdate) (int64, error)
	DeleteByCustomID(ctx context.Context, id model.CustomID) (int64, error)
	UpdateByGeneratedID(ctx context.Context, id model.GeneratedID, p *model.Part) (int64, error)
	DeleteByGeneratedID(ctx context.Context, id model.GeneratedID) (int64, error)
}

type service struct {
	repo           PartRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPartService(
	repo PartRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) ListParts(ctx context.Context) ([]*model.Part, error) {
	const op = "parts.service.ListParts"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Debug(ctx, "parts listed", logger.Int("count", len(out)))
	return out, nil
}

func (s *service) PartByGeneratedID(ctx context.Context, id model.GeneratedID) (*model.Part, error) {
	const op = "parts.service.PartByGeneratedID"
	log := logger.With(
		logger.String("generated_id", id.String()),
	)

	if id.IsZero() {
		log.Error(ctx, "validation: zero generated id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.PartByGeneratedID(ctx, id)
	if err != nil {
		logUnexpected(ctx, log, "repository part by generated id", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *service) PartByCustomID(ctx context.Context, id model.CustomID) (*model.Part, error) {
	const op = "parts.service.PartByCustomID"
	log := logger.With(
		logger.String("part_id", id.String()),
	)

	if err := validateCustomID(id); err != nil {
		log.Error(ctx, "validation: empty part id")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.PartByCustomID(ctx, id)
	if err != nil {
		logUnexpected(ctx, log, "repository part by custom id", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, p model.Part) (model.GeneratedID, error) {
	const op = "parts.service.Create"
	log := logger.With(
		logger.String("part_id", p.ID.String()),
		logger.Int64("stock", p.Stock),
	)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, &p)
	if err != nil {
		logUnexpected(ctx, log, "repository create part", err)
		return model.GeneratedID{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "part created", logger.String("generated_id", id.String()))
	return id, nil
}

func (s *service) UpdateByCustomID(ctx context.Context, id model.CustomID, upd model.PartUpdate) (int64, error) {
	const op = "parts.service.UpdateByCustomID"
	log := logger.With(
		logger.String("part_id", id.String()),
	)

	if err := validateCustomID(id); err != nil {
		log.Error(ctx, "validation: empty part id")
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	n, err := s.repo.UpdateByCustomID(ctx, id, upd)
	if err != nil {
		logUnexpected(ctx, log, "repository update by custom id", err)
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (s *service) DeleteByCustomID(ctx context.Context, id model.CustomID) (int64, error) {
	const op = "parts.service.DeleteByCustomID"
	log := logger.With(
		logger.String("part_id", id.String()),
	)

	if err := validateCustomID(id); err != nil {
		log.Error(ctx, "validation: empty part id")
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	n, err := s.repo.DeleteByCustomID(ctx, id)
	if err != nil {
		logUnexpected(ctx, log, "repository delete by custom id", err)
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (s *service) UpdateByGeneratedID(ctx context.Context, id model.GeneratedID, p model.Part) (int64, error) {
	const op = "parts.service.UpdateByGeneratedID"
	log := logger.With(
		logger.String("generated_id", id.String()),
	)

	if id.IsZero() {
		log.Error(ctx, "validation: zero generated id")
		return 0, fmt.Errorf("%s: %w", op, model.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	n, err := s.repo.UpdateByGeneratedID(ctx, id, &p)
	if err != nil {
		logUnexpected(ctx, log, "repository update by generated id", err)
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (s *service) DeleteByGeneratedID(ctx context.Context, id model.GeneratedID) (int64, error) {
	const op = "parts.service.DeleteByGeneratedID"
	log := logger.With(
		logger.String("generated_id", id.String()),
	)

	if id.IsZero() {
		log.Error(ctx, "validation: zero generated id")
		return 0, fmt.Errorf("%s: %w", op, model.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	n, err := s.repo.DeleteByGeneratedID(ctx, id)
	if err != nil {
		logUnexpected(ctx, log, "repository delete by generated id", err)
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func validateCustomID(id model.CustomID) error {
	if strings.TrimSpace(id.String()) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("part id must be non-empty"))
	}
	return nil
}

type fieldLogger interface {
	Warn(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

// Client-caused outcomes are expected and logged at warn level.
func logUnexpected(ctx context.Context, log fieldLogger, msg string, err error) {
	switch {
	case errors.Is(err, model.ErrPartNotFound),
		errors.Is(err, model.ErrDuplicatePartID),
		errors.Is(err, model.ErrNegativeStock),
		errors.Is(err, model.ErrInvalidArgument):
		log.Warn(ctx, msg, logger.ErrorF(err))
	default:
		log.Error(ctx, msg, logger.ErrorF(err))
	}
}
