package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/NishantGawd/sj-fitness/internal/model"
	"github.com/NishantGawd/sj-fitness/internal/repository"
)

var ErrContactRequired = errors.New("email or phone required")

const trialValidity = 24 * time.Hour

type TrialService interface {
	IssueTrial(ctx context.Context, req *model.TrialRequest) (*model.TrialPass, error)
}

type DefaultTrialService struct {
	userRepo  repository.UserRepository
	trialRepo repository.TrialRepository
}

func NewTrialService(userRepo repository.UserRepository, trialRepo repository.TrialRepository) TrialService {
	return &DefaultTrialService{
		userRepo:  userRepo,
		trialRepo: trialRepo,
	}
}

// IssueTrial grants a 24h pass, at most one live pass per email: a
// re-request while an unexpired unused pass exists returns that pass
// unchanged. After expiry a fresh pass is issued.
func (s *DefaultTrialService) IssueTrial(ctx context.Context, req *model.TrialRequest) (*model.TrialPass, error) {
	if req.Email == "" && req.Phone == "" {
		return nil, ErrContactRequired
	}

	if err := s.userRepo.Upsert(ctx, model.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}); err != nil {
		return nil, err
	}

	now := time.Now()

	existing, err := s.trialRepo.FindActive(ctx, req.Email, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("Returning existing trial pass %s for %s", existing.ID, req.Email)
		return existing, nil
	}

	pass := &model.TrialPass{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		IssuedAt:  now,
		ExpiresAt: now.Add(trialValidity),
	}

	if err := s.trialRepo.Create(ctx, pass); err != nil {
		return nil, err
	}

	return pass, nil
}
