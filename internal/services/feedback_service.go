package services

import (
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type FeedbackService interface {
	Submit(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

type feedbackServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
	validate     *validator.Validate
	now          func() time.Time
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackServiceImpl{feedbackRepo: feedbackRepo, validate: NewValidator(), now: time.Now}
}

func (s *feedbackServiceImpl) Submit(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	feedback.ID = uuid.NewString()
	feedback.Submitted = s.now().UTC()
	if err := validateStruct(ctx, s.validate, feedback); err != nil {
		return nil, err
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *feedbackServiceImpl) List(ctx context.Context) ([]models.Feedback, error) {
	return s.feedbackRepo.FindAll(ctx)
}
