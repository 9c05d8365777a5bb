package feedback

import (
	"context"
	"log/slog"
	"strings"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	feedbackDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/feedback"
)

type RepositoryAPI interface {
	Insert(ctx context.Context, record *feedbackDatamodel.Feedback) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Submit(ctx context.Context, ownerID string, dto SubmitFeedbackDTO) (*Feedback, error) {
	message := strings.TrimSpace(dto.Message)
	if err := validation.ValidateMessage(message); err != nil {
		return nil, err
	}

	f := &Feedback{OwnerID: ownerID, Message: message}
	row := ToDataModel(f)
	if err := s.repo.Insert(ctx, row); err != nil {
		s.logger.Error("failed to store feedback", "owner_id", ownerID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}
	f.ID = row.ID
	f.CreatedAt = row.CreatedAt

	s.logger.Info("feedback received", "feedback_id", f.ID, "length", len(message))
	return f, nil
}
