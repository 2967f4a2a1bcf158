package submission

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/promohive/promohive-api/internal/domain/task"
	"github.com/promohive/promohive-api/internal/domain/wallet"
	"github.com/promohive/promohive-api/internal/pkg/storage"
)

// MaxProofSize caps proof uploads at 5 MiB
const MaxProofSize = 5 << 20

// TaskRepository is the task surface submissions need
type TaskRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error)
}

// Ledger credits a user's wallet
type Ledger interface {
	Credit(ctx context.Context, userID uuid.UUID, amount float64, txType wallet.TransactionType, description, referenceType string, referenceID uuid.UUID) (*wallet.Transaction, error)
}

// Mailer sends review outcome notifications
type Mailer interface {
	SendSubmissionApproved(to, userName, taskTitle string, amount float64)
	SendSubmissionRejected(to, userName, taskTitle, notes string)
}

// Service implements the submission review and settlement workflow
type Service struct {
	repo    Repository
	tasks   TaskRepository
	ledger  Ledger
	mailer  Mailer
	storage storage.Storage
}

// NewService creates submission service
func NewService(repo Repository, tasks TaskRepository, ledger Ledger, mailer Mailer, store storage.Storage) *Service {
	return &Service{
		repo:    repo,
		tasks:   tasks,
		ledger:  ledger,
		mailer:  mailer,
		storage: store,
	}
}

// Submit claims completion of a task. A user may hold at most one open
// submission per task.
func (s *Service) Submit(ctx context.Context, userID, taskID uuid.UUID) (*Submission, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, task.ErrTaskNotFound
	}

	open, err := s.repo.HasOpenSubmission(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, ErrAlreadySubmitted
	}

	sub := &Submission{
		ID:        uuid.New(),
		TaskID:    taskID,
		UserID:    userID,
		Status:    StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// AttachProof stores a proof screenshot for a pending submission owned by
// the user and records its URL.
func (s *Service) AttachProof(ctx context.Context, userID, submissionID uuid.UUID, reader io.Reader, contentType string) (*Submission, error) {
	if !storage.IsAllowedContentType(contentType) {
		return nil, ErrInvalidProofType
	}

	sub, err := s.repo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}
	if sub.UserID != userID {
		return nil, ErrNotOwner
	}
	if sub.IsReviewed() {
		return nil, ErrAlreadyReviewed
	}

	ext := "jpg"
	switch contentType {
	case "image/png":
		ext = "png"
	case "image/webp":
		ext = "webp"
	}
	key := fmt.Sprintf("proofs/%s/%s.%s", submissionID, uuid.New(), ext)

	if err := s.storage.Put(ctx, key, reader, contentType); err != nil {
		return nil, fmt.Errorf("failed to store proof: %w", err)
	}

	proofURL := s.storage.GetURL(key)
	if err := s.repo.UpdateProof(ctx, submissionID, proofURL); err != nil {
		return nil, err
	}

	sub.ProofURL.String = proofURL
	sub.ProofURL.Valid = true
	return sub, nil
}

// ListMine returns the user's submissions
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]*Submission, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListForReview returns the admin review queue
func (s *Service) ListForReview(ctx context.Context, filter *ListFilter) ([]*Detail, int, error) {
	if filter == nil {
		filter = &ListFilter{}
	}
	details, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return details, count, nil
}

// Review settles a pending submission. The status transition is made
// durable first; on approval the payout is the task's recorded true value,
// not the disclosed reward. If the payout fails after the status flip the
// submission stays approved and ErrSettlementIncomplete is returned for
// manual reconciliation. Rejection never touches the ledger.
func (s *Service) Review(ctx context.Context, reviewerID, submissionID uuid.UUID, action, notes string) (*Detail, error) {
	var status Status
	switch action {
	case ActionApprove:
		status = StatusApproved
	case ActionReject:
		status = StatusRejected
	default:
		return nil, ErrInvalidAction
	}

	detail, err := s.repo.GetDetail(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrSubmissionNotFound
	}
	if detail.IsReviewed() {
		return nil, ErrAlreadyReviewed
	}

	won, err := s.repo.MarkReviewed(ctx, submissionID, status, reviewerID, notes)
	if err != nil {
		return nil, err
	}
	if !won {
		// another reviewer got there first
		return nil, ErrAlreadyReviewed
	}

	detail.Status = status
	detail.AdminNotes.String = notes
	detail.AdminNotes.Valid = notes != ""

	if status == StatusRejected {
		if s.mailer != nil {
			s.mailer.SendSubmissionRejected(detail.UserEmail, detail.UserFullName, detail.TaskTitle, notes)
		}
		return detail, nil
	}

	amount := detail.TrueValue()
	_, err = s.ledger.Credit(ctx, detail.UserID, amount, wallet.TransactionTypeEarning,
		fmt.Sprintf("Reward for task: %s", detail.TaskTitle), "task_submission", submissionID)
	if err != nil {
		log.Error().Err(err).
			Str("submission_id", submissionID.String()).
			Str("user_id", detail.UserID.String()).
			Float64("amount", amount).
			Msg("Submission approved but payout failed, manual reconciliation required")
		return detail, fmt.Errorf("%w: %v", ErrSettlementIncomplete, err)
	}

	if s.mailer != nil {
		s.mailer.SendSubmissionApproved(detail.UserEmail, detail.UserFullName, detail.TaskTitle, amount)
	}

	return detail, nil
}
