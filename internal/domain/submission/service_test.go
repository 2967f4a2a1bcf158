package submission

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/promohive/promohive-api/internal/domain/offer"
	"github.com/promohive/promohive-api/internal/domain/task"
	"github.com/promohive/promohive-api/internal/domain/wallet"
)

type fakeSubmissionRepo struct {
	created  *Submission
	detail   *Detail
	open     bool
	reviewed bool // simulates a terminal row already in the store
	proofURL string
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, sub *Submission) error {
	f.created = sub
	return nil
}
func (f *fakeSubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*Submission, error) {
	if f.detail != nil && f.detail.ID == id {
		return &f.detail.Submission, nil
	}
	if f.created != nil && f.created.ID == id {
		return f.created, nil
	}
	return nil, nil
}
func (f *fakeSubmissionRepo) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	if f.detail != nil && f.detail.ID == id {
		copyDetail := *f.detail
		return &copyDetail, nil
	}
	return nil, nil
}
func (f *fakeSubmissionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Submission, error) {
	return nil, nil
}
func (f *fakeSubmissionRepo) List(ctx context.Context, filter *ListFilter) ([]*Detail, error) {
	return nil, nil
}
func (f *fakeSubmissionRepo) Count(ctx context.Context, filter *ListFilter) (int, error) {
	return 0, nil
}
func (f *fakeSubmissionRepo) HasOpenSubmission(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	return f.open, nil
}
func (f *fakeSubmissionRepo) UpdateProof(ctx context.Context, id uuid.UUID, proofURL string) error {
	f.proofURL = proofURL
	return nil
}
func (f *fakeSubmissionRepo) MarkReviewed(ctx context.Context, id uuid.UUID, status Status, reviewerID uuid.UUID, notes string) (bool, error) {
	if f.reviewed {
		return false, nil
	}
	f.reviewed = true
	if f.detail != nil {
		f.detail.Status = status
	}
	return true, nil
}

type fakeTaskProvider struct {
	task *task.Task
}

func (f *fakeTaskProvider) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	return f.task, nil
}

type creditCall struct {
	userID uuid.UUID
	amount float64
	txType wallet.TransactionType
	refID  uuid.UUID
}

type fakeLedger struct {
	calls []creditCall
	err   error
}

func (f *fakeLedger) Credit(ctx context.Context, userID uuid.UUID, amount float64, txType wallet.TransactionType, description, referenceType string, referenceID uuid.UUID) (*wallet.Transaction, error) {
	f.calls = append(f.calls, creditCall{userID: userID, amount: amount, txType: txType, refID: referenceID})
	if f.err != nil {
		return nil, f.err
	}
	return &wallet.Transaction{ID: uuid.New(), UserID: userID, Amount: amount, Type: txType}, nil
}

type mailCall struct {
	template string
	to       string
	amount   float64
	notes    string
}

type fakeMailer struct {
	calls []mailCall
}

func (f *fakeMailer) SendSubmissionApproved(to, userName, taskTitle string, amount float64) {
	f.calls = append(f.calls, mailCall{template: "approved", to: to, amount: amount})
}
func (f *fakeMailer) SendSubmissionRejected(to, userName, taskTitle, notes string) {
	f.calls = append(f.calls, mailCall{template: "rejected", to: to, notes: notes})
}

type fakeStorage struct {
	keys []string
	err  error
}

func (f *fakeStorage) Put(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	return nil
}
func (f *fakeStorage) Delete(ctx context.Context, key string) error { return nil }
func (f *fakeStorage) GetURL(key string) string                     { return "https://cdn.example.com/" + key }

func pendingDetail(trueValue, disclosed float64) *Detail {
	return &Detail{
		Submission: Submission{
			ID:        uuid.New(),
			TaskID:    uuid.New(),
			UserID:    uuid.New(),
			Status:    StatusPending,
			CreatedAt: time.Now(),
		},
		TaskTitle:  "Install app",
		TaskReward: disclosed,
		TaskRequirements: offer.JSONMap{
			task.ReqKeyTrueValue: trueValue,
		},
		UserEmail:    "worker@example.com",
		UserFullName: "Worker",
	}
}

func TestSubmitCreatesPendingSubmission(t *testing.T) {
	taskID := uuid.New()
	repo := &fakeSubmissionRepo{}
	tasks := &fakeTaskProvider{task: &task.Task{ID: taskID}}
	svc := NewService(repo, tasks, &fakeLedger{}, &fakeMailer{}, &fakeStorage{})

	sub, err := svc.Submit(context.Background(), uuid.New(), taskID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sub.Status != StatusPending {
		t.Fatalf("expected pending status, got %v", sub.Status)
	}
	if repo.created == nil {
		t.Fatal("expected submission to be persisted")
	}
}

func TestSubmitMissingTask(t *testing.T) {
	svc := NewService(&fakeSubmissionRepo{}, &fakeTaskProvider{}, &fakeLedger{}, &fakeMailer{}, &fakeStorage{})

	_, err := svc.Submit(context.Background(), uuid.New(), uuid.New())
	if err != task.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestSubmitDuplicateOpenSubmission(t *testing.T) {
	taskID := uuid.New()
	repo := &fakeSubmissionRepo{open: true}
	tasks := &fakeTaskProvider{task: &task.Task{ID: taskID}}
	svc := NewService(repo, tasks, &fakeLedger{}, &fakeMailer{}, &fakeStorage{})

	_, err := svc.Submit(context.Background(), uuid.New(), taskID)
	if err != ErrAlreadySubmitted {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
	if repo.created != nil {
		t.Fatal("no duplicate submission may be created")
	}
}

func TestReviewApproveSettlesTrueValue(t *testing.T) {
	detail := pendingDetail(100, 25)
	repo := &fakeSubmissionRepo{detail: detail}
	ledger := &fakeLedger{}
	mailer := &fakeMailer{}
	svc := NewService(repo, &fakeTaskProvider{}, ledger, mailer, &fakeStorage{})

	reviewerID := uuid.New()
	result, err := svc.Review(context.Background(), reviewerID, detail.ID, ActionApprove, "looks good")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Status != StatusApproved {
		t.Fatalf("expected approved status, got %v", result.Status)
	}

	if len(ledger.calls) != 1 {
		t.Fatalf("expected exactly one ledger credit, got %d", len(ledger.calls))
	}
	call := ledger.calls[0]
	if call.amount != 100 {
		t.Fatalf("settlement must use the true value 100, got %v", call.amount)
	}
	if call.userID != detail.UserID {
		t.Fatalf("credit went to the wrong user: %v", call.userID)
	}
	if call.txType != wallet.TransactionTypeEarning {
		t.Fatalf("expected earning transaction, got %v", call.txType)
	}
	if call.refID != detail.ID {
		t.Fatalf("expected submission reference %v, got %v", detail.ID, call.refID)
	}

	if len(mailer.calls) != 1 || mailer.calls[0].template != "approved" {
		t.Fatalf("expected one approval email, got %v", mailer.calls)
	}
	if mailer.calls[0].amount != 100 {
		t.Fatalf("approval email must carry the settled amount, got %v", mailer.calls[0].amount)
	}
}

func TestReviewRejectNeverTouchesLedger(t *testing.T) {
	detail := pendingDetail(100, 25)
	repo := &fakeSubmissionRepo{detail: detail}
	ledger := &fakeLedger{}
	mailer := &fakeMailer{}
	svc := NewService(repo, &fakeTaskProvider{}, ledger, mailer, &fakeStorage{})

	result, err := svc.Review(context.Background(), uuid.New(), detail.ID, ActionReject, "proof unreadable")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Status != StatusRejected {
		t.Fatalf("expected rejected status, got %v", result.Status)
	}
	if len(ledger.calls) != 0 {
		t.Fatalf("rejection must not touch the ledger, got %d credits", len(ledger.calls))
	}
	if len(mailer.calls) != 1 || mailer.calls[0].template != "rejected" {
		t.Fatalf("expected one rejection email, got %v", mailer.calls)
	}
	if mailer.calls[0].notes != "proof unreadable" {
		t.Fatalf("rejection email must carry the notes, got %q", mailer.calls[0].notes)
	}
}

func TestReviewTwiceFailsWithoutSecondPayout(t *testing.T) {
	detail := pendingDetail(100, 25)
	repo := &fakeSubmissionRepo{detail: detail}
	ledger := &fakeLedger{}
	svc := NewService(repo, &fakeTaskProvider{}, ledger, &fakeMailer{}, &fakeStorage{})

	if _, err := svc.Review(context.Background(), uuid.New(), detail.ID, ActionApprove, ""); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	_, err := svc.Review(context.Background(), uuid.New(), detail.ID, ActionApprove, "")
	if err != ErrAlreadyReviewed {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
	if len(ledger.calls) != 1 {
		t.Fatalf("expected exactly one payout across both reviews, got %d", len(ledger.calls))
	}
}

func TestReviewLostRaceFailsWithoutPayout(t *testing.T) {
	// the pending read succeeded but another reviewer flipped the status
	// before our conditional update
	detail := pendingDetail(100, 25)
	repo := &fakeSubmissionRepo{detail: detail, reviewed: true}
	ledger := &fakeLedger{}
	svc := NewService(repo, &fakeTaskProvider{}, ledger, &fakeMailer{}, &fakeStorage{})

	_, err := svc.Review(context.Background(), uuid.New(), detail.ID, ActionApprove, "")
	if err != ErrAlreadyReviewed {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
	if len(ledger.calls) != 0 {
		t.Fatalf("losing the review race must not pay out, got %d credits", len(ledger.calls))
	}
}

func TestReviewPayoutFailureKeepsApproval(t *testing.T) {
	detail := pendingDetail(100, 25)
	repo := &fakeSubmissionRepo{detail: detail}
	ledger := &fakeLedger{err: errors.New("increment_user_balance failed")}
	mailer := &fakeMailer{}
	svc := NewService(repo, &fakeTaskProvider{}, ledger, mailer, &fakeStorage{})

	result, err := svc.Review(context.Background(), uuid.New(), detail.ID, ActionApprove, "")
	if !errors.Is(err, ErrSettlementIncomplete) {
		t.Fatalf("expected ErrSettlementIncomplete, got %v", err)
	}
	if result == nil || result.Status != StatusApproved {
		t.Fatal("approval must stay durable when the payout fails")
	}
	if repo.detail.Status != StatusApproved {
		t.Fatalf("stored status must remain approved, got %v", repo.detail.Status)
	}
	if len(mailer.calls) != 0 {
		t.Fatalf("no approval email on incomplete settlement, got %v", mailer.calls)
	}
}

func TestReviewInvalidAction(t *testing.T) {
	detail := pendingDetail(100, 25)
	svc := NewService(&fakeSubmissionRepo{detail: detail}, &fakeTaskProvider{}, &fakeLedger{}, &fakeMailer{}, &fakeStorage{})

	_, err := svc.Review(context.Background(), uuid.New(), detail.ID, "escalate", "")
	if err != ErrInvalidAction {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestReviewSettlesLegacyTaskAtDisclosedReward(t *testing.T) {
	// tasks created before the true value was recorded settle at the
	// disclosed reward
	detail := pendingDetail(100, 25)
	detail.TaskRequirements = offer.JSONMap{}
	repo := &fakeSubmissionRepo{detail: detail}
	ledger := &fakeLedger{}
	svc := NewService(repo, &fakeTaskProvider{}, ledger, &fakeMailer{}, &fakeStorage{})

	if _, err := svc.Review(context.Background(), uuid.New(), detail.ID, ActionApprove, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ledger.calls[0].amount != 25 {
		t.Fatalf("expected fallback settlement 25, got %v", ledger.calls[0].amount)
	}
}

func TestAttachProofRejectsBadContentType(t *testing.T) {
	svc := NewService(&fakeSubmissionRepo{}, &fakeTaskProvider{}, &fakeLedger{}, &fakeMailer{}, &fakeStorage{})

	_, err := svc.AttachProof(context.Background(), uuid.New(), uuid.New(), strings.NewReader("x"), "application/pdf")
	if err != ErrInvalidProofType {
		t.Fatalf("expected ErrInvalidProofType, got %v", err)
	}
}

func TestAttachProofStoresAndRecordsURL(t *testing.T) {
	sub := &Submission{ID: uuid.New(), UserID: uuid.New(), Status: StatusPending}
	repo := &fakeSubmissionRepo{created: sub}
	store := &fakeStorage{}
	svc := NewService(repo, &fakeTaskProvider{}, &fakeLedger{}, &fakeMailer{}, store)

	updated, err := svc.AttachProof(context.Background(), sub.UserID, sub.ID, strings.NewReader("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(store.keys) != 1 || !strings.HasPrefix(store.keys[0], "proofs/"+sub.ID.String()+"/") {
		t.Fatalf("unexpected storage key: %v", store.keys)
	}
	if !strings.HasSuffix(store.keys[0], ".png") {
		t.Fatalf("expected png extension, got %v", store.keys[0])
	}
	if repo.proofURL == "" || !updated.ProofURL.Valid {
		t.Fatal("expected proof URL to be recorded")
	}
}

func TestAttachProofOwnershipEnforced(t *testing.T) {
	sub := &Submission{ID: uuid.New(), UserID: uuid.New(), Status: StatusPending}
	repo := &fakeSubmissionRepo{created: sub}
	svc := NewService(repo, &fakeTaskProvider{}, &fakeLedger{}, &fakeMailer{}, &fakeStorage{})

	_, err := svc.AttachProof(context.Background(), uuid.New(), sub.ID, strings.NewReader("x"), "image/jpeg")
	if err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestAttachProofAfterReviewRejected(t *testing.T) {
	sub := &Submission{ID: uuid.New(), UserID: uuid.New(), Status: StatusApproved}
	repo := &fakeSubmissionRepo{created: sub}
	svc := NewService(repo, &fakeTaskProvider{}, &fakeLedger{}, &fakeMailer{}, &fakeStorage{})

	_, err := svc.AttachProof(context.Background(), sub.UserID, sub.ID, strings.NewReader("x"), "image/jpeg")
	if err != ErrAlreadyReviewed {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}
