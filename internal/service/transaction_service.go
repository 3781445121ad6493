// internal/service/transaction_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ledger-service/internal/domain"
	"ledger-service/internal/repository"
	"ledger-service/internal/util"
)

// TransactionService defines the interface for transaction-related business logic.
type TransactionService interface {
	Create(ctx context.Context, in domain.CreateTransactionInput) (*domain.Transaction, error)
	FindAll(ctx context.Context, page, limit int) (*domain.TransactionPage, error)
	FindByUser(ctx context.Context, userID string, page, limit int) (*domain.TransactionPage, error)
	FindOne(ctx context.Context, id string) (*domain.Transaction, error)
	Update(ctx context.Context, id string, patch domain.TransactionPatch) (*domain.Transaction, error)
	Remove(ctx context.Context, id string) (string, error)
	SyncUserBalance(ctx context.Context, userID string)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// transactionService implements the TransactionService interface.
type transactionService struct {
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
	logger          *slog.Logger
	tracer          trace.Tracer
}

// NewTransactionService creates a new instance of TransactionService.
func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) TransactionService {
	if logger == nil {
		logger = util.GetLogger()
	}
	return &transactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		logger:          logger,
		tracer:          otel.Tracer("ledger-service/service"),
	}
}

// Create persists a new PENDING transaction. The owner's balance is not touched
// and the user id is not checked for existence.
func (s *transactionService) Create(ctx context.Context, in domain.CreateTransactionInput) (*domain.Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionService.Create")
	defer span.End()

	transaction := domain.NewTransaction(in)
	if err := s.transactionRepo.CreateTransaction(ctx, transaction); err != nil {
		return nil, recordError(span, fmt.Errorf("create: %w", err))
	}
	span.SetAttributes(attribute.String("transaction.id", transaction.ID))
	return transaction, nil
}

// FindAll returns one page of every transaction, newest first.
func (s *transactionService) FindAll(ctx context.Context, page, limit int) (*domain.TransactionPage, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionService.FindAll")
	defer span.End()

	result, err := s.findPage(ctx, domain.TransactionFilter{}, page, limit)
	if err != nil {
		return nil, recordError(span, fmt.Errorf("find all: %w", err))
	}
	return result, nil
}

// FindByUser returns one page of the given user's transactions, newest first.
func (s *transactionService) FindByUser(ctx context.Context, userID string, page, limit int) (*domain.TransactionPage, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionService.FindByUser",
		trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	result, err := s.findPage(ctx, domain.TransactionFilter{UserID: &userID}, page, limit)
	if err != nil {
		return nil, recordError(span, fmt.Errorf("find by user %s: %w", userID, err))
	}
	return result, nil
}

func (s *transactionService) findPage(ctx context.Context, filter domain.TransactionFilter, page, limit int) (*domain.TransactionPage, error) {
	req := domain.NormalizePage(page, limit)
	transactions, total, err := s.transactionRepo.ListTransactions(ctx, filter, req.Skip(), req.Limit)
	if err != nil {
		return nil, err
	}
	return &domain.TransactionPage{
		Data:       transactions,
		Pagination: domain.NewPageInfo(req, total),
	}, nil
}

// FindOne returns the transaction with the given id.
func (s *transactionService) FindOne(ctx context.Context, id string) (*domain.Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionService.FindOne",
		trace.WithAttributes(attribute.String("transaction.id", id)))
	defer span.End()

	transaction, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, recordError(span, err)
	}
	return transaction, nil
}

// Update merges the fields present in patch into the stored transaction.
// Any status may replace any other.
func (s *transactionService) Update(ctx context.Context, id string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionService.Update",
		trace.WithAttributes(attribute.String("transaction.id", id)))
	defer span.End()

	transaction, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, recordError(span, err)
	}

	transaction.ApplyPatch(patch)
	if err := s.transactionRepo.UpdateTransaction(ctx, transaction); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			// Deleted between the read and the write.
			return nil, recordError(span, util.NewNotFoundError("Transaction", id))
		}
		return nil, recordError(span, fmt.Errorf("update: %w", err))
	}
	return transaction, nil
}

// Remove deletes the transaction and returns a confirmation message.
// The owner's balance is not resynced.
func (s *transactionService) Remove(ctx context.Context, id string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionService.Remove",
		trace.WithAttributes(attribute.String("transaction.id", id)))
	defer span.End()

	if _, err := s.getExisting(ctx, id); err != nil {
		return "", recordError(span, err)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, id); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", recordError(span, util.NewNotFoundError("Transaction", id))
		}
		return "", recordError(span, fmt.Errorf("remove: %w", err))
	}
	return fmt.Sprintf("Transaction %s has been deleted", id), nil
}

// SyncUserBalance recomputes the user's balance as the sum of their COMPLETED
// transactions. Failures, including panics from a store, are logged and never
// returned; the balance simply stays as it was.
func (s *transactionService) SyncUserBalance(ctx context.Context, userID string) {
	ctx, span := s.tracer.Start(ctx, "TransactionService.SyncUserBalance",
		trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			span.RecordError(err)
			s.logger.ErrorContext(ctx, "Error syncing balance for user", "userID", userID, "error", err)
		}
	}()

	total, err := s.transactionRepo.SumAmount(ctx, userID, domain.TransactionStatusCompleted)
	if err != nil {
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "Error syncing balance for user", "userID", userID, "error", err)
		return
	}

	if err := s.userRepo.UpdateUserFields(ctx, userID, domain.UserFields{Balance: &total}); err != nil {
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "Error syncing balance for user", "userID", userID, "error", err)
		return
	}

	s.logger.DebugContext(ctx, "User balance synced", "userID", userID, "balance", total.String())
}

// GetUser returns the user with the given id.
func (s *transactionService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionService.GetUser",
		trace.WithAttributes(attribute.String("user.id", id)))
	defer span.End()

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, recordError(span, util.NewNotFoundError("User", id))
		}
		return nil, recordError(span, fmt.Errorf("get user %s: %w", id, err))
	}
	return user, nil
}

func (s *transactionService) getExisting(ctx context.Context, id string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransactionByID(ctx, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.NewNotFoundError("Transaction", id)
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	return transaction, nil
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
