package ledger

import (
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
)

// LedgerUseCase records and queries an owner's income and expense transactions
type LedgerUseCase struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase
func NewLedgerUseCase(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}
