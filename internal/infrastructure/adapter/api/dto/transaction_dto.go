package dto

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// TransactionRequest represents the API request for adding a transaction
type TransactionRequest struct {
	Amount          *float64 `json:"amount"`
	TransactionType string   `json:"transactionType"`
	Description     string   `json:"description"`
	TransactionDate string   `json:"transactionDate"`
}

// TransactionResponse represents a stored transaction
type TransactionResponse struct {
	ID              uint64    `json:"id"`
	UserID          uint64    `json:"userId"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transactionType"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transactionDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AddTransactionResponse is returned after a transaction is recorded
type AddTransactionResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

// TransactionListResponse wraps the transactions of a date range
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// SummaryResponse reports totals over a date range
type SummaryResponse struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Savings       float64 `json:"savings"`
	Message       string  `json:"message"`
}

// DeleteTransactionResponse confirms a deletion
type DeleteTransactionResponse struct {
	Message            string `json:"message"`
	DeletedTransaction string `json:"deletedTransaction"`
}

// NewTransactionResponse converts a transaction entity for the API
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		UserID:          tx.OwnerID,
		Amount:          tx.Amount,
		TransactionType: string(tx.Kind),
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate,
		CreatedAt:       tx.CreatedAt,
	}
}

// NewTransactionListResponse converts transactions, always producing a JSON array
func NewTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, NewTransactionResponse(tx))
	}
	return TransactionListResponse{Transactions: items}
}

// NewSummaryResponse converts a summary for the API
func NewSummaryResponse(summary *entity.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		Savings:       summary.Savings,
		Message:       summary.Message,
	}
}
