package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

var errInvalidBody = errors.New("invalid request format")

// TransactionHandler handles ledger HTTP requests for the authenticated owner
type TransactionHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// AddTransaction handles the POST /api/user/transaction endpoint
func (h *TransactionHandler) AddTransaction(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	tx, err := h.ledgerUseCase.AddTransaction(c.Request.Context(), ownerID, usecase.AddTransactionRequest{
		Amount:          req.Amount,
		Kind:            req.TransactionType,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AddTransactionResponse{
		Message:     "Transaction added successfully",
		Transaction: dto.NewTransactionResponse(tx),
	})
}

// ListTransactions handles the GET /api/user/transaction endpoint
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	transactions, err := h.ledgerUseCase.ListTransactions(c.Request.Context(), ownerID, dateRangeQuery(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// GetSummary handles the GET /api/user/transaction/summary endpoint
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	summary, err := h.ledgerUseCase.GetSummary(c.Request.Context(), ownerID, dateRangeQuery(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}

// DeleteTransaction handles the DELETE /api/user/transaction/:id endpoint
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	idParam := c.Param("id")
	transactionID, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil || transactionID == 0 {
		respondWithError(c, domainerr.NewValidationError("", domainerr.ErrInvalidTransactionID))
		return
	}

	if err := h.ledgerUseCase.DeleteTransaction(c.Request.Context(), ownerID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTransactionResponse{
		Message:            "Transaction deleted successfully",
		DeletedTransaction: idParam,
	})
}

// ownerID reads the identity set by the session gate; a missing one is a routing mistake
func (h *TransactionHandler) ownerID(c *gin.Context) (uint64, bool) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		h.logger.Error("Ledger route reached without an authenticated owner", map[string]any{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
		respondWithError(c, domainerr.ErrUnauthorized)
	}
	return ownerID, ok
}

func dateRangeQuery(c *gin.Context) usecase.DateRangeQuery {
	return usecase.DateRangeQuery{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
}
