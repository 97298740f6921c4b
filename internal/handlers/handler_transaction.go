package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/validation"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/export"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

const exportFilename = "transactions.xlsx"

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/validate", h.validateTransaction)
		transactions.GET("/summary", h.getSummary)
		transactions.GET("/export", h.exportTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// bindPayload binds and validates the request body. It writes the response itself and
// returns false when the body cannot be turned into a payload.
func bindPayload(c *gin.Context, logger *slog.Logger) (domain.TransactionPayload, bool) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return domain.TransactionPayload{}, false
	}

	candidate := req.ToCandidate()
	if res := validation.Validate(candidate); !res.Valid {
		logger.Info("Transaction rejected by validator", slog.Int("error_count", len(res.Errors)))
		c.JSON(http.StatusBadRequest, dto.ToValidationResponse(res))
		return domain.TransactionPayload{}, false
	}

	payload, err := candidate.Payload()
	if err != nil {
		// Validate already accepted the candidate, so this should not happen.
		logger.Error("Failed to convert validated transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return domain.TransactionPayload{}, false
	}
	return payload, true
}

// validateTransaction godoc
// @Summary Validate a transaction
// @Description Checks a candidate transaction and reports every failing field. Never stores anything.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.TransactionRequest true "Candidate transaction"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} ErrorResponse "Malformed body"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/validate [post]
func (h *transactionHandler) validateTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToValidationResponse(validation.Validate(req.ToCandidate())))
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Validates the input and appends it to the collection with a fresh id.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ValidationResponse "Validation failed"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, ok := bindPayload(c, logger)
	if !ok {
		return
	}

	txn := h.transactionService.CreateTransaction(c.Request.Context(), payload)
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the whole collection in insertion order.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	txns := h.transactionService.ListTransactions(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction", slog.String("transaction_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces every field except the id. An unknown id is accepted and changes nothing.
// @Tags transactions
// @Accept json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.TransactionRequest true "Replacement fields"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ValidationResponse "Validation failed"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, ok := bindPayload(c, logger)
	if !ok {
		return
	}

	h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), payload)
	c.Status(http.StatusNoContent)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes the transaction. Deleting an unknown id succeeds and changes nothing.
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// getSummary godoc
// @Summary Account summary
// @Description Total credit, total debit and balance over the current collection. Refunds count toward neither total.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSummaryResponse(h.transactionService.GetAggregate(c.Request.Context())))
}

// exportTransactions godoc
// @Summary Export transactions
// @Description Downloads the current collection and its summary as an XLSX workbook.
// @Tags transactions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	// One snapshot feeds both the rows and the totals.
	txns := h.transactionService.ListTransactions(ctx)
	agg := accounting.CalculateAggregate(txns)

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, txns, agg); err != nil {
		logger.Error("Failed to build export workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export transactions"})
		return
	}

	logger.Info("Transactions exported", slog.Int("count", len(txns)))
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
