package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/loan"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

type LoanHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type LoanHandlerImpl struct {
	loanService loan.LoanService
}

func NewLoanHandler(loanService loan.LoanService) LoanHandler {
	return &LoanHandlerImpl{loanService: loanService}
}

// List implements LoanHandler.
func (h *LoanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := loan.LoanFilter{
		ListFilter: q.listFilter(),
		EmployeeID: q.int64Ptr("employee_id"),
		Status:     q.stringPtr("status"),
		DateFrom:   q.stringPtr("date_from"),
		DateTo:     q.stringPtr("date_to"),
	}
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.loanService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list loans", "error", err)
		response.HandleError(w, err)
		return
	}

	writeList(w, r, result, func(ctx context.Context) (envelope.Statistics, error) {
		return h.loanService.Statistics(ctx, filter)
	})
}

// Create implements LoanHandler.
func (h *LoanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req loan.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.loanService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create loan", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan created successfully", created)
}

// GetByID implements LoanHandler.
func (h *LoanHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	item, err := h.loanService.Show(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// Update implements LoanHandler.
func (h *LoanHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	var req loan.UpdateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.loanService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update loan", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan updated successfully", updated)
}

// Delete implements LoanHandler.
func (h *LoanHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	if err := h.loanService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete loan", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan deleted successfully", nil)
}

// Approve implements LoanHandler.
func (h *LoanHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	item, err := h.loanService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("Failed to approve loan", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan approved successfully", item)
}

// Reject implements LoanHandler.
func (h *LoanHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	var req shared.ReasonRequest
	if err := decodeOptional(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	item, err := h.loanService.Reject(r.Context(), req)
	if err != nil {
		slog.Error("Failed to reject loan", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan rejected successfully", item)
}

// MarkPaid implements LoanHandler.
func (h *LoanHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	item, err := h.loanService.MarkPaid(r.Context(), id)
	if err != nil {
		slog.Error("Failed to mark loan as paid", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan marked as paid", item)
}
