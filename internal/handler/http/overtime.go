package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

type OvertimeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// List implements OvertimeHandler.
func (h *OvertimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := overtime.OvertimeFilter{
		ListFilter: q.listFilter(),
		EmployeeID: q.int64Ptr("employee_id"),
		Status:     q.stringPtr("status"),
		DateFrom:   q.stringPtr("date_from"),
		DateTo:     q.stringPtr("date_to"),
		Month:      q.stringPtr("month"),
	}
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.overtimeService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list overtime records", "error", err)
		response.HandleError(w, err)
		return
	}

	writeList(w, r, result, func(ctx context.Context) (envelope.Statistics, error) {
		return h.overtimeService.Statistics(ctx, filter)
	})
}

// Create implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.overtimeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create overtime", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime created successfully", created)
}

// GetByID implements OvertimeHandler.
func (h *OvertimeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	item, err := h.overtimeService.Show(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// Update implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	var req overtime.UpdateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.overtimeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update overtime", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime updated successfully", updated)
}

// Delete implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	if err := h.overtimeService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete overtime", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime deleted successfully", nil)
}

// Approve implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	item, err := h.overtimeService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("Failed to approve overtime", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime approved successfully", item)
}

// Reject implements OvertimeHandler.
func (h *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	var req shared.ReasonRequest
	if err := decodeOptional(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	item, err := h.overtimeService.Reject(r.Context(), req)
	if err != nil {
		slog.Error("Failed to reject overtime", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime rejected successfully", item)
}

// MarkPaid implements OvertimeHandler.
func (h *OvertimeHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Overtime ID is required", nil)
		return
	}

	item, err := h.overtimeService.MarkPaid(r.Context(), id)
	if err != nil {
		slog.Error("Failed to mark overtime as paid", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime marked as paid", item)
}
