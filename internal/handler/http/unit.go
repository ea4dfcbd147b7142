package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/unit"
	"github.com/cmlabs-hris/hris-mobile-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

type UnitHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
}

type UnitHandlerImpl struct {
	unitService unit.UnitService
}

func NewUnitHandler(unitService unit.UnitService) UnitHandler {
	return &UnitHandlerImpl{unitService: unitService}
}

// List implements UnitHandler.
func (h *UnitHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := unit.UnitFilter{
		ListFilter: q.listFilter(),
		IsActive:   q.boolPtr("is_active"),
	}
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.unitService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list units", "error", err)
		response.HandleError(w, err)
		return
	}

	writeList(w, r, result, func(ctx context.Context) (envelope.Statistics, error) {
		return h.unitService.Statistics(ctx, filter)
	})
}

// Create implements UnitHandler.
func (h *UnitHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req unit.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.unitService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create unit", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Unit created successfully", created)
}

// GetByID implements UnitHandler.
func (h *UnitHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Unit ID is required", nil)
		return
	}

	item, err := h.unitService.Show(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// Update implements UnitHandler.
func (h *UnitHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Unit ID is required", nil)
		return
	}

	var req unit.UpdateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.unitService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update unit", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unit updated successfully", updated)
}

// Delete implements UnitHandler.
func (h *UnitHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Unit ID is required", nil)
		return
	}

	if err := h.unitService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete unit", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unit deleted successfully", nil)
}

// ToggleStatus implements UnitHandler.
func (h *UnitHandlerImpl) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Unit ID is required", nil)
		return
	}

	item, err := h.unitService.ToggleStatus(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unit status updated successfully", item)
}
