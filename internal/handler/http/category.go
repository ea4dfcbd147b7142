package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/category"
	"github.com/cmlabs-hris/hris-mobile-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

type CategoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
}

type CategoryHandlerImpl struct {
	categoryService category.CategoryService
}

func NewCategoryHandler(categoryService category.CategoryService) CategoryHandler {
	return &CategoryHandlerImpl{categoryService: categoryService}
}

// List implements CategoryHandler.
func (h *CategoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := category.CategoryFilter{
		ListFilter: q.listFilter(),
		IsActive:   q.boolPtr("is_active"),
	}
	if err := q.err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.categoryService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list categories", "error", err)
		response.HandleError(w, err)
		return
	}

	writeList(w, r, result, func(ctx context.Context) (envelope.Statistics, error) {
		return h.categoryService.Statistics(ctx, filter)
	})
}

// Create implements CategoryHandler.
func (h *CategoryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req category.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.categoryService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create category", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Category created successfully", created)
}

// GetByID implements CategoryHandler.
func (h *CategoryHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Category ID is required", nil)
		return
	}

	item, err := h.categoryService.Show(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

// Update implements CategoryHandler.
func (h *CategoryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Category ID is required", nil)
		return
	}

	var req category.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.categoryService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update category", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category updated successfully", updated)
}

// Delete implements CategoryHandler.
func (h *CategoryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Category ID is required", nil)
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete category", "id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category deleted successfully", nil)
}

// ToggleStatus implements CategoryHandler.
func (h *CategoryHandlerImpl) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		response.BadRequest(w, "Category ID is required", nil)
		return
	}

	item, err := h.categoryService.ToggleStatus(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Category status updated successfully", item)
}
