package category

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
)

const DefaultPerPage = 15

var SortFields = []string{"name", "code", "products_count", "created_at"}

type CategoryFilter struct {
	shared.ListFilter
	IsActive *bool `json:"is_active,omitempty"`
}

func (f *CategoryFilter) Validate() error {
	var errs validator.ValidationErrors
	f.Normalize(DefaultPerPage, SortFields, &errs)
	return errs.Err()
}

func (f CategoryFilter) Params() apiclient.Params {
	return f.ListFilter.Params().Set("is_active", f.IsActive)
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Code        *string `json:"code,omitempty" validate:"omitempty,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}

	validator.StructInto(r, &errs)

	return errs.Err()
}

type UpdateCategoryRequest struct {
	ID          int64   `json:"-"`
	Name        string  `json:"name" validate:"required,max=100"`
	Code        *string `json:"code,omitempty" validate:"omitempty,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs.Add("id", "id is required")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}

	validator.StructInto(r, &errs)

	return errs.Err()
}
