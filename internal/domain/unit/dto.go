package unit

import (
	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/shared"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
)

const DefaultPerPage = 15

var SortFields = []string{"name", "symbol", "products_count", "created_at"}

type UnitFilter struct {
	shared.ListFilter
	IsActive *bool `json:"is_active,omitempty"`
}

func (f *UnitFilter) Validate() error {
	var errs validator.ValidationErrors
	f.Normalize(DefaultPerPage, SortFields, &errs)
	return errs.Err()
}

func (f UnitFilter) Params() apiclient.Params {
	return f.ListFilter.Params().Set("is_active", f.IsActive)
}

type CreateUnitRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Symbol      string  `json:"symbol" validate:"required,max=20"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *CreateUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if validator.IsEmpty(r.Symbol) {
		errs.Add("symbol", "symbol is required")
	}

	validator.StructInto(r, &errs)

	return errs.Err()
}

type UpdateUnitRequest struct {
	ID          int64   `json:"-"`
	Name        string  `json:"name" validate:"required,max=100"`
	Symbol      string  `json:"symbol" validate:"required,max=20"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs.Add("id", "id is required")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if validator.IsEmpty(r.Symbol) {
		errs.Add("symbol", "symbol is required")
	}

	validator.StructInto(r, &errs)

	return errs.Err()
}
