package category

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-mobile-go/internal/domain/category"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/resource"
	"github.com/cmlabs-hris/hris-mobile-go/internal/service/statistics"
)

var Definition = resource.Definition{
	Name:           "categories",
	Path:           "/inventory/categories",
	SingularKey:    "category",
	DefaultPerPage: category.DefaultPerPage,
}

var notFound = map[int]error{http.StatusNotFound: category.ErrCategoryNotFound}

type CategoryServiceImpl struct {
	client   *resource.Client[category.Category]
	fallback statistics.Fallback
}

func NewCategoryService(api *apiclient.Client, fallback statistics.Fallback) category.CategoryService {
	return &CategoryServiceImpl{
		client:   resource.New[category.Category](api, Definition),
		fallback: fallback,
	}
}

func (s *CategoryServiceImpl) List(ctx context.Context, filter category.CategoryFilter) (envelope.Result[category.Category], error) {
	if err := filter.Validate(); err != nil {
		return envelope.Result[category.Category]{}, err
	}
	return s.client.List(ctx, filter.Params(), filter.Request())
}

func (s *CategoryServiceImpl) Show(ctx context.Context, id int64) (category.Category, error) {
	item, err := s.client.Show(ctx, id)
	return item, resource.Translate(err, notFound)
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req category.CreateCategoryRequest) (category.Category, error) {
	if err := req.Validate(); err != nil {
		return category.Category{}, err
	}
	return s.client.Create(ctx, req)
}

func (s *CategoryServiceImpl) Update(ctx context.Context, req category.UpdateCategoryRequest) (category.Category, error) {
	if err := req.Validate(); err != nil {
		return category.Category{}, err
	}
	item, err := s.client.Update(ctx, req.ID, req)
	return item, resource.Translate(err, notFound)
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.client.Delete(ctx, id)
	return resource.Translate(err, map[int]error{
		http.StatusNotFound: category.ErrCategoryNotFound,
		http.StatusConflict: category.ErrCategoryInUse,
	})
}

func (s *CategoryServiceImpl) Statistics(ctx context.Context, filter category.CategoryFilter) (envelope.Statistics, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return statistics.ComputeStatisticsFallback(ctx, s.fallback, Definition.Name, s.client, filter.Params(), statistics.CategoryCounters)
}

func (s *CategoryServiceImpl) ToggleStatus(ctx context.Context, id int64) (category.Category, error) {
	item, err := s.client.Action(ctx, http.MethodPatch, id, "toggle-status", nil)
	return item, resource.Translate(err, notFound)
}
