// Package resource holds the list/show/mutate plumbing shared by every
// backend resource. Each call is one HTTP request followed by envelope
// normalization.
package resource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/envelope"
)

// ErrEmptyResponse is returned by Show when the backend answered 2xx without
// any object in the body.
var ErrEmptyResponse = errors.New("backend returned no record")

// Definition names a backend resource.
type Definition struct {
	// Name is the plural item key, e.g. "categories".
	Name string
	// Path is the collection path, e.g. "/inventory/categories".
	Path           string
	SingularKey    string
	DefaultPerPage int
}

// Options returns the envelope options for the resource.
func (d Definition) Options() envelope.Options {
	return envelope.Options{
		ResourceKey:    d.Name,
		SingularKey:    d.SingularKey,
		DefaultPerPage: d.DefaultPerPage,
	}
}

// ItemPath returns the path of a single record.
func (d Definition) ItemPath(id int64) string {
	return d.Path + "/" + strconv.FormatInt(id, 10)
}

// ActionPath returns the path of a record action, e.g. /payroll/loans/3/approve.
func (d Definition) ActionPath(id int64, action string) string {
	return d.ItemPath(id) + "/" + action
}

// Client is a typed view of one resource.
type Client[T any] struct {
	api *apiclient.Client
	def Definition
}

func New[T any](api *apiclient.Client, def Definition) *Client[T] {
	return &Client[T]{api: api, def: def}
}

// List fetches one page. req echoes the paging parameters for the
// pagination fallbacks.
func (c *Client[T]) List(ctx context.Context, params apiclient.Params, req envelope.Request) (envelope.Result[T], error) {
	return List[T](ctx, c.api, c.def.Path, params, req, c.def.Options())
}

func (c *Client[T]) Show(ctx context.Context, id int64) (T, error) {
	return Show[T](ctx, c.api, c.def.ItemPath(id), c.def.Options())
}

func (c *Client[T]) Create(ctx context.Context, body any) (T, error) {
	return Send[T](ctx, c.api, http.MethodPost, c.def.Path, body, c.def.Options())
}

func (c *Client[T]) Update(ctx context.Context, id int64, body any) (T, error) {
	return Send[T](ctx, c.api, http.MethodPut, c.def.ItemPath(id), body, c.def.Options())
}

func (c *Client[T]) Delete(ctx context.Context, id int64) error {
	if _, err := c.api.Delete(ctx, c.def.ItemPath(id)); err != nil {
		return err
	}
	return nil
}

// Action calls a record action such as approve or toggle-status.
func (c *Client[T]) Action(ctx context.Context, method string, id int64, action string, body any) (T, error) {
	return Send[T](ctx, c.api, method, c.def.ActionPath(id, action), body, c.def.Options())
}

// List fetches and normalizes a list endpoint.
func List[T any](ctx context.Context, api *apiclient.Client, path string, params apiclient.Params, req envelope.Request, opts envelope.Options) (envelope.Result[T], error) {
	body, err := api.Get(ctx, path, params)
	if err != nil {
		return envelope.Result[T]{}, err
	}
	return envelope.Normalize[T](body, req, opts), nil
}

// Show fetches a single record.
func Show[T any](ctx context.Context, api *apiclient.Client, path string, opts envelope.Options) (T, error) {
	body, err := api.Get(ctx, path, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	item, ok := envelope.Unwrap[T](body, opts)
	if !ok {
		return item, fmt.Errorf("GET %s: %w", path, ErrEmptyResponse)
	}
	return item, nil
}

// Send performs a mutation and unwraps the returned record. Mutations that
// answer without a record (204, bare message) yield the zero value.
func Send[T any](ctx context.Context, api *apiclient.Client, method, path string, body any, opts envelope.Options) (T, error) {
	var (
		raw []byte
		err error
	)
	switch method {
	case http.MethodPost:
		raw, err = api.Post(ctx, path, body)
	case http.MethodPut:
		raw, err = api.Put(ctx, path, body)
	case http.MethodPatch:
		raw, err = api.Patch(ctx, path, body)
	case http.MethodDelete:
		raw, err = api.Delete(ctx, path)
	default:
		err = fmt.Errorf("unsupported method %s", method)
	}

	var item T
	if err != nil {
		return item, err
	}
	item, _ = envelope.Unwrap[T](raw, opts)
	return item, nil
}

// Translate maps upstream status codes onto domain errors. The upstream
// error stays in the chain so its message can still reach the user.
func Translate(err error, byStatus map[int]error) error {
	if err == nil {
		return nil
	}
	if domainErr, ok := byStatus[apiclient.StatusCode(err)]; ok {
		return fmt.Errorf("%w: %w", domainErr, err)
	}
	return err
}
