package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

// Resource is the uniform CRUD surface of one REST collection.
type Resource[T any] struct {
	client *Client
	path   string
	noun   string
}

// NewResource binds a collection path such as "gyms" or "gyms/4/users".
// noun names one item in fallback messages, e.g. "gym member".
func NewResource[T any](c *Client, path, noun string) *Resource[T] {
	return &Resource[T]{client: c, path: path, noun: noun}
}

// Path returns the collection path.
func (r *Resource[T]) Path() string { return r.path }

func (r *Resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

// List fetches one page of the collection. Empty filter values never reach
// the query string.
func (r *Resource[T]) List(ctx context.Context, filter domain.EntityFilter) (domain.PagedResult[T], error) {
	body, err := r.client.get(ctx, r.path, filter.Query(), "Failed to load "+r.noun+"s")
	if err != nil {
		return domain.PagedResult[T]{}, err
	}
	page, err := decodeList[T](body)
	if err != nil {
		return domain.PagedResult[T]{}, fmt.Errorf("api: list %s: %w", r.path, err)
	}
	return page, nil
}

// Get fetches one item. A 404 matches domain.ErrNotFound.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	return decodeBody[T](r.client.get(ctx, r.itemPath(id), nil, "Failed to load "+r.noun))
}

// Create posts payload to the collection and returns the persisted item.
func (r *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	return decodeBody[T](r.client.send(ctx, http.MethodPost, r.path, payload, "Failed to create "+r.noun))
}

// Update puts payload to the item and returns the persisted item.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) (T, error) {
	return decodeBody[T](r.client.send(ctx, http.MethodPut, r.itemPath(id), payload, "Failed to update "+r.noun))
}

// Delete removes the item.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.client.send(ctx, http.MethodDelete, r.itemPath(id), nil, "Failed to delete "+r.noun)
	return err
}

func decodeBody[T any](body []byte, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	out, err := decodeOne[T](body)
	if err != nil {
		return out, fmt.Errorf("api: %w", err)
	}
	return out, nil
}
