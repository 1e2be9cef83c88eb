package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

// pageMeta is the pagination block. Laravel puts it under "meta" for API
// resources and at the top level for plain paginators.
type pageMeta struct {
	CurrentPage *int `json:"current_page"`
	LastPage    *int `json:"last_page"`
	PerPage     *int `json:"per_page"`
	Total       *int `json:"total"`
}

func (m pageMeta) present() bool {
	return m.CurrentPage != nil || m.LastPage != nil || m.PerPage != nil || m.Total != nil
}

type listEnvelope struct {
	Data json.RawMessage `json:"data"`
	Meta *pageMeta       `json:"meta"`
	pageMeta
}

// decodeList normalises every list shape the backend produces into a
// PagedResult: a bare array, {data:[...]} with optional meta, and a
// paginator nested under data.
func decodeList[T any](body []byte) (domain.PagedResult[T], error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.SinglePage[T](nil), nil
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return domain.PagedResult[T]{}, fmt.Errorf("decode list: %w", err)
		}
		return domain.SinglePage(items), nil
	case '{':
	default:
		return domain.PagedResult[T]{}, fmt.Errorf("decode list: unexpected %q", trimmed[0])
	}

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return domain.PagedResult[T]{}, fmt.Errorf("decode list: %w", err)
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 {
		return domain.PagedResult[T]{}, fmt.Errorf("decode list: object without data")
	}
	if data[0] == '{' {
		return decodeList[T](data)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return domain.PagedResult[T]{}, fmt.Errorf("decode list data: %w", err)
	}

	meta := env.pageMeta
	if env.Meta != nil && env.Meta.present() {
		meta = *env.Meta
	}
	if !meta.present() {
		return domain.SinglePage(items), nil
	}

	page := domain.PagedResult[T]{Items: items}
	if meta.CurrentPage != nil {
		page.CurrentPage = *meta.CurrentPage
	}
	if meta.LastPage != nil {
		page.LastPage = *meta.LastPage
	}
	if meta.PerPage != nil {
		page.PerPage = *meta.PerPage
	}
	if meta.Total != nil {
		page.Total = *meta.Total
	}
	return page.Normalize(), nil
}

// decodeOne decodes a single entity, unwrapping a {data:{...}} envelope.
func decodeOne[T any](body []byte) (T, error) {
	var out T
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return out, fmt.Errorf("decode: empty body")
	}

	if trimmed[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &env); err == nil {
			if data := bytes.TrimSpace(env.Data); len(data) > 0 && data[0] == '{' {
				trimmed = data
			}
		}
	}

	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, fmt.Errorf("decode: %w", err)
	}
	return out, nil
}
