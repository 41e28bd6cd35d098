// Package pagination buckets flat result lists into fixed-size display pages.
// This is presentation paging only; database queries use LIMIT/OFFSET directly.
package pagination

import "errors"

var ErrInvalidPageSize = errors.New("page size must be positive")

// Paginate splits items into pages of pageSize elements, preserving order.
// Every page except possibly the last holds exactly pageSize elements. An
// empty input yields zero pages. The returned count equals len(pages).
func Paginate[T any](items []T, pageSize int) ([][]T, int, error) {
	if pageSize <= 0 {
		return nil, 0, ErrInvalidPageSize
	}

	pageCount := (len(items) + pageSize - 1) / pageSize

	pages := make([][]T, 0, pageCount)
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}

	return pages, pageCount, nil
}
