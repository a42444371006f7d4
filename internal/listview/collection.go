package listview

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartlinkhq/admin-console/internal/model"
)

// Filter returns the entities whose search fields contain the trimmed term,
// case-insensitively. An empty term returns the input unchanged. The result
// is always a subset of items in the original order.
func Filter[T model.Identifier](items []T, term string, fields SearchFields[T]) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || fields == nil {
		return items
	}

	var matched []T
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// Paginate returns the slice [(page-1)*size, page*size), clamped to the
// collection's bounds. Concatenating all pages reconstructs the input.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(count/size); an empty collection has zero pages.
func TotalPages(count, size int) int {
	if count <= 0 || size < 1 {
		return 0
	}
	return (count + size - 1) / size
}

// Apply patches the collection with a server-returned entity: replace by id
// when present, append otherwise. Insertion order is preserved.
func Apply[T model.Identifier](items []T, entity T) []T {
	for i, existing := range items {
		if existing.Identity() == entity.Identity() {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = entity
			return out
		}
	}
	return append(items, entity)
}

// RemoveByID filters the entity out of the collection; removing an absent id
// returns the collection unchanged.
func RemoveByID[T model.Identifier](items []T, id uuid.UUID) []T {
	var out []T
	for _, item := range items {
		if item.Identity() != id {
			out = append(out, item)
		}
	}
	return out
}
