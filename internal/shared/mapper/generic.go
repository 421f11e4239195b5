// Package mapper holds the generic slice conversions shared by the DTO and
// persistence layers.
package mapper

// MapSlicePtr converts every non-nil element of items. A nil input yields
// nil.
func MapSlicePtr[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	if items == nil {
		return nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, mapFunc(item))
		}
	}
	return result
}

// TryMapSlicePtr converts every element of items and stops at the first
// error. On success the result is never nil, even for an empty input.
func TryMapSlicePtr[T any, R any](items []*T, mapFunc func(*T) (*R, error)) ([]*R, error) {
	result := make([]*R, 0, len(items))
	for _, item := range items {
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}
