// Package mappers converts between domain records and persistence models.
package mappers

// Mapper converts one domain record type to and from its table model.
type Mapper[T any, M any] interface {
	// ToModel converts a domain record to a persistence model.
	ToModel(entity *T) *M

	// ToDomain converts a persistence model to a domain record. Stored values
	// that no longer parse are reported as errors.
	ToDomain(model *M) (*T, error)
}
