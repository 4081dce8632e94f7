// Package store holds the persistence contracts consumed by the core. Every
// lookup, uniqueness check, and listing operates over active rows only; a
// soft-deleted row is logically absent but physically retained.
package store

import "gorm.io/gorm"

// Active scopes a query to rows whose deletion timestamp is unset. Applied
// uniformly instead of repeating the predicate per query.
func Active(tx *gorm.DB) *gorm.DB {
	return tx.Where("deleted_at IS NULL")
}
