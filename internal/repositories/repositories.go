// Package repositories provides the lookup and persistence operations backing
// the domain service. Implementations wrap a *gorm.DB; callers depend on the
// interfaces only.
package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist. GORM's
// record-not-found error never escapes this package.
var ErrNotFound = errors.New("record not found")
