// File: internal/repository/interface.go
package repository

import "context"

// Transactor runs fn inside a single storage transaction. Repositories called
// with the ctx handed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
