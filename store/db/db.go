// Package db assembles the concrete database driver for the store.
package db

import (
	"github.com/cvoice/cvoice/internal/profile"
	"github.com/cvoice/cvoice/store"
	"github.com/cvoice/cvoice/store/db/postgres"
)

// NewDriver opens the database driver described by the profile. The
// CV schema lives on PostgreSQL only; the chunk index shares the same
// connection pool.
func NewDriver(p *profile.Profile) (store.Driver, *postgres.DB, error) {
	driver, err := postgres.New(p.DSN)
	if err != nil {
		return nil, nil, err
	}
	return driver, driver, nil
}
