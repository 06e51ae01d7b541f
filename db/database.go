package db

import "gorm.io/gorm"

type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }

// WithTx runs fn inside a single transaction, handing it a Database
// scoped to that transaction so repositories built from it share the
// same commit-or-fail unit.
func WithTx(database Database, fn func(tx Database) error) error {
	return database.GetDB().Transaction(func(tx *gorm.DB) error {
		return fn(&GormDatabase{DB: tx})
	})
}
