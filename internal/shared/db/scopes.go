package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderByID sorts rows by primary key, which is creation order for
// auto-increment tables.
func OrderByID() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
}

// ColumnEquals filters on column = value with the column name quoted by the
// dialect.
func ColumnEquals(column string, value any) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}
}
