// Package model holds the GORM mirrors of the database tables.
package model

import (
	"github.com/google/uuid"
)

// newID returns a time-ordered UUIDv7 so primary keys sort by creation.
// Ids are generated in Go instead of a column default to keep the schema portable to SQLite.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

// All lists every model in foreign-key order. Used for AutoMigrate on SQLite.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&ExpenseModel{},
		&CareerProfileModel{},
		&JobApplicationModel{},
		&SupplyItemModel{},
		&SurveyModel{},
		&ResponseModel{},
	}
}
