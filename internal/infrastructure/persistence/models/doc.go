// Package models contains GORM persistence models that map to database tables.
// They are kept apart from domain aggregates so the domain layer stays free
// of ORM tags.
//
// Each model exposes ToDomain and FromDomain mappers. Repositories only ever
// read and write models, never domain structs directly.
//
// Dates are stored as timestamps holding the business-day midnight in the
// business time zone, and are normalised back into that zone on read.
package models
