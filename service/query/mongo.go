// Package query wraps the mongo driver behind a table oriented surface.
// Repositories hand it a domain.Table and bson selectors and never touch
// collections directly, so slow query logging, index checking and metrics
// live in one place.
package query

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

type patchOp struct {
	patchMany bool
}

type PatchOp func(*patchOp)

// WithPatchMany widens Patch to every document the selector matches.
func WithPatchMany(patchMany bool) PatchOp {
	return func(o *patchOp) {
		o.patchMany = patchMany
	}
}

// Mongo abstracts the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count returns the number of documents matching the selector
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the document the selector matches, inserting it
	// when nothing matches yet
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search pages through matches. Sort takes a field name, with a
	// leading minus for descending order, and "" skips sorting which
	// leaves the result order up to mongo.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// RemoveAll removes all entries matching the selector from the table
	RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (removedCnt int64, err error)

	// Patch sets the given fields on the first match, or on every match
	// with WithPatchMany(true). Returns ErrNotFound if the selector
	// matches nothing.
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// CustomPatch applies a caller built update document. Returns
	// ErrNotFound when upsert is false and the selector matches nothing.
	CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error

	// Increment bumps one numeric field and decodes the updated
	// document into result, inserting the document when missing
	Increment(context ctx.Ctx, table domain.Table, selector, result interface{}, field string, inc interface{}) error

	// IncrementMany bumps several fields at once, seeding a fresh
	// document from set on first touch
	IncrementMany(context ctx.Ctx, table domain.Table, query interface{}, fieldAndValues bson.M, set bson.M, result interface{}) error
}
