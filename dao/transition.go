package dao

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
)

// Mutation applies a workflow rule to a locked record and reports whether it
// changed anything.
type Mutation[T any] func(rec *T) (bool, error)

// txMutation may also write related rows in the same transaction.
type txMutation[T any] func(tx *gorm.DB, rec *T) (bool, error)

// transition runs mutate against the row selected by conds under a row lock.
// The write is conditional on the status observed under the lock, so a
// concurrent writer that got there first turns this one into
// ErrInvalidState. The returned record reflects the stored state whether or
// not anything changed.
func transition[T any](ctx context.Context, db *gorm.DB, notFound error, status func(*T) string, mutate txMutation[T], conds ...interface{}) (*T, bool, error) {
	var rec T
	var changed bool

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, conds...).Error; err != nil {
			return translateError(err, notFound)
		}

		observed := status(&rec)
		var err error
		changed, err = mutate(tx, &rec)
		if err != nil || !changed {
			return err
		}

		result := tx.Model(&rec).
			Where("status = ?", observed).
			Select("*").
			Omit("id", "created_at").
			Updates(&rec)
		if result.Error != nil {
			return translateError(result.Error, notFound)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: status changed concurrently from %s", echo_errors.ErrInvalidState, observed)
		}
		return nil
	})
	if err != nil {
		return &rec, false, err
	}
	return &rec, changed, nil
}

// lift adapts a plain workflow mutation to the transactional form.
func lift[T any](mutate Mutation[T]) txMutation[T] {
	return func(_ *gorm.DB, rec *T) (bool, error) {
		return mutate(rec)
	}
}

// deleteIf removes the row only when check passes against the locked record
// and the status is still the one observed.
func deleteIf[T any](ctx context.Context, db *gorm.DB, id uint, notFound error, status func(*T) string, check func(rec *T) error) (*T, error) {
	var rec T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, id).Error; err != nil {
			return translateError(err, notFound)
		}
		if err := check(&rec); err != nil {
			return err
		}

		observed := status(&rec)
		result := tx.Where("id = ? AND status = ?", id, observed).Delete(new(T))
		if result.Error != nil {
			return translateError(result.Error, notFound)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: status changed concurrently from %s", echo_errors.ErrInvalidState, observed)
		}
		return nil
	})
	return &rec, err
}

// translateError maps gorm errors onto the error vocabulary.
func translateError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	default:
		logger.Error("Database operation failed", zap.Error(err))
		return fmt.Errorf("%w: %v", echo_errors.ErrDatabaseOperation, err)
	}
}

// conflictError maps a unique violation onto conflict.
func conflictError(err error, conflict error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return translateError(err, echo_errors.ErrDatabaseOperation)
}

func applyPage(q *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q
}
