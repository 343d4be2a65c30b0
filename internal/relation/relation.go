// Package relation keeps many-to-many link tables in step with a desired set
// of target ids by computing and applying the difference.
package relation

import (
	"errors"
	"fmt"

	"github.com/Valentina9990/top-talent/pkg/apperror"
	"gorm.io/gorm"
)

// ErrUnknownTarget is returned when a desired id has no row in the target table.
var ErrUnknownTarget = errors.New("relation: unknown target id")

// Link describes one join table and the columns on each side of it.
type Link struct {
	JoinTable    string
	OwnerColumn  string
	TargetColumn string
	TargetTable  string
}

var (
	PlayerPositions = Link{
		JoinTable:    "player_positions",
		OwnerColumn:  "player_profile_id",
		TargetColumn: "position_id",
		TargetTable:  "positions",
	}
	SchoolCategories = Link{
		JoinTable:    "school_categories",
		OwnerColumn:  "school_profile_id",
		TargetColumn: "category_id",
		TargetTable:  "categories",
	}
)

// Dedupe drops blanks and repeats while keeping first-seen order.
func Dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Diff returns current minus desired and desired minus current.
func Diff(current, desired []string) (toRemove, toAdd []string) {
	want := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}
	have := make(map[string]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
		if _, ok := want[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range Dedupe(desired) {
		if _, ok := have[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	return toRemove, toAdd
}

// Exists reports whether every id in ids has a row in table. ids must be
// free of duplicates.
func Exists(tx *gorm.DB, table string, ids []string) (bool, error) {
	var found int64
	if err := tx.Table(table).Where("id IN ?", ids).Count(&found).Error; err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return int(found) == len(ids), nil
}

// ReplaceLinks makes the links of ownerID equal desired. It must run inside
// the caller's transaction: an unknown target id returns ErrUnknownTarget and
// the caller's rollback undoes any earlier writes.
func ReplaceLinks(tx *gorm.DB, l Link, ownerID string, desired []string) error {
	desired = Dedupe(desired)

	if len(desired) > 0 {
		ok, err := Exists(tx, l.TargetTable, desired)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTarget, l.TargetTable)
		}
	}

	var current []string
	if err := tx.Table(l.JoinTable).Where(l.OwnerColumn+" = ?", ownerID).Pluck(l.TargetColumn, &current).Error; err != nil {
		return fmt.Errorf("load %s: %w", l.JoinTable, err)
	}

	toRemove, toAdd := Diff(current, desired)

	if len(toRemove) > 0 {
		err := tx.Exec(
			"DELETE FROM "+l.JoinTable+" WHERE "+l.OwnerColumn+" = ? AND "+l.TargetColumn+" IN ?",
			ownerID, toRemove,
		).Error
		if err != nil {
			return fmt.Errorf("unlink %s: %w", l.JoinTable, err)
		}
	}

	if len(toAdd) > 0 {
		rows := make([]map[string]interface{}, 0, len(toAdd))
		for _, id := range toAdd {
			rows = append(rows, map[string]interface{}{
				l.OwnerColumn:  ownerID,
				l.TargetColumn: id,
			})
		}
		if err := tx.Table(l.JoinTable).Create(&rows).Error; err != nil {
			return fmt.Errorf("link %s: %w", l.JoinTable, err)
		}
	}
	return nil
}

// ToAppError reports an unknown target as a validation failure on field and
// wraps anything else as a persistence failure carrying msg.
func ToAppError(err error, field, msg string) error {
	if errors.Is(err, ErrUnknownTarget) {
		return apperror.Validation("", map[string]string{field: "Contains an unknown id"})
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Persistence(msg, err)
}
