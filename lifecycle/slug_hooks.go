// Package lifecycle holds the persistence-hook side of the slug and booking
// coordination: models call into it from their GORM hooks so the logic stays
// in one place instead of being copied across ten entity kinds.
package lifecycle

import (
	"fmt"
	"math/rand"

	"github.com/aurelienmx/skillmarket/slugs"
	"gorm.io/gorm"
)

var coordinator = slugs.NewCoordinator(nil)

// SetRandomSource swaps the suffix randomness source. Tests inject a
// deterministic source here.
func SetRandomSource(src rand.Source) {
	coordinator = slugs.NewCoordinator(src)
}

// GenerateSlug assigns a slug to e before its first insert. A slug already
// set by the caller is kept. Runs inside the insert's transaction, so the
// row and its slug commit together.
func GenerateSlug(tx *gorm.DB, e slugs.Sluggable) error {
	if e.CurrentSlug() != "" {
		return nil
	}
	policy, ok := slugs.PolicyFor(e.SlugKind())
	if !ok {
		return fmt.Errorf("no slug policy registered for kind %q", e.SlugKind())
	}
	slug, err := coordinator.UniqueSlug(e.SlugSource(), policy.WithSuffix, slugExistsIn(tx))
	if err != nil {
		return err
	}
	e.SetSlug(slug)
	return nil
}

// RefreshSlug regenerates e's slug when the stored value is no longer
// derivable from the current source fields. An update that left the source
// fields alone is a no-op, so the existing slug (random suffix included)
// survives unrelated edits. The new value is written both onto the model and
// into the statement so it reaches the database in the same transaction.
func RefreshSlug(tx *gorm.DB, e slugs.Sluggable) error {
	if e.CurrentSlug() == "" && e.SlugSource() == "" {
		// Column-level update on an unloaded model; nothing to refresh.
		return nil
	}
	policy, ok := slugs.PolicyFor(e.SlugKind())
	if !ok {
		return fmt.Errorf("no slug policy registered for kind %q", e.SlugKind())
	}
	if policy.Current(e.CurrentSlug(), e.SlugSource()) {
		return nil
	}
	slug, err := coordinator.UniqueSlug(e.SlugSource(), policy.WithSuffix, slugExistsIn(tx))
	if err != nil {
		return err
	}
	e.SetSlug(slug)
	if tx.Statement != nil && tx.Statement.Schema != nil {
		tx.Statement.SetColumn("slug", slug)
	}
	return nil
}

// slugExistsIn builds the existence check against the table the current
// statement targets, outside the statement's own clauses.
func slugExistsIn(tx *gorm.DB) slugs.ExistsFunc {
	table := tx.Statement.Table
	return func(candidate string) (bool, error) {
		var count int64
		err := tx.Session(&gorm.Session{NewDB: true}).
			Table(table).
			Where("slug = ?", candidate).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		return count > 0, nil
	}
}
