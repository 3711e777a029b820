package inmemdb

import (
	"context"

	"github.com/trezcool/gpacalc/core/gpa"
)

type formRepository struct {
	db *formTable
}

var _ gpa.Repository = (*formRepository)(nil)

func NewFormRepository(db *DB) gpa.Repository {
	return &formRepository{db: db.form}
}

func (repo *formRepository) GetForm(ctx context.Context) (gpa.Form, error) {
	if err := ctx.Err(); err != nil {
		return gpa.Form{}, err
	}
	repo.db.RLock()
	defer repo.db.RUnlock()

	return repo.db.row.Clone(), nil
}

func (repo *formRepository) UpdateForm(ctx context.Context, fn func(*gpa.Form) error) (gpa.Form, error) {
	if err := ctx.Err(); err != nil {
		return gpa.Form{}, err
	}
	repo.db.Lock()
	defer repo.db.Unlock()

	// the stored row only changes when fn succeeds
	form := repo.db.row.Clone()
	if err := fn(&form); err != nil {
		return gpa.Form{}, err
	}
	repo.db.row = form
	return form.Clone(), nil
}

func (repo *formRepository) ResetForm(ctx context.Context) (gpa.Form, error) {
	if err := ctx.Err(); err != nil {
		return gpa.Form{}, err
	}
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.row = gpa.NewForm()
	return repo.db.row.Clone(), nil
}
