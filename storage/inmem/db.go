package inmemdb

import (
	"sync"

	"github.com/trezcool/gpacalc/core/gpa"
)

type (
	DB struct {
		form *formTable
	}

	// formTable holds the one Form of the running session.
	formTable struct {
		sync.RWMutex
		row gpa.Form
	}
)

func Open() (*DB, error) {
	db := &DB{
		form: &formTable{row: gpa.NewForm()},
	}
	return db, nil
}
