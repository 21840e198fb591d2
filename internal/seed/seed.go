// Package seed loads the doctors directory from a YAML file.
//
// File format:
//
//	doctors:
//	  - name: Dr. A
//	    specialty: Cardiology
//	    rating: 4.5
//	    education: MD
//	    description: treats heart
//	    contact_number: 555-0100
//	    symptoms: chest pain, fatigue
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/medfinder/internal/dbx"
	"github.com/dmitrijs2005/medfinder/internal/models"
	"github.com/dmitrijs2005/medfinder/internal/repositories/doctors"
)

type File struct {
	Doctors []models.Doctor `yaml:"doctors"`
}

// Decode reads a seed document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &f, nil
}

func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return Decode(fh)
}

// Transactor runs fn inside one transaction.
type Transactor interface {
	Transact(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error
}

// Apply inserts every doctor of f in a single transaction; either all rows
// are stored or none.
func Apply(ctx context.Context, t Transactor, repo func(dbx.DBTX) doctors.Repository, f *File) (int, error) {
	err := t.Transact(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		r := repo(tx)
		for i := range f.Doctors {
			if err := r.Create(ctx, &f.Doctors[i]); err != nil {
				return fmt.Errorf("doctor %d (%s): %w", i+1, f.Doctors[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(f.Doctors), nil
}
