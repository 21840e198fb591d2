// Package models holds the records medfinder reads from and writes to the store.
package models

import "strconv"

// Doctor is a row of the doctors table. The application never modifies it;
// rows come from the store or from a seed file.
type Doctor struct {
	Name          string  `db:"name" yaml:"name"`
	Specialty     string  `db:"specialty" yaml:"specialty"`
	Rating        float64 `db:"rating" yaml:"rating"`
	Education     string  `db:"education" yaml:"education"`
	Description   string  `db:"description" yaml:"description"`
	ContactNumber string  `db:"contact_number" yaml:"contact_number"`
	Symptoms      string  `db:"symptoms" yaml:"symptoms"`
}

// DoctorRow is the six-column projection shown in search results. Text
// columns that are NULL in the store come back empty; a NULL rating sets
// Unrated.
type DoctorRow struct {
	Name          string
	Specialty     string
	Rating        float64
	Unrated       bool
	Education     string
	Description   string
	ContactNumber string
}

// DoctorColumns are the result table headings, in display order.
var DoctorColumns = []string{"Name", "Specialty", "Rating", "Education", "Description", "Contact Number"}

// Row returns the display projection of d.
func (d Doctor) Row() DoctorRow {
	return DoctorRow{
		Name:          d.Name,
		Specialty:     d.Specialty,
		Rating:        d.Rating,
		Education:     d.Education,
		Description:   d.Description,
		ContactNumber: d.ContactNumber,
	}
}

// Cells renders r as strings in DoctorColumns order. An unrated row has an
// empty Rating cell.
func (r DoctorRow) Cells() []string {
	rating := ""
	if !r.Unrated {
		rating = strconv.FormatFloat(r.Rating, 'f', -1, 64)
	}
	return []string{
		r.Name,
		r.Specialty,
		rating,
		r.Education,
		r.Description,
		r.ContactNumber,
	}
}
