package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorRow_Cells(t *testing.T) {
	d := Doctor{
		Name: "Dr. A", Specialty: "Cardiology", Rating: 4.5, Education: "MD",
		Description: "treats heart", ContactNumber: "555-0100", Symptoms: "chest pain, fatigue",
	}

	cells := d.Row().Cells()

	assert.Equal(t, []string{"Dr. A", "Cardiology", "4.5", "MD", "treats heart", "555-0100"}, cells)
	assert.Len(t, cells, len(DoctorColumns))
}

func TestDoctorRow_Cells_WholeRating(t *testing.T) {
	assert.Equal(t, "5", DoctorRow{Rating: 5}.Cells()[2])
}

func TestDoctorRow_Cells_Unrated(t *testing.T) {
	cells := DoctorRow{Name: "Dr. N", Unrated: true}.Cells()

	assert.Equal(t, []string{"Dr. N", "", "", "", "", ""}, cells)
}
