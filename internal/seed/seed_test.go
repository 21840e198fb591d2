package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/medfinder/internal/database/dbtest"
	"github.com/dmitrijs2005/medfinder/internal/dbx"
	"github.com/dmitrijs2005/medfinder/internal/models"
	"github.com/dmitrijs2005/medfinder/internal/repositories/doctors"
)

const sample = `
doctors:
  - name: Dr. A
    specialty: Cardiology
    rating: 4.5
    education: MD
    description: treats heart
    contact_number: "555-0100"
    symptoms: chest pain, fatigue
  - name: Dr. B
    specialty: General
    rating: 3.9
    education: MBBS
    description: family doctor
    contact_number: "555-0101"
    symptoms: fever, cough
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, f.Doctors, 2)

	assert.Equal(t, models.Doctor{
		Name: "Dr. A", Specialty: "Cardiology", Rating: 4.5, Education: "MD",
		Description: "treats heart", ContactNumber: "555-0100", Symptoms: "chest pain, fatigue",
	}, f.Doctors[0])
}

func TestDecode_EmptyAndInvalid(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Doctors)

	_, err = Decode(strings.NewReader("doctors:\n  - nmae: typo\n"))
	require.Error(t, err)

	_, err = Decode(strings.NewReader("doctors: [\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doctors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := Load(path)
	require.NoError(t, err)

	gw := dbtest.NewGateway(t)
	n, err := Apply(context.Background(), gw, gw.Repos().Doctors, f)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, dbtest.CountRows(t, gw, "doctors"))
}

type failingRepo struct {
	doctors.Repository
	failOn string
}

func (r failingRepo) Create(ctx context.Context, d *models.Doctor) error {
	if d.Name == r.failOn {
		return errors.New("constraint violated")
	}
	return r.Repository.Create(ctx, d)
}

func TestApply_AllOrNothing(t *testing.T) {
	f, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	gw := dbtest.NewGateway(t)
	repo := func(tx dbx.DBTX) doctors.Repository {
		return failingRepo{Repository: gw.Repos().Doctors(tx), failOn: "Dr. B"}
	}

	n, err := Apply(context.Background(), gw, repo, f)
	require.EqualError(t, err, "doctor 2 (Dr. B): constraint violated")
	assert.Zero(t, n)
	assert.Zero(t, dbtest.CountRows(t, gw, "doctors"))
}
