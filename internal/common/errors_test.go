package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputError(t *testing.T) {
	err := &InputError{Err: ErrFieldsRequired}
	assert.Equal(t, "all fields are required", err.Error())
	assert.ErrorIs(t, err, ErrFieldsRequired)

	named := &InputError{Field: "email", Err: ErrFieldsRequired}
	assert.Equal(t, "email: all fields are required", named.Error())
}

func TestConnectionError_MessageIsVerbatim(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	err := fmt.Errorf("search: %w", &ConnectionError{Driver: "pgx", Err: cause})

	var ce *ConnectionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, cause.Error(), ce.Error())
	assert.Equal(t, "pgx", ce.Driver)
	assert.ErrorIs(t, err, cause)
}

func TestQueryError_MessageIsVerbatim(t *testing.T) {
	cause := errors.New(`relation "doctors" does not exist`)
	err := &QueryError{Op: "search doctors", Err: cause}

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
}
