package queries_test

import (
	"testing"

	"fastfood/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetNewOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetNewOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetNewOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetNewOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetNewOrdersQueryIsNotConstructed)
}
