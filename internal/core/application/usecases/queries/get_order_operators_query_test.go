package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetbook/internal/core/application/usecases/queries"
	"fleetbook/internal/pkg/errs"
)

func TestNewGetOrderOperatorsQuery_Success(t *testing.T) {
	query, err := queries.NewGetOrderOperatorsQuery(7)

	require.NoError(t, err)
	assert.Equal(t, 7, query.OrderID())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderOperatorsQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderOperatorsQuery(0)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrderOperatorsQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetOrderOperatorsQuery

	err := query.Validate()

	assert.ErrorIs(t, err, queries.ErrGetOrderOperatorsQueryIsNotConstructed)
}
