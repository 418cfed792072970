package cli

import (
	"testing"

	"erpctl/internal/erp"

	"github.com/stretchr/testify/assert"
)

func TestGotoClampsToKnownTotals(t *testing.T) {
	s := NewListState("", 10)
	s.Observe(erp.Page{CurrentPage: 1, TotalPages: 2, TotalCount: 12, Limit: 10})

	assert.Equal(t, 2, s.Goto(3))
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, 2, s.Goto(2))
	assert.Equal(t, 1, s.Goto(0))
	assert.Equal(t, 1, s.Goto(-4))
}

func TestGotoBeforeFirstFetchOnlyFloors(t *testing.T) {
	s := NewListState("", 10)

	// Nothing observed yet, so a high page rides through and the backend
	// gets to answer it.
	assert.Equal(t, 7, s.Goto(7))
	assert.Equal(t, 1, s.Goto(0))
}

func TestGotoIgnoresEmptyResultTotals(t *testing.T) {
	s := NewListState("missing", 10)
	s.Observe(erp.Page{CurrentPage: 1, TotalPages: 0, TotalCount: 0, Limit: 10})

	assert.Equal(t, 2, s.Goto(2))
}

func TestObserveAdoptsServerPage(t *testing.T) {
	s := NewListState("", 10)
	s.Goto(5)
	s.Observe(erp.Page{CurrentPage: 3, TotalPages: 3, TotalCount: 25, Limit: 10})

	assert.Equal(t, 3, s.Page)
	if assert.NotNil(t, s.Known()) {
		assert.Equal(t, 25, s.Known().TotalCount)
	}
}

func TestInvalidateForgetsTotals(t *testing.T) {
	s := NewListState("", 10)
	s.Observe(erp.Page{CurrentPage: 2, TotalPages: 2, TotalCount: 12, Limit: 10})
	s.Invalidate()

	assert.Nil(t, s.Known())
	assert.Equal(t, 9, s.Goto(9))
}

func TestOptionsCarryCursor(t *testing.T) {
	s := NewListState("steel", 25)
	s.Goto(2)

	opts := s.Options()
	assert.Equal(t, "steel", opts.Search)
	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 25, opts.Limit)
}
