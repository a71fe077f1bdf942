package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	list := All()
	require.Len(t, list, 31)
	assert.Equal(t, "USD", list[0].Code)
	assert.Equal(t, "TRY", list[30].Code)

	seen := map[string]bool{}
	for _, c := range list {
		assert.False(t, seen[c.Code], "duplicate %s", c.Code)
		seen[c.Code] = true
		assert.NotEmpty(t, c.Symbol)
	}

	list[0].Code = "XXX"
	assert.Equal(t, "USD", All()[0].Code)
}

func TestLookup(t *testing.T) {
	c, err := Lookup(" inr ")
	require.NoError(t, err)
	assert.Equal(t, Currency{"INR", "₹", "Indian Rupee"}, c)

	_, err = Lookup("ABC")
	assert.ErrorIs(t, err, ErrUnknown)

	assert.Equal(t, "USD", Default().Code)
	assert.Equal(t, 3, Index("inr"))
	assert.Equal(t, -1, Index("ABC"))
	assert.Equal(t, "EUR (€) Euro", All()[1].Label())
}
