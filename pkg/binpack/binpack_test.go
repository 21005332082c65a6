package binpack_test

import (
	"errors"
	"testing"

	"github.com/piwi3910/BoxFit/pkg/binpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_Cards(t *testing.T) {
	deck := binpack.Input[uint16]{ID: "deck", Dims: [3]uint16{2, 8, 12}}
	die := binpack.Input[uint16]{ID: "die", Dims: [3]uint16{8, 8, 8}}

	groups, err := binpack.Pack([3]uint16{8, 8, 12}, []binpack.Input[uint16]{deck, deck, die, deck, deck})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"deck", "deck", "deck", "deck"}, {"die"}}, groups)
}

func TestPack_Infeasible(t *testing.T) {
	groups, err := binpack.Pack([3]float64{1, 1, 1}, []binpack.Input[float64]{
		{ID: "ok", Dims: [3]float64{0.5, 0.5, 0.5}},
		{ID: "too-big", Dims: [3]float64{1, 1, 1.5}},
	})
	assert.Nil(t, groups)
	assert.ErrorIs(t, err, binpack.ErrItemsNoFit)

	var fe *binpack.FeasibilityError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"too-big"}, fe.Items)
}

func TestPack_Options(t *testing.T) {
	items := make([]binpack.Input[int], 10)
	for i := range items {
		items[i] = binpack.Input[int]{ID: "u", Dims: [3]int{1, 1, 1}}
	}

	_, err := binpack.Pack([3]int{2, 2, 2}, items, binpack.WithMaxIterations[int](2))
	assert.ErrorIs(t, err, binpack.ErrIterationLimit)

	groups, err := binpack.Pack([3]int{2, 2, 2}, items, binpack.WithTolerance(0))
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 8)
	assert.Len(t, groups[1], 2)
}

func TestSplit(t *testing.T) {
	leftovers, err := binpack.Split([3]int{2, 1, 2}, [3]int{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, [][3]int{{1, 1, 1}, {1, 1, 2}}, leftovers)

	_, err = binpack.Split([3]int{1, 1, 1}, [3]int{2, 1, 1})
	assert.Error(t, err)
}

func TestFits(t *testing.T) {
	assert.True(t, binpack.Fits([3]int{3, 1, 2}, [3]int{2, 3, 1}))
	assert.False(t, binpack.Fits([3]int{3, 1, 2}, [3]int{2, 2, 2}))
}
