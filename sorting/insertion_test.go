package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlviz/sorting"
)

func TestInsertion_ShiftThenPlace(t *testing.T) {
	_, rec, err := runFast(t, sorting.Insertion, []int{2, 1})
	require.NoError(t, err)

	frames := rec.Arrays()
	// compare, shift write, settle, key write, settle, terminal.
	require.Len(t, frames, 6)

	trajectory := frameValues(frames)
	assert.Equal(t, []int{2, 1}, trajectory[0])
	// The shift duplicates the greater element before the key lands.
	assert.Equal(t, []int{2, 2}, trajectory[1])
	assert.Equal(t, []int{1, 2}, trajectory[3])
	assert.Equal(t, []int{1, 2}, trajectory[5])

	assert.True(t, frames[1][1].Swapped)
	assert.True(t, frames[3][0].Swapped)
	for _, el := range frames[5] {
		assert.True(t, el.Sorted)
	}
}

func TestInsertion_FailingComparisonIsPublished(t *testing.T) {
	_, rec, err := runFast(t, sorting.Insertion, []int{1, 2})
	require.NoError(t, err)

	frames := rec.Arrays()
	// The single probe fails (1 ≤ 2): compare, settle, terminal.
	require.Len(t, frames, 3)
	assert.True(t, frames[0][0].Compared)
	assert.True(t, frames[0][1].Compared)
}

func TestInsertion_EqualKeysDoNotShift(t *testing.T) {
	_, rec, err := runFast(t, sorting.Insertion, []int{5, 5, 5})
	require.NoError(t, err)

	// Strictly-greater rule: equal neighbors never move.
	for fi, frame := range rec.Arrays() {
		for i, el := range frame {
			assert.False(t, el.Swapped, "frame %d element %d", fi, i)
		}
		assert.Equal(t, []int{5, 5, 5}, frame.Values())
	}
}

func TestInsertion_StopsAtFirstNotGreater(t *testing.T) {
	_, rec, err := runFast(t, sorting.Insertion, []int{1, 3, 2})
	require.NoError(t, err)

	frames := rec.Arrays()
	// Key 3: one failing probe. Key 2: shift of 3, then the probe
	// against 1 fails, then 2 lands.
	trajectory := frameValues(frames)
	assert.Equal(t, []int{1, 3, 2}, trajectory[0])
	assert.Equal(t, []int{1, 3, 3}, trajectory[3])
	final := trajectory[len(trajectory)-1]
	assert.Equal(t, []int{1, 2, 3}, final)
}
