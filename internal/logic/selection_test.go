package logic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectdrop/internal/domain"
)

var (
	optA = domain.Option{Label: "Javascript", Value: "javascript"}
	optB = domain.Option{Label: "Typescript", Value: "typescript"}
	optC = domain.Option{Label: "Nodejs", Value: "nodejs"}
)

func TestSelectMultiIsIdempotent(t *testing.T) {
	for _, o := range techCatalog() {
		once := Select(nil, o, true)
		twice := Select(once, o, true)
		assert.Equal(t, once, twice, "re-selecting %s", o.Value)
		assert.Len(t, twice, 1)
	}
}

func TestSelectSingleReplaces(t *testing.T) {
	catalog := techCatalog()
	for _, o1 := range catalog {
		for _, o2 := range catalog {
			got := Select(Select(nil, o1, false), o2, false)
			assert.Equal(t, []domain.Option{o2}, got)
		}
	}
}

func TestSelectMultiAppends(t *testing.T) {
	got := Select(nil, optA, true)
	got = Select(got, optB, true)
	got = Select(got, optC, true)
	assert.Equal(t, []string{"javascript", "typescript", "nodejs"}, domain.Values(got))
}

func TestSelectDoesNotMutateInput(t *testing.T) {
	current := make([]domain.Option, 2, 10) // spare capacity must not be written through
	current[0], current[1] = optA, optB

	next := Select(current, optC, true)
	require.Len(t, next, 3)
	assert.Equal(t, []domain.Option{optA, optB}, current)
	assert.Equal(t, domain.Option{}, current[:3][2])

	same := Select(current, optA, true)
	same[0].Label = "changed"
	assert.Equal(t, "Javascript", current[0].Label)
}

func TestSelectClearsAdvisoryFlag(t *testing.T) {
	flagged := optA
	flagged.Selected = true
	got := Select(nil, flagged, true)
	assert.False(t, got[0].Selected)
}

func TestDeleteThenReAddAppends(t *testing.T) {
	current := []domain.Option{optA, optB, optC}

	afterDelete, err := Deselect(current, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{optA, optC}, afterDelete)

	readded := Select(afterDelete, optB, true)
	assert.Equal(t, []domain.Option{optA, optC, optB}, readded)

	assert.Equal(t, []domain.Option{optA, optB, optC}, current, "input must be untouched")
}

func TestDeselectOutOfRange(t *testing.T) {
	current := []domain.Option{optA, optB}

	for _, idx := range []int{5, 2, -1} {
		got, err := Deselect(current, idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var idxErr *IndexError
		require.True(t, errors.As(err, &idxErr))
		assert.Equal(t, idx, idxErr.Index)
		assert.Equal(t, 2, idxErr.Len)

		assert.Equal(t, current, got)
		assert.Equal(t, []domain.Option{optA, optB}, current)
	}
}

func TestDeselectEdges(t *testing.T) {
	got, err := Deselect([]domain.Option{optA}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Deselect(nil, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	got, err = Deselect([]domain.Option{optA, optB, optC}, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{optA, optB}, got)
}

func TestDiff(t *testing.T) {
	added, removed := Diff([]domain.Option{optA, optB}, []domain.Option{optB, optC})
	assert.Equal(t, []string{"nodejs"}, added)
	assert.Equal(t, []string{"javascript"}, removed)

	added, removed = Diff(nil, nil)
	assert.Empty(t, added)
	assert.Empty(t, removed)
}
