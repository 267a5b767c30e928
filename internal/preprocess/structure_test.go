package preprocess

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleDeterminism(t *testing.T) {
	input := []any{int64(1), int64(2), int64(3), int64(4), int64(5)}

	first := Shuffle(input, 42)
	second := Shuffle(input, 42)
	assert.Equal(t, first, second, "same seed must yield the same order")
}

func TestShufflePreservesMultiset(t *testing.T) {
	input := []any{int64(3), int64(1), int64(2), int64(2), int64(5)}
	got := Shuffle(input, 7)

	require.Len(t, got, len(input))
	sorted := func(vs []any) []int64 {
		ints := make([]int64, len(vs))
		for i, v := range vs {
			ints[i] = v.(int64)
		}
		sort.Slice(ints, func(a, b int) bool { return ints[a] < ints[b] })
		return ints
	}
	assert.Equal(t, sorted(input), sorted(got))
}

func TestShuffleDifferentSeeds(t *testing.T) {
	input := make([]any, 20)
	for i := range input {
		input[i] = int64(i)
	}

	a := Shuffle(input, 1)
	b := Shuffle(input, 2)
	assert.NotEqual(t, a, b, "different seeds should yield different orders")
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	input := []any{int64(1), int64(2), int64(3), int64(4), int64(5)}
	_ = Shuffle(input, 99)
	assert.Equal(t, []any{int64(1), int64(2), int64(3), int64(4), int64(5)}, input)
}

func TestShuffleEdgeCases(t *testing.T) {
	assert.Equal(t, []any{}, Shuffle([]any{}, 1))
	assert.Equal(t, []any{"only"}, Shuffle([]any{"only"}, 1))
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input []any
		want  []any
	}{
		{
			name: "one level",
			input: []any{
				[]any{int64(1), int64(2)},
				[]any{int64(3), int64(4)},
				[]any{int64(5)},
			},
			want: []any{int64(1), int64(2), int64(3), int64(4), int64(5)},
		},
		{
			name: "arbitrary depth",
			input: []any{
				int64(1),
				[]any{int64(2), []any{int64(3), []any{int64(4)}}},
				int64(5),
			},
			want: []any{int64(1), int64(2), int64(3), int64(4), int64(5)},
		},
		{
			name:  "already flat",
			input: []any{int64(1), "a", nil},
			want:  []any{int64(1), "a", nil},
		},
		{
			name:  "empty nested lists contribute nothing",
			input: []any{[]any{}, int64(1), []any{[]any{}}},
			want:  []any{int64(1)},
		},
		{
			name:  "empty input",
			input: []any{},
			want:  []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.input))
		})
	}
}

func TestFlattenIdempotentOnFlat(t *testing.T) {
	flat := []any{int64(1), "two", 3.0}
	assert.Equal(t, flat, Flatten(Flatten(flat)))
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name  string
		input []any
		want  []any
	}{
		{
			name:  "first occurrence wins",
			input: []any{int64(1), int64(2), int64(2), int64(3), int64(1)},
			want:  []any{int64(1), int64(2), int64(3)},
		},
		{
			name:  "mixed types",
			input: []any{"a", int64(1), "a", nil, nil, int64(1)},
			want:  []any{"a", int64(1), nil},
		},
		{
			name:  "no duplicates",
			input: []any{int64(1), int64(2), int64(3)},
			want:  []any{int64(1), int64(2), int64(3)},
		},
		{
			name:  "numerically equal values dedupe across types",
			input: []any{int64(1), 1.0, true, 2.5, int64(2), 2.0},
			want:  []any{int64(1), 2.5, int64(2)},
		},
		{
			name:  "numeric strings stay distinct from numbers",
			input: []any{int64(1), "1", 1.0},
			want:  []any{int64(1), "1"},
		},
		{
			name: "nested lists compared by value",
			input: []any{
				[]any{int64(1), int64(2)},
				[]any{int64(1), int64(2)},
				[]any{int64(3)},
			},
			want: []any{
				[]any{int64(1), int64(2)},
				[]any{int64(3)},
			},
		},
		{
			name:  "empty input",
			input: []any{},
			want:  []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unique(tt.input))
		})
	}
}

func TestUniqueIdempotent(t *testing.T) {
	input := []any{int64(1), int64(2), int64(2), int64(3), int64(1)}
	once := Unique(input)
	assert.Equal(t, once, Unique(once))
}
