package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name     string
		values   []int
		want     int
		wantUsed []int
		wantDesc string
	}{
		{name: "empty", values: nil, want: 0, wantUsed: []int{}},
		{name: "single one", values: []int{1}, want: 100, wantUsed: []int{1}, wantDesc: "Single 1"},
		{name: "single five", values: []int{5}, want: 50, wantUsed: []int{5}, wantDesc: "Single 5"},
		{name: "no scoring dice", values: []int{2, 3, 4, 6}, want: 0, wantUsed: []int{}},
		{name: "three ones", values: []int{1, 1, 1}, want: 1000, wantUsed: []int{1, 1, 1}, wantDesc: "Three 1s"},
		{name: "four ones", values: []int{1, 1, 1, 1}, want: 2000},
		{name: "five ones", values: []int{1, 1, 1, 1, 1}, want: 4000},
		{name: "six ones", values: []int{1, 1, 1, 1, 1, 1}, want: 8000, wantDesc: "Six 1s"},
		{name: "three twos", values: []int{2, 2, 2}, want: 200},
		{name: "three sixes", values: []int{6, 6, 6}, want: 600},
		{name: "four fours", values: []int{4, 4, 4, 4}, want: 800, wantDesc: "Four 4s"},
		{name: "six fives", values: []int{5, 5, 5, 5, 5, 5}, want: 4000},
		{name: "straight", values: []int{1, 2, 3, 4, 5, 6}, want: 1500, wantUsed: []int{1, 2, 3, 4, 5, 6}, wantDesc: "Straight"},
		{name: "straight unordered", values: []int{6, 4, 2, 5, 3, 1}, want: 1500},
		{name: "three pairs", values: []int{2, 2, 4, 4, 6, 6}, want: 1500, wantUsed: []int{2, 2, 4, 4, 6, 6}, wantDesc: "Three Pairs"},
		{name: "three pairs with ones", values: []int{1, 5, 1, 5, 3, 3}, want: 1500},
		{name: "four and a pair is not three pairs", values: []int{1, 1, 1, 1, 5, 5}, want: 2100, wantDesc: "Four 1s, 2 Single 5s"},
		{name: "two triples sum independently", values: []int{1, 1, 1, 2, 2, 2}, want: 1200, wantDesc: "Three 1s, Three 2s"},
		{name: "five distinct is not a straight", values: []int{1, 2, 3, 4, 5}, want: 150, wantUsed: []int{1, 5}},
		{name: "triple plus singles", values: []int{3, 3, 3, 1, 5, 2}, want: 450, wantUsed: []int{3, 3, 3, 1, 5}, wantDesc: "Three 3s, Single 1, Single 5"},
		{name: "out of range faces ignored", values: []int{0, 7, 5}, want: 50, wantUsed: []int{5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.values)
			assert.Equal(t, tc.want, got.Score)
			if tc.wantUsed != nil {
				assert.Equal(t, tc.wantUsed, got.UsedDice)
			}
			if tc.wantDesc != "" {
				assert.Equal(t, tc.wantDesc, got.Description)
			}
		})
	}
}

func TestScore_NeverNegativeAndPure(t *testing.T) {
	// every multiset of up to six dice
	var walk func(prefix []int, min int)
	walk = func(prefix []int, min int) {
		first := Score(prefix)
		second := Score(prefix)
		assert.GreaterOrEqual(t, first.Score, 0)
		assert.Equal(t, first, second)
		assert.LessOrEqual(t, len(first.UsedDice), len(prefix))
		if len(prefix) == 6 {
			return
		}
		for v := min; v <= 6; v++ {
			walk(append(append([]int(nil), prefix...), v), v)
		}
	}
	walk(nil, 1)
}

func TestScore_DoesNotMutateInput(t *testing.T) {
	in := []int{5, 1, 1, 1}
	Score(in)
	assert.Equal(t, []int{5, 1, 1, 1}, in)
}

func TestConsumes(t *testing.T) {
	assert.True(t, Consumes([]int{1, 5}))
	assert.True(t, Consumes([]int{2, 2, 2}))
	assert.False(t, Consumes([]int{1, 2}))
	assert.False(t, Consumes([]int{2, 2}))
	assert.False(t, Consumes(nil))
}
