// Package scoring evaluates a set of die faces into a score. It is a pure
// function of its input.
package scoring

import (
	"fmt"
	"strings"
)

const (
	// ThreePairsScore is awarded for six dice forming exactly three pairs
	ThreePairsScore = 1500

	// StraightScore is awarded for six dice showing 1 through 6
	StraightScore = 1500

	// SingleOneScore is the value of a 1 not used by any other combination
	SingleOneScore = 100

	// SingleFiveScore is the value of a 5 not used by any other combination
	SingleFiveScore = 50

	// OnesTripleScore is the base for three or more 1s
	OnesTripleScore = 1000
)

// Result is the best score for a set of faces
type Result struct {
	// Score is the total, never negative
	Score int `json:"score"`

	// UsedDice are the face values consumed by scoring combinations
	UsedDice []int `json:"usedDice"`

	// Description names each contributing combination
	Description string `json:"description"`
}

var countWords = map[int]string{3: "Three", 4: "Four", 5: "Five", 6: "Six"}

// Score evaluates faces. Order does not matter; faces outside 1..6 are
// ignored. The first two rules only apply to exactly six dice and take the
// whole roll.
func Score(values []int) Result {
	var counts [7]int
	n := 0
	for _, v := range values {
		if v < 1 || v > 6 {
			continue
		}
		counts[v]++
		n++
	}

	if n == 6 {
		if isThreePairs(counts) {
			return Result{Score: ThreePairsScore, UsedDice: sorted(counts), Description: "Three Pairs"}
		}
		if isStraight(counts) {
			return Result{Score: StraightScore, UsedDice: sorted(counts), Description: "Straight"}
		}
	}

	res := Result{UsedDice: []int{}}
	var parts []string

	for face := 1; face <= 6; face++ {
		c := counts[face]
		if c < 3 {
			continue
		}
		res.Score += kindScore(face, c)
		for i := 0; i < c; i++ {
			res.UsedDice = append(res.UsedDice, face)
		}
		counts[face] = 0
		parts = append(parts, fmt.Sprintf("%s %ds", countWords[c], face))
	}

	if c := counts[1]; c > 0 {
		res.Score += c * SingleOneScore
		for i := 0; i < c; i++ {
			res.UsedDice = append(res.UsedDice, 1)
		}
		parts = append(parts, singles(c, 1))
	}
	if c := counts[5]; c > 0 {
		res.Score += c * SingleFiveScore
		for i := 0; i < c; i++ {
			res.UsedDice = append(res.UsedDice, 5)
		}
		parts = append(parts, singles(c, 5))
	}

	res.Description = strings.Join(parts, ", ")
	return res
}

// kindScore is the n-of-a-kind value: the triple base doubled for every die
// beyond the third
func kindScore(face, count int) int {
	base := face * 100
	if face == 1 {
		base = OnesTripleScore
	}
	return base << (count - 3)
}

func singles(count, face int) string {
	if count == 1 {
		return fmt.Sprintf("Single %d", face)
	}
	return fmt.Sprintf("%d Single %ds", count, face)
}

func isThreePairs(counts [7]int) bool {
	pairs := 0
	for face := 1; face <= 6; face++ {
		switch counts[face] {
		case 0:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 3
}

func isStraight(counts [7]int) bool {
	for face := 1; face <= 6; face++ {
		if counts[face] != 1 {
			return false
		}
	}
	return true
}

func sorted(counts [7]int) []int {
	out := make([]int, 0, 6)
	for face := 1; face <= 6; face++ {
		for i := 0; i < counts[face]; i++ {
			out = append(out, face)
		}
	}
	return out
}

// Consumes reports whether every value in selection is used by the result
// of scoring selection, i.e. the selection contains no dead dice.
func Consumes(selection []int) bool {
	if len(selection) == 0 {
		return false
	}
	res := Score(selection)
	return res.Score > 0 && len(res.UsedDice) == len(selection)
}
