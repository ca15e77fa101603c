// Package result derives the qualitative remark for a finished match from
// its raw score text.
package result

import (
	"regexp"
	"strconv"
)

// Remark tier labels, keyed off the absolute difference between the two
// teams' summed game scores.
const (
	RemarkClose    = "Nice Close Game!"
	RemarkFought   = "Well Fought Match!"
	RemarkDecisive = "Decisive Victory!"
)

var scoreDigits = regexp.MustCompile(`\d+`)

// ComputeRemark extracts the integers from a free-form score string such as
// "21-19" or "21-15, 18-21, 21-17" and maps the score difference to a remark
// tier. Scores alternate team 1, team 2. A malformed score (fewer than two
// integers, or an odd count) yields an empty remark rather than an error.
func ComputeRemark(rawScore string) string {
	found := scoreDigits.FindAllString(rawScore, -1)
	if len(found) < 2 || len(found)%2 != 0 {
		return ""
	}

	var team1, team2 int
	for i, s := range found {
		n, err := strconv.Atoi(s)
		if err != nil {
			return ""
		}
		if i%2 == 0 {
			team1 += n
		} else {
			team2 += n
		}
	}

	diff := team1 - team2
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff <= 2:
		return RemarkClose
	case diff <= 5:
		return RemarkFought
	default:
		return RemarkDecisive
	}
}
