package nyan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreLine(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Nyanyanyanyan!!! 0 walls."},
		{1, "Nyanyanyanyan!!! 1 wall."},
		{5, "Nyanyanyanyan!!! 5 walls."},
		{11, "Nyanyanyanyan!!! 11 walls."},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ScoreLine(tc.score))
		assert.Equal(t, tc.want, Report{Score: tc.score}.ScoreLine())
	}
}

func TestExitLine(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Nyan's dead... 0 walls."},
		{1, "Nyan's dead... 1 wall."},
		{5, "Nyan's dead... 5 walls."},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ExitLine(tc.score))
		assert.Equal(t, tc.want, Report{Score: tc.score, Reason: EndCollision}.ExitLine())
	}
}
