package nyan

import "fmt"

// Report summarizes a finished run.
type Report struct {
	Score  int
	Reason EndReason
	Ticks  int
}

// ScoreLine is the running score text.
func (r Report) ScoreLine() string { return ScoreLine(r.Score) }

// ExitLine is the message printed after the run.
func (r Report) ExitLine() string { return ExitLine(r.Score) }

// ScoreLine formats the in-game score text.
func ScoreLine(score int) string {
	if score == 1 {
		return "Nyanyanyanyan!!! 1 wall."
	}
	return fmt.Sprintf("Nyanyanyanyan!!! %d walls.", score)
}

// ExitLine formats the end-of-run message.
func ExitLine(score int) string {
	if score == 1 {
		return "Nyan's dead... 1 wall."
	}
	return fmt.Sprintf("Nyan's dead... %d walls.", score)
}
