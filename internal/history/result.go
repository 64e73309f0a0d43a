package history

import "fmt"

// Result is the persisted outcome of one finished session.
type Result struct {
	Win   bool   `json:"win"`
	Time  int    `json:"time"`
	Lives int    `json:"lives"`
	Mode  string `json:"mode"`
}

// Label is the one-line summary the history panel shows.
func (r Result) Label() string {
	level := "Hard"
	if r.Mode == "shapes" {
		level = "Easy"
	}
	outcome := "Lost"
	if r.Win {
		outcome = "Win"
	}
	return fmt.Sprintf("Game %s: %s - Time: %d seconds - Remaining lives: %d", level, outcome, r.Time, r.Lives)
}
