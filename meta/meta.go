// meta/meta.go
package meta

// DefaultDepth is the number of plies searched per automated move.
const DefaultDepth = 5

// Goroutines is the default root fan-out of the search.
const Goroutines = 1

// Games is the number of games played per matchup in experiments.
const Games = 10

// MaxTurns bounds a single game; no variant needs more than rows*cols turns.
const MaxTurns = 300
