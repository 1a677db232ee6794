package model

// ID identifies a todo within one session. Only uniqueness matters;
// callers must not read meaning into its encoding.
type ID string

// Todo is the domain model for a list entry.
// Text is fixed at creation; only Completed changes afterwards.
type Todo struct {
	ID        ID
	Text      string
	Completed bool
}
