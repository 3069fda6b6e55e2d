package team

// BaseScore is the score every team starts with and returns to on a score reset.
const BaseScore = 1200

// MaxNameLength is the longest accepted team name, in bytes.
const MaxNameLength = 255

// Messages reported when a team name is rejected.
const (
	NameRequiredMessage = "Team name required"
	NameTooLongMessage  = "Team name must be at most 255 characters"
)

// Team represents a row in the teams table.
type Team struct {
	Name  string
	Score int
}
