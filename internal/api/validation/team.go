package validation

import (
	"strings"

	"github.com/strategiq/scoreboard/internal/team"
)

// AddTeamRequest mirrors the fields needed for add team validation.
type AddTeamRequest struct {
	Name string
}

// ValidateAddTeamRequest validates the fields of an add team request.
func ValidateAddTeamRequest(req AddTeamRequest) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: team.NameRequiredMessage})
	} else if len(req.Name) > team.MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: team.NameTooLongMessage})
	}

	return errs
}
