package queries

import (
	"errors"
	"strings"

	"quickdrop/internal/pkg/errs"
	"quickdrop/internal/pkg/guard"
)

// MaxSearchResults caps an admin user search.
const MaxSearchResults = 50

var ErrSearchUsersQueryIsNotConstructed = errors.New(
	"SearchUsersQuery must be created via NewSearchUsersQuery constructor",
)

// SearchUsersQuery is a case-insensitive substring match on user email.
type SearchUsersQuery struct {
	term  string
	guard guard.ConstructorGuard
}

func NewSearchUsersQuery(term string) (SearchUsersQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchUsersQuery{}, errs.NewValueIsRequiredError("email")
	}
	return SearchUsersQuery{term: term, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchUsersQuery) Term() string { return q.term }

func (q SearchUsersQuery) Validate() error {
	return q.guard.Validate(ErrSearchUsersQueryIsNotConstructed)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// pattern treats the term literally: LIKE wildcards typed by the admin match
// themselves.
func (q SearchUsersQuery) pattern() string {
	return "%" + likeEscaper.Replace(q.term) + "%"
}
