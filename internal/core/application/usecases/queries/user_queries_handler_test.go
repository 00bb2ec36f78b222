package queries_test

import (
	"context"

	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/user"
	"quickdrop/internal/pkg/errs"
)

func (suite *QueryHandlersTestSuite) TestGetUserRole_ReturnsStoredRole() {
	suite.seedUser("boss@x.com", user.RoleAdmin)

	query, err := queries.NewGetUserRoleQuery("Boss@X.com")
	suite.Require().NoError(err)

	role, err := queries.NewGetUserRoleQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("admin", role)
}

func (suite *QueryHandlersTestSuite) TestGetUserRole_UnknownEmail_ReturnsNotFound() {
	query, err := queries.NewGetUserRoleQuery("ghost@x.com")
	suite.Require().NoError(err)

	_, err = queries.NewGetUserRoleQueryHandler(suite.db).Handle(context.Background(), query)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestSearchUsers_CaseInsensitiveSubstring() {
	suite.seedUser("karim@quickdrop.com", user.RoleUser)
	suite.seedUser("rahim@quickdrop.com", user.RoleRider)
	suite.seedUser("someone@gmail.com", user.RoleUser)

	query, err := queries.NewSearchUsersQuery("QUICKDROP")
	suite.Require().NoError(err)

	result, err := queries.NewSearchUsersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("karim@quickdrop.com", result[0].Email)
	suite.Equal("user", result[0].Role)
	suite.Equal("rahim@quickdrop.com", result[1].Email)
	suite.Equal("rider", result[1].Role)
}

func (suite *QueryHandlersTestSuite) TestSearchUsers_WildcardsMatchLiterally() {
	suite.seedUser("a_b@x.com", user.RoleUser)
	suite.seedUser("axb@x.com", user.RoleUser)

	query, err := queries.NewSearchUsersQuery("a_b")
	suite.Require().NoError(err)

	result, err := queries.NewSearchUsersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("a_b@x.com", result[0].Email)

	query, err = queries.NewSearchUsersQuery("%")
	suite.Require().NoError(err)

	result, err = queries.NewSearchUsersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}
