package rediscache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"quickdrop/internal/adapters/out/rediscache"
	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RoleCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	cache     *rediscache.RoleCache
}

func (suite *RoleCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	suite.Require().NoError(err)

	cache, err := rediscache.Connect(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	suite.Require().NoError(err)
	suite.cache = cache
}

func (suite *RoleCacheIntegrationTestSuite) TearDownSuite() {
	if suite.cache != nil {
		suite.Require().NoError(suite.cache.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RoleCacheIntegrationTestSuite) TestMiss() {
	role, ok, err := suite.cache.Get(context.Background(), kernel.MustNewEmail("nobody@x.com"))

	suite.Require().NoError(err)
	suite.False(ok)
	suite.Empty(role)
}

func (suite *RoleCacheIntegrationTestSuite) TestSetThenGet() {
	ctx := context.Background()
	email := kernel.MustNewEmail("rider@x.com")

	suite.Require().NoError(suite.cache.Set(ctx, email, user.RoleRider, time.Minute))

	role, ok, err := suite.cache.Get(ctx, email)
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal(user.RoleRider, role)
}

func (suite *RoleCacheIntegrationTestSuite) TestInvalidate() {
	ctx := context.Background()
	email := kernel.MustNewEmail("boss@x.com")
	suite.Require().NoError(suite.cache.Set(ctx, email, user.RoleAdmin, time.Minute))

	suite.Require().NoError(suite.cache.Invalidate(ctx, email))

	_, ok, err := suite.cache.Get(ctx, email)
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *RoleCacheIntegrationTestSuite) TestEntryExpires() {
	ctx := context.Background()
	email := kernel.MustNewEmail("brief@x.com")
	suite.Require().NoError(suite.cache.Set(ctx, email, user.RoleUser, time.Second))

	suite.Eventually(func() bool {
		_, ok, err := suite.cache.Get(ctx, email)
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestRoleCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RoleCacheIntegrationTestSuite))
}

func TestConnect_BadURL(t *testing.T) {
	_, err := rediscache.Connect(context.Background(), "http://not-redis")
	require.Error(t, err)
}
