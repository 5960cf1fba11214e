package driverrepo_test

import (
	"context"
	"testing"

	"tastyfood/internal/adapters/out/postgres/driverrepo"
	"tastyfood/internal/adapters/out/postgres/pgtest"
	"tastyfood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = driverrepo.NewGormDriverRepository(database.DB)
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_StoredDriver() {
	id, err := suite.database.InsertDriver("Ann", "Lee", "Active", true)
	suite.Require().NoError(err)

	d, err := suite.repository.Get(context.Background(), id)

	suite.Require().NoError(err)
	suite.Equal(id, d.ID())
	suite.Equal("Ann Lee", d.FullName())
	suite.True(d.IsAvailable())
	suite.Equal("Active", d.Status())
	suite.Nil(d.HiredAt())

	snap := d.Snapshot()
	suite.Equal("Ann", snap.FirstName)
	suite.Equal("Lee", snap.LastName)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_UnknownDriver_NotFound() {
	_, err := suite.repository.Get(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("driver", notFound.ParamName)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
