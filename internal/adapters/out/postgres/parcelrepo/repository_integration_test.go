package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelms/internal/adapters/out/postgres/parcelrepo"
	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite exercises parcel persistence against a
// real PostgreSQL container.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	history    *parcelrepo.GormStatusHistoryRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&parcelrepo.HistoryEntryDTO{},
	))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels, parcel_status_history").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
	suite.history = parcelrepo.NewGormStatusHistoryRepository(suite.db)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_AssignsIdentifier() {
	ctx := context.Background()

	aggregate := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), aggregate).Once()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)
	suite.Positive(aggregate.ID())
	suite.assertParcelCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()

	original := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.ClientID(), retrieved.ClientID())
	suite.True(original.TrackingNumber().IsEqual(retrieved.TrackingNumber()))
	suite.Equal("Mumbai Central", retrieved.Route().From())
	suite.Equal("Pune Station", retrieved.Route().To())
	suite.Require().NotNil(retrieved.Route().Pickup())
	suite.True(retrieved.Route().Pickup().Lat().Equal(decimal.RequireFromString("18.9750000")))
	suite.True(retrieved.Dimensions().Weight().Equal(decimal.RequireFromString("2.00")))
	suite.True(retrieved.Price().Equal(decimal.RequireFromString("75.00")))
	suite.Equal(parcel.StatusRequested, retrieved.Status())
	suite.Equal(int64(1), retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NonExistentParcel_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), 404)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingNumber() {
	ctx := context.Background()

	original := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByTrackingNumber(ctx, original.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	_, err = suite.repository.GetByTrackingNumber(ctx, kernel.NewTrackingNumber())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestExistsTrackingNumber() {
	ctx := context.Background()

	original := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	exists, err := suite.repository.ExistsTrackingNumber(ctx, original.TrackingNumber())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsTrackingNumber(ctx, kernel.NewTrackingNumber())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_AdvancesVersion() {
	ctx := context.Background()

	aggregate := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	adminID := int64(1)
	suite.Require().NoError(loaded.Accept(&adminID))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusAccepted, reloaded.Status())
	suite.Equal(int64(2), reloaded.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()

	aggregate := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Two readers load the same version; the slower writer must lose.
	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	adminID := int64(1)
	suite.Require().NoError(first.Accept(&adminID))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Reject(&adminID, "late"))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var versionErr *errs.VersionIsInvalidError
	suite.Require().ErrorAs(err, &versionErr)

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusAccepted, reloaded.Status())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAppend_StoresHistoryTrail() {
	ctx := context.Background()

	aggregate := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	clientID := int64(9)
	entry, err := parcel.NewHistoryEntry(
		aggregate.ID(), parcel.StatusRequested, "Mumbai Central",
		"Parcel created and awaiting admin acceptance", &clientID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.history.Append(ctx, entry))

	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.HistoryEntryDTO{}).
		Where("parcel_id = ?", aggregate.ID()).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// createTestParcel creates a parcel with coordinates on both route ends.
func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	pickup, err := kernel.NewGeoPoint(
		decimal.RequireFromString("18.975"), decimal.RequireFromString("72.8258"))
	suite.Require().NoError(err)
	drop, err := kernel.NewGeoPoint(
		decimal.RequireFromString("18.5286"), decimal.RequireFromString("73.8748"))
	suite.Require().NoError(err)

	route, err := parcel.NewRoute("Mumbai Central", "Pune Station", &pickup, &drop)
	suite.Require().NoError(err)

	dims, err := parcel.NewDimensions(
		decimal.RequireFromString("2"),
		decimal.RequireFromString("10"),
		decimal.RequireFromString("20"),
		decimal.RequireFromString("15"),
	)
	suite.Require().NoError(err)

	aggregate, err := parcel.NewParcel(
		9,
		kernel.NewTrackingNumber(),
		route,
		dims,
		decimal.RequireFromString("5"),
		decimal.RequireFromString("75.00"),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ParcelRepositoryIntegrationTestSuite) assertParcelCount(expected int) {
	var count int64
	err := suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
