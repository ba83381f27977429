package impl

import (
	"context"
	"errors"
	"testing"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	mockRepo "autobid/internal/mocks/repository"
	"autobid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationServiceForTest(t *testing.T) (usecase.LocationUsecase, *mockRepo.MockLocationRepository) {
	repo := mockRepo.NewMockLocationRepository(t)
	srv := NewLocationService(LocationServiceParams{
		LocationRepo: repo,
		Publisher:    newPublisher(t),
		Metrics:      newMetrics(t),
		Logger:       newDiscardLogger(),
	})

	return srv, repo
}

func nodeOf(level entity.LocationLevel, parentID *uuid.UUID, name string) *entity.LocationNode {
	return &entity.LocationNode{ID: uuid.New(), Level: level, ParentID: parentID, Name: name, IsActive: true}
}

func TestLocationService_ImportLocations_CreatesMissingLevels(t *testing.T) {
	srv, repo := newLocationServiceForTest(t)
	ctx := context.Background()

	region := nodeOf(entity.LevelRegion, nil, "NCR")
	repo.EXPECT().FindByName(ctx, entity.LevelRegion, (*uuid.UUID)(nil), "NCR").Return(region, nil)

	for _, level := range []entity.LocationLevel{entity.LevelProvince, entity.LevelCity, entity.LevelBarangay} {
		repo.EXPECT().
			FindByName(ctx, level, mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("string")).
			Return(nil, domainerrors.ErrLocationNotFound).
			Once()
		repo.EXPECT().
			Create(ctx, mock.MatchedBy(func(node *entity.LocationNode) bool { return node.Level == level })).
			RunAndReturn(func(_ context.Context, node *entity.LocationNode) error {
				node.ID = uuid.New()

				return nil
			}).
			Once()
	}

	summary, err := srv.ImportLocations(ctx, []entity.LocationRow{
		{Region: " NCR ", Province: "\"Metro Manila\"", City: "Makati", Barangay: "Poblacion"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Empty(t, summary.Errors)
}

func TestLocationService_ImportLocations_ParentScopesLookup(t *testing.T) {
	srv, repo := newLocationServiceForTest(t)
	ctx := context.Background()

	region := nodeOf(entity.LevelRegion, nil, "Region I")
	province := nodeOf(entity.LevelProvince, &region.ID, "Ilocos Norte")
	city := nodeOf(entity.LevelCity, &province.ID, "Laoag")
	barangay := nodeOf(entity.LevelBarangay, &city.ID, "San Lorenzo")

	repo.EXPECT().FindByName(ctx, entity.LevelRegion, (*uuid.UUID)(nil), "Region I").Return(region, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelProvince, &region.ID, "Ilocos Norte").Return(province, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelCity, &province.ID, "Laoag").Return(city, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelBarangay, &city.ID, "San Lorenzo").Return(barangay, nil)

	summary, err := srv.ImportLocations(ctx, []entity.LocationRow{
		{Region: "Region I", Province: "Ilocos Norte", City: "Laoag", Barangay: "San Lorenzo"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
}

func TestLocationService_ImportLocations_MissingNameContinues(t *testing.T) {
	srv, repo := newLocationServiceForTest(t)
	ctx := context.Background()

	region := nodeOf(entity.LevelRegion, nil, "NCR")
	province := nodeOf(entity.LevelProvince, &region.ID, "Metro Manila")
	city := nodeOf(entity.LevelCity, &province.ID, "Taguig")
	barangay := nodeOf(entity.LevelBarangay, &city.ID, "Fort Bonifacio")

	repo.EXPECT().FindByName(ctx, entity.LevelRegion, (*uuid.UUID)(nil), "NCR").Return(region, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelProvince, &region.ID, "Metro Manila").Return(province, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelCity, &province.ID, "Taguig").Return(city, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelBarangay, &city.ID, "Fort Bonifacio").Return(barangay, nil)

	summary, err := srv.ImportLocations(ctx, []entity.LocationRow{
		{Region: "", Province: "Metro Manila", City: "Taguig", Barangay: "Ususan"},
		{Region: "NCR", Province: "Metro Manila", City: "Taguig", Barangay: "Fort Bonifacio"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, "Row Ususan: missing region name", summary.Errors[0])
}

func TestLocationService_ImportLocations_RowFailureKeepsGoing(t *testing.T) {
	srv, repo := newLocationServiceForTest(t)
	ctx := context.Background()

	repo.EXPECT().
		FindByName(ctx, entity.LevelRegion, (*uuid.UUID)(nil), "Broken").
		Return(nil, errors.New("connection reset"))

	region := nodeOf(entity.LevelRegion, nil, "NCR")
	province := nodeOf(entity.LevelProvince, &region.ID, "Metro Manila")
	city := nodeOf(entity.LevelCity, &province.ID, "Pasig")
	barangay := nodeOf(entity.LevelBarangay, &city.ID, "Kapitolyo")
	repo.EXPECT().FindByName(ctx, entity.LevelRegion, (*uuid.UUID)(nil), "NCR").Return(region, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelProvince, &region.ID, "Metro Manila").Return(province, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelCity, &province.ID, "Pasig").Return(city, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelBarangay, &city.ID, "Kapitolyo").Return(barangay, nil)

	summary, err := srv.ImportLocations(ctx, []entity.LocationRow{
		{Region: "Broken", Province: "P", City: "C", Barangay: "B1"},
		{Region: "NCR", Province: "Metro Manila", City: "Pasig", Barangay: "Kapitolyo"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "Row B1: failed to look up region")
	assert.Contains(t, summary.Errors[0], "connection reset")
}

func TestLocationService_ImportLocations_CreateRaceRefinds(t *testing.T) {
	srv, repo := newLocationServiceForTest(t)
	ctx := context.Background()

	region := nodeOf(entity.LevelRegion, nil, "CAR")
	repo.EXPECT().FindByName(ctx, entity.LevelRegion, (*uuid.UUID)(nil), "CAR").Return(nil, domainerrors.ErrLocationNotFound).Once()
	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LocationNode")).Return(domainerrors.ErrLocationNameTaken).Once()
	repo.EXPECT().FindByName(ctx, entity.LevelRegion, (*uuid.UUID)(nil), "CAR").Return(region, nil).Once()

	province := nodeOf(entity.LevelProvince, &region.ID, "Benguet")
	city := nodeOf(entity.LevelCity, &province.ID, "Baguio")
	barangay := nodeOf(entity.LevelBarangay, &city.ID, "Session Road")
	repo.EXPECT().FindByName(ctx, entity.LevelProvince, &region.ID, "Benguet").Return(province, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelCity, &province.ID, "Baguio").Return(city, nil)
	repo.EXPECT().FindByName(ctx, entity.LevelBarangay, &city.ID, "Session Road").Return(barangay, nil)

	summary, err := srv.ImportLocations(ctx, []entity.LocationRow{
		{Region: "CAR", Province: "Benguet", City: "Baguio", Barangay: "Session Road"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
}

func TestLocationService_ImportLocations_CancelledContext(t *testing.T) {
	srv, _ := newLocationServiceForTest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := srv.ImportLocations(ctx, []entity.LocationRow{{Region: "NCR", Province: "P", City: "C", Barangay: "B"}})
	require.Error(t, err)
	assert.Equal(t, 0, summary.SuccessCount)
}

func TestLocationService_CreateLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("province requires parent", func(t *testing.T) {
		srv, _ := newLocationServiceForTest(t)

		_, err := srv.CreateLocation(ctx, &usecase.CreateLocationInput{Level: entity.LevelProvince, Name: "Cebu"})
		assert.ErrorIs(t, err, domainerrors.ErrLocationParentRequired)
	})

	t.Run("region keeps code and drops parent", func(t *testing.T) {
		srv, repo := newLocationServiceForTest(t)
		code := "VII"
		parent := uuid.New()

		repo.EXPECT().
			Create(ctx, mock.MatchedBy(func(node *entity.LocationNode) bool {
				return node.ParentID == nil && node.Code != nil && *node.Code == "VII" && node.Name == "Central Visayas" && node.IsActive
			})).
			Return(nil)

		node, err := srv.CreateLocation(ctx, &usecase.CreateLocationInput{
			Level:    entity.LevelRegion,
			ParentID: &parent,
			Name:     " Central Visayas ",
			Code:     &code,
		})
		require.NoError(t, err)
		assert.Equal(t, "Central Visayas", node.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		srv, repo := newLocationServiceForTest(t)
		parent := uuid.New()

		repo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrLocationNameTaken)

		_, err := srv.CreateLocation(ctx, &usecase.CreateLocationInput{Level: entity.LevelCity, ParentID: &parent, Name: "Cebu City"})
		assert.ErrorIs(t, err, domainerrors.ErrLocationNameTaken)
	})
}

func TestLocationService_UpdateLocation(t *testing.T) {
	srv, repo := newLocationServiceForTest(t)
	ctx := context.Background()
	parent := uuid.New()
	node := nodeOf(entity.LevelCity, &parent, "Quezon")
	name := "Quezon City"
	inactive := false

	repo.EXPECT().FindByID(ctx, entity.LevelCity, node.ID).Return(node, nil)
	repo.EXPECT().
		Update(ctx, mock.MatchedBy(func(n *entity.LocationNode) bool {
			return n.Name == "Quezon City" && !n.IsActive
		})).
		Return(nil)

	updated, err := srv.UpdateLocation(ctx, entity.LevelCity, node.ID, &usecase.UpdateLocationInput{Name: &name, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Quezon City", updated.Name)
	assert.False(t, updated.IsActive)
}

func TestLocationService_DeleteLocation_InUse(t *testing.T) {
	srv, repo := newLocationServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().Delete(ctx, entity.LevelRegion, id).Return(domainerrors.ErrLocationInUse)

	err := srv.DeleteLocation(ctx, entity.LevelRegion, id)
	assert.ErrorIs(t, err, domainerrors.ErrLocationInUse)
}

func TestLocationService_ListLocations_UnknownLevel(t *testing.T) {
	srv, _ := newLocationServiceForTest(t)

	_, err := srv.ListLocations(context.Background(), "country", nil, false)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
