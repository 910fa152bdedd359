package service

import (
	"context"
	"testing"

	"kitchen-core/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTableService_Create_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockTableRepo := new(MockTableRepository)
	service := NewTableService(mockTableRepo, logger)

	mockTableRepo.On("Create", ctx, mock.AnythingOfType("*model.Table")).Return(nil)

	table, err := service.Create(ctx, &model.TableCreateRequest{Name: "9"})

	require.NoError(t, err)
	require.NotNil(t, table)
	assert.Equal(t, "9", table.Name)
	assert.False(t, table.Occupied)
	assert.Zero(t, table.GuestCount)

	mockTableRepo.AssertExpectations(t)
}

func TestTableService_Create_EmptyName(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockTableRepo := new(MockTableRepository)
	service := NewTableService(mockTableRepo, logger)

	table, err := service.Create(ctx, &model.TableCreateRequest{Name: ""})

	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, model.IsKind(err, model.KindInvalidArgument))

	mockTableRepo.AssertNotCalled(t, "Create")
}

func TestTableService_Seat_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tableID := uuid.New()
	table := &model.Table{ID: tableID, Name: "9"}

	mockTableRepo := new(MockTableRepository)
	service := NewTableService(mockTableRepo, logger)

	mockTableRepo.On("GetByID", ctx, tableID).Return(table, nil)
	mockTableRepo.On("Update", ctx, table).Return(nil)

	seated, err := service.Seat(ctx, tableID, &model.SeatRequest{GuestCount: 4})

	require.NoError(t, err)
	require.NotNil(t, seated)
	assert.True(t, seated.Occupied)
	assert.Equal(t, 4, seated.GuestCount)

	mockTableRepo.AssertExpectations(t)
}

func TestTableService_Seat_NegativeGuests(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tableID := uuid.New()
	table := &model.Table{ID: tableID, Name: "9"}

	mockTableRepo := new(MockTableRepository)
	service := NewTableService(mockTableRepo, logger)

	mockTableRepo.On("GetByID", ctx, tableID).Return(table, nil)

	seated, err := service.Seat(ctx, tableID, &model.SeatRequest{GuestCount: -1})

	require.Error(t, err)
	assert.Nil(t, seated)
	assert.True(t, model.IsKind(err, model.KindInvalidArgument))

	mockTableRepo.AssertNotCalled(t, "Update")
}

func TestTableService_ChangeGuestCount_VacantTable(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tableID := uuid.New()
	table := &model.Table{ID: tableID, Name: "9", Occupied: false}

	mockTableRepo := new(MockTableRepository)
	service := NewTableService(mockTableRepo, logger)

	mockTableRepo.On("GetByID", ctx, tableID).Return(table, nil)

	updated, err := service.ChangeGuestCount(ctx, tableID, &model.SeatRequest{GuestCount: 2})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, model.IsKind(err, model.KindInvalidState))
}

func TestTableService_Clear_Idempotent(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tableID := uuid.New()
	table := &model.Table{ID: tableID, Name: "9", Occupied: false, GuestCount: 0}

	mockTableRepo := new(MockTableRepository)
	service := NewTableService(mockTableRepo, logger)

	mockTableRepo.On("GetByID", ctx, tableID).Return(table, nil)
	mockTableRepo.On("Update", ctx, table).Return(nil)

	cleared, err := service.Clear(ctx, tableID)

	require.NoError(t, err)
	require.NotNil(t, cleared)
	assert.False(t, cleared.Occupied)
	assert.Zero(t, cleared.GuestCount)
}

func TestTableService_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockTableRepo := new(MockTableRepository)
	service := NewTableService(mockTableRepo, logger)

	tableID := uuid.New()
	mockTableRepo.On("GetByID", ctx, tableID).Return(nil, nil)

	table, err := service.GetByID(ctx, tableID)

	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, model.IsKind(err, model.KindNotFound))
}
