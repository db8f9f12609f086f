package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citysafe/emergency_location_system/internal/models"
	"github.com/citysafe/emergency_location_system/internal/service/mocks"
)

// newTestPropertyService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestPropertyService(t *testing.T) (*propertyService, *mocks.MockPropertyRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPropertyRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewPropertyService(repoMock, logger)
	return service.(*propertyService), repoMock
}

func TestGetProperty_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	expectedProperty := &models.Property{
		ID:      propertyID,
		Address: "ул. Тестовая, 1",
	}

	// Ожидания
	repoMock.EXPECT().
		GetPropertyFromCache(ctx, propertyID).
		Return(expectedProperty, nil).
		Times(1)

	// Действие
	property, err := service.GetProperty(ctx, propertyID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedProperty, property)
}

func TestGetProperty_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	expectedProperty := &models.Property{
		ID:      propertyID,
		Address: "ул. Тестовая, 2",
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetPropertyFromCache(ctx, propertyID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, propertyID).
		Return(expectedProperty, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetPropertyCache(ctx, expectedProperty).
		Return(nil).
		Times(1)

	// Действие
	property, err := service.GetProperty(ctx, propertyID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedProperty, property)
}

func TestGetProperty_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetPropertyFromCache(ctx, propertyID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(nil, ErrPropertyNotFound).Times(1)

	// Действие
	property, err := service.GetProperty(ctx, propertyID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, property)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestCreateProperty_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyToCreate := &models.Property{
		OwnerName: "Иванов И.И.",
		Address:   "ул. Новая, 5",
		Floors:    3,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, property *models.Property) error {
			// Симулируем, что БД присвоила ID
			property.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	err := service.CreateProperty(ctx, propertyToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "active", propertyToCreate.Status)
	assert.NotEqual(t, uuid.Nil, propertyToCreate.ID)
}

func TestUpdateProperty_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	propertyToUpdate := &models.Property{
		ID:        propertyID,
		OwnerName: "Новый владелец",
		Status:    "active",
	}
	existingProperty := &models.Property{
		ID:        propertyID,
		OwnerName: "Старый владелец",
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(existingProperty, nil).Times(1)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidatePropertyCache(ctx, propertyID).Return(nil).Times(1)

	// Действие
	err := service.UpdateProperty(ctx, propertyToUpdate)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateProperty_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	propertyToUpdate := &models.Property{ID: propertyID}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(nil, ErrPropertyNotFound).Times(1)

	// Действие
	err := service.UpdateProperty(ctx, propertyToUpdate)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found for update")
}

func TestArchiveProperty_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()
	existingProperty := &models.Property{ID: propertyID}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(existingProperty, nil).Times(1)
	repoMock.EXPECT().Archive(ctx, propertyID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidatePropertyCache(ctx, propertyID).Return(nil).Times(1)

	// Действие
	err := service.ArchiveProperty(ctx, propertyID)

	// Проверки
	require.NoError(t, err)
}

func TestArchiveProperty_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	propertyID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, propertyID).Return(nil, ErrPropertyNotFound).Times(1)

	// Действие
	err := service.ArchiveProperty(ctx, propertyID)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found for archive")
}

func TestListProperties_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	page, pageSize := 1, 10
	expectedProperties := []*models.Property{
		{ID: uuid.New(), Address: "Объект 1"},
		{ID: uuid.New(), Address: "Объект 2"},
	}

	// Ожидания
	repoMock.EXPECT().ListProperties(ctx, page, pageSize).Return(expectedProperties, nil).Times(1)

	// Действие
	properties, err := service.ListProperties(ctx, page, pageSize)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedProperties, properties)
}

func TestListProperties_NormalizesPagination(t *testing.T) {
	// Подготовка: некорректные значения пагинации приводятся к дефолтным
	service, repoMock := newTestPropertyService(t)
	ctx := context.Background()
	var expectedProperties []*models.Property

	// Ожидания
	repoMock.EXPECT().ListProperties(ctx, 1, 20).Return(expectedProperties, nil).Times(1)

	// Действие
	_, err := service.ListProperties(ctx, -5, 1000)

	// Проверки
	require.NoError(t, err)
}
