package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citysafe/emergency_location_system/internal/config"
	"github.com/citysafe/emergency_location_system/internal/models"
	"github.com/citysafe/emergency_location_system/internal/notify"
	notify_mocks "github.com/citysafe/emergency_location_system/internal/notify/mocks"
	"github.com/citysafe/emergency_location_system/internal/realtime"
	realtime_mocks "github.com/citysafe/emergency_location_system/internal/realtime/mocks"
	"github.com/citysafe/emergency_location_system/internal/service/mocks"
)

// Моки должны оставаться импортируемыми из пакета service: возврат типов
// моделей (а не типов service) из интерфейсов исключает цикл импорта.
var (
	_ GeoRequestRepository = (*mocks.MockGeoRequestRepository)(nil)
	_ GeoRequestService    = (*mocks.MockGeoRequestService)(nil)
)

// newTestGeoRequestService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestGeoRequestService(t *testing.T) (*geoRequestService, *mocks.MockGeoRequestRepository, *realtime_mocks.MockPublisher, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockGeoRequestRepository(ctrl)
	realtimeMock := realtime_mocks.NewMockPublisher(ctrl)
	notifyMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		PublicBaseURL:          "http://localhost:8080",
		StatsTimeWindowMinutes: 60,
		HistoryLimit:           20,
	}

	service := NewGeoRequestService(repoMock, logger, cfg, realtimeMock, notifyMock)
	return service.(*geoRequestService), repoMock, realtimeMock, notifyMock
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateAndDispatch_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestGeoRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	// Ожидания: репозиторий присваивает ID и время создания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, request *models.GeoRequest) error {
			assert.Equal(t, models.GeoRequestStatusPending, request.Status)
			request.ID = requestID
			request.CreatedAt = time.Now()
			return nil
		}).Times(1)

	// Действие
	request, link, err := service.CreateAndDispatch(ctx, "+1234567")

	// Проверки: ссылка строится от публичного адреса, SMS содержит ее целиком
	require.NoError(t, err)
	assert.Equal(t, requestID, request.ID)
	require.NotNil(t, link)

	expectedURL := "http://localhost:8080/loc/" + requestID.String()
	assert.Equal(t, expectedURL, link.VictimURL)
	assert.Contains(t, link.SMSBody, expectedURL)
	assert.Contains(t, link.SMSComposeURI, "sms:+1234567?body=")
}

func TestCreateAndDispatch_RepoError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestGeoRequestService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("insert failed")

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(dbError).Times(1)

	// Действие
	request, link, err := service.CreateAndDispatch(ctx, "+1234567")

	// Проверки: при ошибке вставки SMS не составляется
	require.Error(t, err)
	assert.Nil(t, request)
	assert.Nil(t, link)
	assert.ErrorContains(t, err, "could not create location request")
}

func TestGetRequest_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestGeoRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, requestID).Return(nil, ErrRequestNotFound).Times(1)

	// Действие
	request, err := service.GetRequest(ctx, requestID)

	// Проверки: сентинельная ошибка доходит до хэндлера без обертки
	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestReportLocation_Success(t *testing.T) {
	// Подготовка
	service, repoMock, realtimeMock, notifyMock := newTestGeoRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()
	locatedAt := time.Now()
	locatedRequest := &models.GeoRequest{
		ID:          requestID,
		PhoneNumber: "+1234567",
		Status:      models.GeoRequestStatusLocated,
		Latitude:    floatPtr(-4.22),
		Longitude:   floatPtr(15.29),
		Accuracy:    floatPtr(12),
		LocatedAt:   &locatedAt,
	}

	// Ожидания
	// 1. Единственный переход pending -> located
	repoMock.EXPECT().
		MarkLocated(ctx, requestID, -4.22, 15.29, 12.0).
		Return(locatedRequest, nil).
		Times(1)

	// 2. Ровно одно realtime-событие с записанными координатами
	realtimeMock.EXPECT().
		PublishLocated(ctx, gomock.Any()).
		Do(func(_ context.Context, event realtime.Event) {
			assert.Equal(t, requestID, event.RequestID)
			assert.Equal(t, models.GeoRequestStatusLocated, event.Status)
			require.NotNil(t, event.Latitude)
			assert.Equal(t, -4.22, *event.Latitude)
			require.NotNil(t, event.Longitude)
			assert.Equal(t, 15.29, *event.Longitude)
		}).Return(nil).Times(1)

	// 3. Уведомление в очередь центра диспетчеризации
	notifyMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event notify.DispatchEvent) {
			assert.Equal(t, requestID, event.RequestID)
			assert.Equal(t, "+1234567", event.PhoneNumber)
			assert.Equal(t, locatedAt, event.LocatedAt)
		}).Return(nil).Times(1)

	// Действие
	request, err := service.ReportLocation(ctx, requestID, -4.22, 15.29, 12)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, locatedRequest, request)
}

func TestReportLocation_AlreadyLocated(t *testing.T) {
	// Подготовка
	service, repoMock, realtimeMock, notifyMock := newTestGeoRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	// Ожидания: повторная запись отклоняется, события не публикуются
	repoMock.EXPECT().
		MarkLocated(ctx, requestID, 1.0, 2.0, 3.0).
		Return(nil, ErrAlreadyLocated).
		Times(1)
	realtimeMock.EXPECT().PublishLocated(gomock.Any(), gomock.Any()).Times(0)
	notifyMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	request, err := service.ReportLocation(ctx, requestID, 1, 2, 3)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, ErrAlreadyLocated)
}

func TestReportLocation_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, realtimeMock, notifyMock := newTestGeoRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		MarkLocated(ctx, requestID, 1.0, 2.0, 3.0).
		Return(nil, ErrRequestNotFound).
		Times(1)
	realtimeMock.EXPECT().PublishLocated(gomock.Any(), gomock.Any()).Times(0)
	notifyMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	request, err := service.ReportLocation(ctx, requestID, 1, 2, 3)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestReportLocation_PublishFailuresAreNotFatal(t *testing.T) {
	// Подготовка: координаты уже в БД, сбой доставки событий не ломает запись
	service, repoMock, realtimeMock, notifyMock := newTestGeoRequestService(t)
	ctx := context.Background()
	requestID := uuid.New()
	locatedRequest := &models.GeoRequest{
		ID:        requestID,
		Status:    models.GeoRequestStatusLocated,
		Latitude:  floatPtr(1),
		Longitude: floatPtr(2),
		Accuracy:  floatPtr(3),
	}

	// Ожидания
	repoMock.EXPECT().
		MarkLocated(ctx, requestID, 1.0, 2.0, 3.0).
		Return(locatedRequest, nil).
		Times(1)
	realtimeMock.EXPECT().
		PublishLocated(ctx, gomock.Any()).
		Return(fmt.Errorf("redis unavailable")).
		Times(1)
	notifyMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis unavailable")).
		Times(1)

	// Действие
	request, err := service.ReportLocation(ctx, requestID, 1, 2, 3)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, locatedRequest, request)
}

func TestListHistory_ClampsLimit(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestGeoRequestService(t)
	ctx := context.Background()
	expectedRequests := []*models.GeoRequest{
		{ID: uuid.New(), Status: models.GeoRequestStatusPending},
	}

	// Ожидания: запрошенный limit больше настроенного потолка
	repoMock.EXPECT().ListRecent(ctx, service.cfg.HistoryLimit).Return(expectedRequests, nil).Times(1)

	// Действие
	requests, err := service.ListHistory(ctx, 1000)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedRequests, requests)
}

func TestGetStats_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestGeoRequestService(t)
	ctx := context.Background()
	expectedStats := &models.GeoRequestStats{Total: 10, Pending: 3, Located: 7}

	// Ожидания
	repoMock.EXPECT().GetStats(ctx, service.cfg.StatsTimeWindowMinutes).Return(expectedStats, nil).Times(1)

	// Действие
	stats, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedStats, stats)
}
