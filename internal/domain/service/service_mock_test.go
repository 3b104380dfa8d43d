package service

import (
	"context"
	"testing"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockPoolRepo         *mocks.MockPoolRepo
	mockProfessionalRepo *mocks.MockProfessionalRepo
	mockDutyRepo         *mocks.MockDutyRepo
	mockSlackClient      *mocks.MockSlackClient
}

var testHolidays = HolidayConfig{
	Holidays:  []string{"9/4", "23/4", "1/5", "19/5", "15/6", "15/7", "30/8", "29/10"},
	Durations: map[string]float64{"9/4": 3.5, "15/6": 4.5},
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	poolRepo := mocks.NewMockPoolRepo(ctrl)
	dm.EXPECT().Pool().Return(poolRepo).AnyTimes()

	professionalRepo := mocks.NewMockProfessionalRepo(ctrl)
	dm.EXPECT().Professional().Return(professionalRepo).AnyTimes()

	dutyRepo := mocks.NewMockDutyRepo(ctrl)
	dm.EXPECT().Duty().Return(dutyRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:      dm,
		mockPoolRepo:         poolRepo,
		mockProfessionalRepo: professionalRepo,
		mockDutyRepo:         dutyRepo,
		mockSlackClient:      slackClient,
	}

	// validate service creation
	rosterService := newRoster(dm, slackClient, testHolidays)
	require.NotNil(t, rosterService)

	return
}

// expectTransaction runs the transaction body against the same mocks
func expectTransaction(m allMocks) {
	m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		}).Times(1)
}
