package handlers

import (
	"testing"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
	slackcmd "github.com/diegoclair/duty-roster/internal/domain/slack"
	"github.com/diegoclair/duty-roster/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSlackHandler_handleToday_UsesUTCDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Should use the UTC date when local time is already tomorrow",
			now:  time.Date(2024, 3, 16, 1, 30, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Should use the UTC date when local time is still yesterday",
			now:  time.Date(2024, 3, 14, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rosterService := mocks.NewMockRosterService(ctrl)
			rosterService.EXPECT().GetDuties(int64(1), tt.want).Return([]*entity.Duty{}, nil).Times(1)

			h := New(mocks.NewMockSlackClient(ctrl), rosterService, "secret", Horizon{})
			h.now = func() time.Time { return tt.now }

			msg := h.handleToday(1, &slackcmd.Command{Type: slackcmd.CmdToday})
			assert.Equal(t, "No duties on 2024/03/15.", msg.Text)
		})
	}
}
