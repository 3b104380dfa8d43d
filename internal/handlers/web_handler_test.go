package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/roster"
	"github.com/diegoclair/duty-roster/internal/handlers"
	"github.com/diegoclair/duty-roster/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var webHorizon = handlers.Horizon{
	Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
}

// preview runs the real core with no holidays
func preview(professionals []string, start, end time.Time) (*roster.Result, error) {
	return roster.Generate(roster.Request{Professionals: professionals, Start: start, End: end})
}

func postForm(t *testing.T, form url.Values) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestWebHandler_HandleIndex(t *testing.T) {
	tests := []struct {
		name      string
		request   func(t *testing.T) *http.Request
		buildMock func(m *mocks.MockRosterService)
		check     func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should render the empty form",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", nil)
			},
			check: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				body := resp.Body.String()
				assert.Contains(t, body, `name="prosecutorsA[]"`)
				assert.Contains(t, body, `name="prosecutorsB[]"`)
				assert.Contains(t, body, "2024/02/01")
				assert.NotContains(t, body, "Schedule A")
			},
		},
		{
			name: "Should render schedules and tallies for both pools",
			request: func(t *testing.T) *http.Request {
				return postForm(t, url.Values{
					"prosecutorsA[]": {"Ayşe", "Burak", "", "Ayşe"},
					"prosecutorsB[]": {"Cem", "Deniz", "Ece"},
				})
			},
			buildMock: func(m *mocks.MockRosterService) {
				m.EXPECT().Preview([]string{"Ayşe", "Burak"}, webHorizon.Start, webHorizon.End).DoAndReturn(preview).Times(1)
				m.EXPECT().Preview([]string{"Cem", "Deniz", "Ece"}, webHorizon.Start, webHorizon.End).DoAndReturn(preview).Times(1)
			},
			check: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				body := resp.Body.String()

				assert.Contains(t, body, "Schedule A")
				assert.Contains(t, body, "Schedule B")
				assert.Contains(t, body, "Monthly duties A")
				assert.Contains(t, body, "<th>Person</th><th>2/2024</th><th>3/2024</th>")
				assert.Contains(t, body, "<tr><td>2024/02/01</td><td>Ayşe</td><td>Burak</td></tr>")
				assert.Contains(t, body, "<tr><td>2024/02/02</td><td></td><td></td></tr>")
				assert.Contains(t, body, "<tr><td>2024/02/01</td><td>Cem</td><td>Deniz</td></tr>")
				assert.Less(t, strings.Index(body, "Schedule A"), strings.Index(body, "Schedule B"))
			},
		},
		{
			name: "Should reject an invalid horizon",
			request: func(t *testing.T) *http.Request {
				return postForm(t, url.Values{"prosecutorsA[]": {"Ayşe"}})
			},
			buildMock: func(m *mocks.MockRosterService) {
				m.EXPECT().Preview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, roster.ErrInvalidDateRange).Times(2)
			},
			check: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, resp.Code)
				assert.Contains(t, resp.Body.String(), roster.ErrInvalidDateRange.Error())
			},
		},
		{
			name: "Should reject other methods",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodDelete, "/", nil)
			},
			check: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rosterService := mocks.NewMockRosterService(ctrl)
			if tt.buildMock != nil {
				tt.buildMock(rosterService)
			}

			handler := handlers.NewWebHandler(rosterService, webHorizon)

			recorder := httptest.NewRecorder()
			handler.HandleIndex(recorder, tt.request(t))

			tt.check(t, recorder)
		})
	}
}
