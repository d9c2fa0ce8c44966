package graphql

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/rides/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gqlResponse struct {
	Data struct {
		Rides []map[string]interface{} `json:"rides"`
		Ride  map[string]interface{}   `json:"ride"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func serve(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, gqlResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Serve(e.NewContext(req, rec)))

	var resp gqlResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestServe_RidesByDestination(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockRideUC(ctrl)

	ride := &models.Ride{
		ID:             uuid.New(),
		DriverID:       uuid.New(),
		Origin:         "Alajuela",
		Destination:    "San José",
		DepartureTime:  time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC),
		AvailableSeats: 2,
		Fee:            1500,
	}
	uc.EXPECT().SearchRides(gomock.Any(), "san").Return([]*models.Ride{ride}, nil)

	h, err := NewHandler(uc)
	require.NoError(t, err)

	// Act
	rec, resp := serve(t, h, `{"query":"query($d: String){ rides(destination: $d) { id destination departureTime availableSeats fee } }","variables":{"d":"san"}}`)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, resp.Errors)
	require.Len(t, resp.Data.Rides, 1)
	got := resp.Data.Rides[0]
	assert.Equal(t, ride.ID.String(), got["id"])
	assert.Equal(t, "San José", got["destination"])
	assert.Equal(t, "2024-05-01T07:30:00Z", got["departureTime"])
	assert.Equal(t, float64(2), got["availableSeats"])
	assert.Equal(t, float64(1500), got["fee"])
}

func TestServe_RideByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockRideUC(ctrl)
	id := uuid.New()
	uc.EXPECT().GetRide(gomock.Any(), id).Return(&models.Ride{ID: id, Origin: "Heredia"}, nil)

	h, err := NewHandler(uc)
	require.NoError(t, err)

	_, resp := serve(t, h, `{"query":"{ ride(id: \"`+id.String()+`\") { id origin } }"}`)

	require.Empty(t, resp.Errors)
	assert.Equal(t, "Heredia", resp.Data.Ride["origin"])
}

func TestServe_ResolverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockRideUC(ctrl)
	uc.EXPECT().SearchRides(gomock.Any(), "").Return(nil, assert.AnError)

	h, err := NewHandler(uc)
	require.NoError(t, err)

	rec, resp := serve(t, h, `{"query":"{ rides { id } }"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp.Errors)
}

func TestServe_MissingQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, err := NewHandler(mocks.NewMockRideUC(ctrl))
	require.NoError(t, err)

	rec, _ := serve(t, h, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
