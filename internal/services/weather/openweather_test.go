package weather_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-forecast-app/internal/models"
	"github.com/Nazarious-ucu/weather-forecast-app/internal/services/weather"
)

const (
	testAPIURL = "https://api.test/data/2.5"
	testGeoURL = "https://api.test/geo/1.0"
	testKey    = "1234567890"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newOWMClient(m *mockHTTPClient) *weather.ClientOpenWeatherMap {
	return weather.NewClientOpenWeatherMap(testKey, testAPIURL, testGeoURL, m, zerolog.Nop())
}

func TestOpenWeather_Current_ByName(t *testing.T) {
	m := &mockHTTPClient{}
	body := `{"name":"London","main":{"temp":15.2},"weather":[{"main":"Clouds"}]}`

	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return req.URL.Path == "/data/2.5/weather" &&
			q.Get("q") == "New York" &&
			q.Get("appid") == testKey &&
			q.Get("units") == "metric"
	})).Return(jsonResponse(http.StatusOK, body), nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	data, err := newOWMClient(m).Current(context.Background(), models.NameQuery("New York"))
	require.NoError(t, err)
	assert.JSONEq(t, body, string(data))
}

func TestOpenWeather_Forecast_ByCoords(t *testing.T) {
	m := &mockHTTPClient{}

	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return req.URL.Path == "/data/2.5/forecast" &&
			q.Get("lat") == "51.5074" &&
			q.Get("lon") == "-0.1278" &&
			q.Get("q") == ""
	})).Return(jsonResponse(http.StatusOK, `{"cnt":0,"list":[]}`), nil).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	data, err := newOWMClient(m).Forecast(context.Background(), models.CoordsQuery(51.5074, -0.1278))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cnt":0,"list":[]}`, string(data))
}

func TestOpenWeather_NonOKStatus(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		wantKind    weather.Kind
		wantDetails string
	}{
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"cod":401,"message":"Invalid API key. Please see https://openweathermap.org/faq#error401 for more info."}`,
			wantKind:    weather.KindUpstreamAuth,
			wantDetails: "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info.",
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"cod":"404","message":"city not found"}`,
			wantKind:    weather.KindUpstreamNotFound,
			wantDetails: "city not found",
		},
		{
			name:        "server error without body",
			status:      http.StatusBadGateway,
			body:        ``,
			wantKind:    weather.KindUpstream,
			wantDetails: "Request failed with status code 502",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockHTTPClient{}
			m.On("Do", mock.Anything).Return(jsonResponse(tc.status, tc.body), nil).Once()
			t.Cleanup(func() {
				m.AssertExpectations(t)
			})

			data, err := newOWMClient(m).Current(context.Background(), models.NameQuery("Atlantis"))
			require.Error(t, err)
			assert.Nil(t, data)
			assert.Equal(t, tc.wantKind, weather.Classify(err))
			assert.Equal(t, tc.wantDetails, weather.Details(err))
		})
	}
}

func TestOpenWeather_TransportError(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).Return(nil, errors.New("dial tcp: no such host")).Once()
	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	_, err := newOWMClient(m).Forecast(context.Background(), models.NameQuery("London"))
	require.Error(t, err)
	assert.Equal(t, weather.KindUpstreamTransport, weather.Classify(err))
	assert.Contains(t, weather.Details(err), "no such host")
}

func TestOpenWeather_InvalidJSON(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `<html>oops</html>`), nil).Once()
	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	_, err := newOWMClient(m).Current(context.Background(), models.NameQuery("London"))
	require.Error(t, err)
	assert.Equal(t, weather.KindUpstreamTransport, weather.Classify(err))
}

func TestOpenWeather_Reverse(t *testing.T) {
	m := &mockHTTPClient{}
	m.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		q := req.URL.Query()
		return req.URL.Path == "/geo/1.0/reverse" &&
			q.Get("limit") == "5" &&
			q.Get("lat") == "50.45" &&
			q.Get("lon") == "30.52" &&
			q.Get("appid") == testKey
	})).Return(jsonResponse(http.StatusOK,
		`[{"name":"Kyiv","local_names":{"uk":"Київ"},"lat":50.45,"lon":30.52,"country":"UA"}]`), nil).Once()
	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	names, err := newOWMClient(m).Reverse(context.Background(), 50.45, 30.52, 5)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "Kyiv", names[0].Name)
	assert.Equal(t, "UA", names[0].Country)
	assert.Equal(t, "Київ", names[0].LocalNames["uk"])
}
