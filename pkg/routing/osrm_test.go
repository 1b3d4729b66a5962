package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSRMGetDirections(t *testing.T) {
	var capturedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"distance": 2300.0,
				"duration": 360.0,
				"geometry": {
					"coordinates": [[124.857026, 8.371646], [124.88, 8.38]]
				}
			}]
		}`))
	}))
	defer server.Close()

	provider := NewOSRMProvider(server.URL, 5*time.Second)
	response, err := provider.GetDirections(context.Background(), &DirectionsRequest{
		Origin:      Location{Latitude: 8.371646, Longitude: 124.857026},
		Destination: Location{Latitude: 8.38, Longitude: 124.88},
		Profile:     "driving",
	})
	require.NoError(t, err)
	require.Len(t, response.Routes, 1)

	route := response.Routes[0]
	assert.Equal(t, 2300.0, route.DistanceMeters)
	assert.Equal(t, 360.0, route.DurationSeconds)

	// Request coordinates go out (lng,lat); geometry comes back (lat,lng).
	assert.True(t, strings.HasPrefix(capturedPath, "/route/v1/driving/124.857026,8.371646;"), capturedPath)
	require.Len(t, route.Geometry, 2)
	assert.Equal(t, Location{Latitude: 8.371646, Longitude: 124.857026}, route.Geometry[0])
	assert.Equal(t, Location{Latitude: 8.38, Longitude: 124.88}, route.Geometry[1])
}

func TestOSRMNoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer server.Close()

	provider := NewOSRMProvider(server.URL, 5*time.Second)
	_, err := provider.GetDirections(context.Background(), &DirectionsRequest{
		Origin:      Location{Latitude: 8.371646, Longitude: 124.857026},
		Destination: Location{Latitude: 8.38, Longitude: 124.88},
	})
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestOSRMBadRequestIsNoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": "InvalidQuery"}`))
	}))
	defer server.Close()

	provider := NewOSRMProvider(server.URL, 5*time.Second)
	_, err := provider.GetDirections(context.Background(), &DirectionsRequest{
		Origin:      Location{Latitude: 8.371646, Longitude: 124.857026},
		Destination: Location{Latitude: 8.38, Longitude: 124.88},
	})
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestOSRMServerErrorIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`upstream failure`))
	}))
	defer server.Close()

	provider := NewOSRMProvider(server.URL, 5*time.Second)
	_, err := provider.GetDirections(context.Background(), &DirectionsRequest{
		Origin:      Location{Latitude: 8.371646, Longitude: 124.857026},
		Destination: Location{Latitude: 8.38, Longitude: 124.88},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRoute)
}

func TestOSRMUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	provider := NewOSRMProvider(server.URL, time.Second)
	_, err := provider.GetDirections(context.Background(), &DirectionsRequest{
		Origin:      Location{Latitude: 8.371646, Longitude: 124.857026},
		Destination: Location{Latitude: 8.38, Longitude: 124.88},
	})
	assert.Error(t, err)
}
