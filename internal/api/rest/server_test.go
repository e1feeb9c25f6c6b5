package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nDmitry/rssreader/internal/api/rest"
	"github.com/nDmitry/rssreader/internal/cache"
	"github.com/nDmitry/rssreader/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestServer_Handler(t *testing.T) {
	exportCache := cache.NewMemoryCache()
	defer exportCache.Close()

	server := rest.NewServer(rest.Deps{
		Cache: exportCache,
		Page: &MockPage{HTMLFunc: func() (string, error) {
			return "<html></html>", nil
		}},
		Actions: &MockActions{},
		Source:  &MockSource{},
		Generator: &MockGenerator{
			GenerateFunc: func([]entity.Feed, []entity.Post, *entity.ExportParams) ([]byte, error) {
				return []byte(rssBody), nil
			},
		},
		ExportCacheTTL: entity.ExportCacheTTLDefault,
	}, "0")

	tests := []struct {
		name               string
		method             string
		url                string
		expectedStatusCode int
	}{
		{name: "Page", method: http.MethodGet, url: "/", expectedStatusCode: http.StatusOK},
		{name: "Export", method: http.MethodGet, url: "/export?format=atom", expectedStatusCode: http.StatusOK},
		{name: "Wrong method", method: http.MethodPost, url: "/export", expectedStatusCode: http.StatusMethodNotAllowed},
		{name: "Unknown route", method: http.MethodGet, url: "/telegram", expectedStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			server.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.url, nil))

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}
