package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ytsum/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "index", path: "/debug/pprof/"},
		{name: "cmdline", path: "/debug/pprof/cmdline"},
		{name: "named profile", path: "/debug/pprof/goroutine?debug=1"},
	}

	mux := controller.PprofMux()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local"+tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, rec.Header().Get("Content-Type"))
		})
	}
}

func TestPprofMux_UnknownProfile(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
