package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRecovery(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "panic with string", value: "boom"},
		{name: "panic with error", value: errors.New("nil map write")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.value)
			})

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				newTestHandler().withRecovery(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hello", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, `{"errorMessage":"Server error!"}`, rr.Body.String())
		})
	}
}

func TestWithRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		newTestHandler().withRecovery(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithRecovery_NoPanic(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	newTestHandler().withRecovery(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}
