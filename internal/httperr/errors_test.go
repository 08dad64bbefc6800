package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teapotError struct{}

func (teapotError) Error() string   { return "short and stout" }
func (teapotError) StatusCode() int { return http.StatusTeapot }

func TestFrom(t *testing.T) {
	plain := errors.New("database is down")
	badRequest := BadRequest("unexpected end of JSON input", plain)

	tests := []struct {
		name       string
		err        error
		wantKind   Kind
		wantStatus int
		wantSame   *Error
	}{
		{
			name:       "plain error is unclassified without status",
			err:        plain,
			wantKind:   KindUnclassified,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "classified error is returned as is",
			err:        badRequest,
			wantKind:   KindBadRequest,
			wantStatus: http.StatusBadRequest,
			wantSame:   badRequest,
		},
		{
			name:       "wrapped classified error is found",
			err:        fmt.Errorf("decoding body: %w", badRequest),
			wantKind:   KindBadRequest,
			wantStatus: http.StatusBadRequest,
			wantSame:   badRequest,
		},
		{
			name:       "csrf sentinel",
			err:        fmt.Errorf("claim: %w", ErrBadCSRFToken),
			wantKind:   KindCSRFTokenMismatch,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "max bytes error",
			err:        &http.MaxBytesError{Limit: 10},
			wantKind:   KindUnclassified,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:       "error with its own status",
			err:        fmt.Errorf("router: %w", teapotError{}),
			wantKind:   KindUnclassified,
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "declared status on unclassified error",
			err:        WithStatus(http.StatusServiceUnavailable, plain),
			wantKind:   KindUnclassified,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err)
			require.NotNil(t, got)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantStatus, got.StatusCode())
			if tt.wantSame != nil {
				assert.Same(t, tt.wantSame, got)
				return
			}
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestFrom_Nil(t *testing.T) {
	assert.Nil(t, From(nil))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "bad body", BadRequest("bad body", nil).Error())
	assert.Equal(t, "database is down", Unclassified(errors.New("database is down")).Error())
	assert.Equal(t, "Internal Server Error", (&Error{}).Error())
	assert.Equal(t, ErrBadCSRFToken.Error(), CSRFTokenMismatch(nil).Error())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unclassified", KindUnclassified.String())
	assert.Equal(t, "bad_request", KindBadRequest.String())
	assert.Equal(t, "csrf_token_mismatch", KindCSRFTokenMismatch.String())
}

func TestHandle(t *testing.T) {
	boom := errors.New("boom")

	t.Run("error is forwarded unchanged", func(t *testing.T) {
		var got error
		h := Handle(func(w http.ResponseWriter, r *http.Request, err error) {
			got = err
			w.WriteHeader(http.StatusInternalServerError)
		}, func(w http.ResponseWriter, r *http.Request) error {
			return boom
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Same(t, boom, got)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success does not call responder", func(t *testing.T) {
		called := false
		h := Handle(func(http.ResponseWriter, *http.Request, error) {
			called = true
		}, func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
