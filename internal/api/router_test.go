package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/eth2phone-gateway/internal/httperr"
	"github.com/MKhiriev/eth2phone-gateway/internal/logger"
	"github.com/MKhiriev/eth2phone-gateway/internal/mock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPrefix = "/api/v1"

// recordingResponder captures the error handed to the pipeline.
type recordingResponder struct {
	err error
}

func (rr *recordingResponder) respond(w http.ResponseWriter, r *http.Request, err error) {
	rr.err = err
	w.WriteHeader(httperr.From(err).StatusCode())
}

// mountUnderPrefix serves the router the way the pipeline does.
func mountUnderPrefix(rt *Router, onError httperr.ResponderFunc) http.Handler {
	root := chi.NewRouter()
	root.Mount(testPrefix, rt.Mount(testPrefix, onError))
	return root
}

func TestRouter_Version(t *testing.T) {
	responder := &recordingResponder{}
	handler := mountUnderPrefix(NewRouter("1.4.2", nil, logger.Nop()), responder.respond)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testPrefix+"/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.4.2"}`, rec.Body.String())
	assert.NoError(t, responder.err)
}

func TestRouter_Health(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name       string
		setup      func(p *mock.MockPinger)
		noDB       bool
		wantStatus int
		wantBody   string
		wantErr    error
	}{
		{
			name: "database answers",
			setup: func(p *mock.MockPinger) {
				p.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name: "database is down",
			setup: func(p *mock.MockPinger) {
				p.EXPECT().Ping(gomock.Any()).Return(dbErr)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantErr:    dbErr,
		},
		{
			name:       "no database configured",
			noDB:       true,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			var db Pinger
			if !tt.noDB {
				pinger := mock.NewMockPinger(ctrl)
				tt.setup(pinger)
				db = pinger
			}

			responder := &recordingResponder{}
			handler := mountUnderPrefix(NewRouter("dev", db, logger.Nop()), responder.respond)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, testPrefix+"/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantErr != nil {
				require.Error(t, responder.err)
				assert.ErrorIs(t, responder.err, tt.wantErr)
				assert.ErrorIs(t, responder.err, ErrDatabaseUnavailable)
				assert.Equal(t, httperr.KindUnclassified, httperr.From(responder.err).Kind)
			} else {
				assert.NoError(t, responder.err)
			}
		})
	}
}

func TestRouter_NotFound(t *testing.T) {
	handler := mountUnderPrefix(NewRouter("dev", nil, logger.Nop()), (&recordingResponder{}).respond)

	tests := []struct {
		method string
		target string
	}{
		{method: http.MethodGet, target: testPrefix + "/unknown"},
		{method: http.MethodGet, target: testPrefix},
		{method: http.MethodPost, target: testPrefix + "/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
		})
	}
}
