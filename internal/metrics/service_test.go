package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncPlayersRegistered()
	svc.IncPlayersRegistered()
	svc.IncMatchesReported()
	svc.IncRoundsPaired()
	svc.IncStoreErrors("report_match")
	svc.ObserveStoreDuration("player_standings", 0.002)

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.PlayersRegistered))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.MatchesReported))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.RoundsPaired))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.StoreErrors.WithLabelValues("report_match")))
	assert.Equal(t, 1, testutil.CollectAndCount(svc.StoreDuration))
}

func TestMetricsHandler_ExposesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.IncMatchesReported()

	rr := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	NewMetricsHandler(reg).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "swiss_matches_reported_total 1")
}
