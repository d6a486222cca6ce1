package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/database"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/notifier"
	notifierslack "github.com/mauv0809/swiss-tournament/internal/notifier/slack"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

const testSlackSigningSecret = "test-signing-secret"

type testServer struct {
	*Server
	notifier *notifier.MockNotifier
	pubsub   *pubsub.MockPubSubClient
	metrics  *metrics.Mock
}

// setupTestServer initializes a new server with an in-memory database and mock clients.
func setupTestServer(t *testing.T, policy tournament.OddPlayerPolicy, slackSigningSecret string) *testServer {
	t.Helper()

	db, teardown, err := database.InitDB(config.DBConfig{Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(teardown)

	metricsMock := metrics.NewMock()
	store := tournament.New(database.NewGateway(db, database.DialectSQLite), metricsMock, policy)
	cfg := config.Config{Slack: config.SlackConfig{SigningSecret: slackSigningSecret}}

	reg := prometheus.NewRegistry()
	notifierMock := notifier.NewMock()
	pubsubMock := pubsub.NewMock()
	server := NewServer(store, metricsMock, metrics.NewMetricsHandler(reg), cfg, notifierMock, pubsubMock)

	return &testServer{Server: server, notifier: notifierMock, pubsub: pubsubMock, metrics: metricsMock}
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) seed(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		rr := s.do(t, "POST", "/players", map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}
}

// createSlackCommandRequest creates an http.Request suitable for testing Slack slash commands,
// including the necessary signature and timestamp headers for verification.
func createSlackCommandRequest(t *testing.T, targetURL string, form url.Values, signingSecret string) *http.Request {
	t.Helper()

	body := form.Encode()
	req, err := http.NewRequest("POST", targetURL, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := time.Now().Unix()
	req.Header.Set("X-Slack-Request-Timestamp", strconv.FormatInt(timestamp, 10))

	baseString := fmt.Sprintf("v0:%d:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(h.Sum(nil)))

	return req
}

func TestHealthCheckHandler(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")

	rr := server.do(t, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRequestIDIsPropagated(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")

	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
}

func TestPlayersLifecycle(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")

	server.seed(t, "Alice", "Bob")

	rr := server.do(t, "GET", "/players/count", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count": 2}`, rr.Body.String())

	rr = server.do(t, "GET", "/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}]`, rr.Body.String())

	rr = server.do(t, "DELETE", "/players", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = server.do(t, "GET", "/players/count", nil)
	assert.JSONEq(t, `{"count": 0}`, rr.Body.String())
}

func TestRegisterPlayerHandler_BadInput(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")

	rr := server.do(t, "POST", "/players", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	req, err := http.NewRequest("POST", "/players", strings.NewReader("{not json"))
	require.NoError(t, err)
	rr = httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReportMatchHandler(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")
	server.seed(t, "Alice", "Bob")

	rr := server.do(t, "POST", "/matches", map[string]int64{"winner": 1, "loser": 2})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	calls := server.pubsub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, pubsub.EventMatchReported, calls[0].Topic)
	event, ok := calls[0].Data.(pubsub.MatchReportedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(1), event.Winner)
	assert.Equal(t, int64(2), event.Loser)
	assert.Equal(t, 1, server.metrics.EventsPublished())

	rr = server.do(t, "GET", "/matches", nil)
	assert.JSONEq(t, `[{"id":1,"winner":1,"loser":2}]`, rr.Body.String())
}

func TestReportMatchHandler_Errors(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")
	server.seed(t, "Alice")

	rr := server.do(t, "POST", "/matches", map[string]int64{"winner": 1})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = server.do(t, "POST", "/matches", map[string]int64{"winner": 1, "loser": 42})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Empty(t, server.pubsub.Calls(), "failed reports publish nothing")
}

func TestReportMatchHandler_PublishFailureDoesNotFailRequest(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")
	server.seed(t, "Alice", "Bob")
	server.pubsub.SendMessageFunc = func(topic pubsub.EventType, data any) error {
		return errors.New("pubsub unavailable")
	}

	rr := server.do(t, "POST", "/matches", map[string]int64{"winner": 2, "loser": 1})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 0, server.metrics.EventsPublished())
}

func TestDeletePlayersHandler_WithMatches(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")
	server.seed(t, "Alice", "Bob")
	server.do(t, "POST", "/matches", map[string]int64{"winner": 1, "loser": 2})

	rr := server.do(t, "DELETE", "/players", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = server.do(t, "DELETE", "/matches", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = server.do(t, "DELETE", "/players", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestStandingsAndPairingsHandlers(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")
	server.seed(t, "Alice", "Bob", "Carol", "Dave")
	server.do(t, "POST", "/matches", map[string]int64{"winner": 1, "loser": 2})
	server.do(t, "POST", "/matches", map[string]int64{"winner": 3, "loser": 4})

	rr := server.do(t, "GET", "/standings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"Alice","wins":1,"matches":1},
		{"id":3,"name":"Carol","wins":1,"matches":1},
		{"id":2,"name":"Bob","wins":0,"matches":1},
		{"id":4,"name":"Dave","wins":0,"matches":1}
	]`, rr.Body.String())
	assert.Empty(t, server.notifier.SendStandingsCalls, "standings are only announced on request")

	rr = server.do(t, "GET", "/pairings?announce=true&dry_run=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"pairings":[
		{"id1":1,"name1":"Alice","id2":3,"name2":"Carol"},
		{"id1":2,"name1":"Bob","id2":4,"name2":"Dave"}
	]}`, rr.Body.String())

	require.Len(t, server.notifier.SendPairingsCalls, 1)
	assert.True(t, server.notifier.SendPairingsCalls[0].DryRun)
	assert.Len(t, server.pubsub.Calls(), 2, "dry run skips the round-paired event")
}

func TestStandingsHandler_Announce(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")
	server.seed(t, "Alice")

	rr := server.do(t, "GET", "/standings?announce=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, server.notifier.SendStandingsCalls, 1)
	assert.False(t, server.notifier.SendStandingsCalls[0].DryRun)
	assert.Len(t, server.notifier.SendStandingsCalls[0].Standings, 1)
}

func TestPairingsHandler_Empty(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")

	rr := server.do(t, "GET", "/standings", nil)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = server.do(t, "GET", "/pairings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"pairings":[]}`, rr.Body.String())
}

func TestPairingsHandler_OddPlayers(t *testing.T) {
	t.Run("error policy", func(t *testing.T) {
		server := setupTestServer(t, tournament.OddPlayerError, "")
		server.seed(t, "Alice", "Bob", "Carol")

		rr := server.do(t, "GET", "/pairings", nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "odd number of players")
		assert.Empty(t, server.pubsub.Calls())
	})

	t.Run("bye policy", func(t *testing.T) {
		server := setupTestServer(t, tournament.OddPlayerBye, "")
		server.seed(t, "Alice", "Bob", "Carol")

		rr := server.do(t, "GET", "/pairings", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"pairings":[{"id1":1,"name1":"Alice","id2":2,"name2":"Bob"}],"bye":{"id":3,"name":"Carol"}}`, rr.Body.String())

		calls := server.pubsub.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, pubsub.EventRoundPaired, calls[0].Topic)
	})
}

func TestStandingsHandler_Msgpack(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, "")
	server.seed(t, "Alice", "Bob")

	req, err := http.NewRequest("GET", "/standings", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/msgpack")
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/msgpack", rr.Header().Get("Content-Type"))

	var standings []tournament.Standing
	require.NoError(t, msgpack.Unmarshal(rr.Body.Bytes(), &standings))
	assert.Equal(t, []tournament.Standing{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, standings)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{tournament.ErrInvalidName, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", tournament.ErrReferentialIntegrity), http.StatusConflict},
		{tournament.ErrOddPlayerCount, http.StatusConflict},
		{tournament.ErrConnection, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestStandingsHandler_StoreUnavailable(t *testing.T) {
	store := tournament.NewMock()
	store.PlayerStandingsFunc = func(ctx context.Context) ([]tournament.Standing, error) {
		return nil, fmt.Errorf("failed to compute standings: %w", tournament.ErrConnection)
	}
	server := NewServer(store, metrics.NewMock(), metrics.NewMetricsHandler(prometheus.NewRegistry()), config.Config{}, notifier.NewMock(), pubsub.NewMock())

	req, err := http.NewRequest("GET", "/standings", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestSlackCommands(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, testSlackSigningSecret)
	slackNotifier := notifierslack.NewNotifierWithAPI(nil, "C123", server.metrics)
	server.Notifier = slackNotifier
	server.seed(t, "Alice", "Bob", "Carol")

	t.Run("standings", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/standings", url.Values{"command": {"/standings"}}, testSlackSigningSecret)
		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var msg slack.Message
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
		assert.Contains(t, rr.Body.String(), "Tournament Standings")
		assert.Contains(t, rr.Body.String(), "Alice")
	})

	t.Run("pairings with odd roster", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/pairings", url.Values{"command": {"/pairings"}}, testSlackSigningSecret)
		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Cannot pair the next round")
	})

	t.Run("bad signature", func(t *testing.T) {
		req := createSlackCommandRequest(t, "/slack/command/standings", url.Values{"command": {"/standings"}}, "wrong-secret")
		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSlackPairingsCommand(t *testing.T) {
	server := setupTestServer(t, tournament.OddPlayerError, testSlackSigningSecret)
	server.Notifier = notifierslack.NewNotifierWithAPI(nil, "C123", server.metrics)
	server.seed(t, "Alice", "Bob")

	req := createSlackCommandRequest(t, "/slack/command/pairings", url.Values{"command": {"/pairings"}}, testSlackSigningSecret)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Table 1: Alice vs Bob")
}
