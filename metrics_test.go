package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordStoreActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	ctx := context.Background()
	logger := NewLogger(io.Discard)
	store, err := NewStore(ctx, &memBackend{}, logger, metrics)
	require.NoError(t, err)
	api, err := LoadAPIDescription(ctx)
	require.NoError(t, err)
	app, err := NewApp(store, api, metrics, logger, "*")
	require.NoError(t, err)
	env := &testEnv{app: app, store: store}

	code, _ := env.do(t, http.MethodPost, "/scenarios", `{"name":"A"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = env.do(t, http.MethodPost, "/vehicles", `{"id":"v1","selectedScenario":1}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = env.do(t, http.MethodPut, "/vehicles/missing", `{}`)
	require.Equal(t, http.StatusNotFound, code)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Mutations.WithLabelValues("create_scenario", outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Mutations.WithLabelValues("create_vehicle", outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Mutations.WithLabelValues("update_vehicle", outcomeNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Scenarios))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Vehicles))
	assert.Equal(t, 3, testutil.CollectAndCount(metrics.Requests))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "scenario_server_persist_duration_seconds")
	assert.Contains(t, string(body), "scenario_server_requests_total")
}

func TestMetrics_DuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveMutation("create_scenario", outcomeOK)
		m.ObservePersist(0)
		m.ObserveCollection(1, 2)
	})
}
