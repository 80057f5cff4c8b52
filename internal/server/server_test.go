// SPDX-License-Identifier: MIT

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/internal/config"
	"github.com/katalvlaran/hungarian/internal/server"
	"github.com/katalvlaran/hungarian/internal/store"
	"github.com/katalvlaran/hungarian/presets"
)

type solveResponse struct {
	ID          string   `json:"id"`
	Objective   string   `json:"objective"`
	TotalCost   float64  `json:"total_cost"`
	Steps       []string `json:"steps"`
	Fallback    bool     `json:"fallback"`
	Assignments []struct {
		Resource int `json:"resource"`
		Task     int `json:"task"`
	} `json:"assignments"`
	Warnings []struct {
		Row     int    `json:"row"`
		Col     int    `json:"col"`
		Message string `json:"message"`
	} `json:"warnings"`
}

func newServer(t *testing.T, withStore bool) *httptest.Server {
	t.Helper()
	var st *store.Store
	if withStore {
		var err error
		st, err = store.Open(filepath.Join(t.TempDir(), "history.db"))
		require.NoError(t, err)
		t.Cleanup(func() { st.Close() })
	}
	ts := httptest.NewServer(server.New(config.Default(), st, nil).Handler())
	t.Cleanup(ts.Close)

	return ts
}

func postSolve(t *testing.T, ts *httptest.Server, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/v1/solve", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return resp, buf.Bytes()
}

func get(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}

	return resp.StatusCode
}

func TestSolve_Minimize(t *testing.T) {
	ts := newServer(t, false)
	resp, body := postSolve(t, ts, `{"matrix": [[82,83,69],[77,37,49],[11,69,5]]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got solveResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "minimize", got.Objective)
	assert.InDelta(t, 117.0, got.TotalCost, 1e-9)
	assert.Len(t, got.Assignments, 3)
	assert.Empty(t, got.ID)
	assert.False(t, got.Fallback)
}

func TestSolve_MaximizeSpanish(t *testing.T) {
	ts := newServer(t, false)
	resp, body := postSolve(t, ts, `{"matrix": [[82,83,69],[77,37,49],[11,69,5]], "objective": "max", "lang": "es"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got solveResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.InDelta(t, 215.0, got.TotalCost, 1e-9)
	require.NotEmpty(t, got.Steps)
	assert.True(t, strings.HasPrefix(got.Steps[0], "Paso 1"), got.Steps[0])
}

func TestSolve_Warnings(t *testing.T) {
	ts := newServer(t, false)
	resp, body := postSolve(t, ts, `{"matrix": [[2000000,1],[1,2]]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got solveResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, 1, got.Warnings[0].Row)
	assert.Equal(t, 1, got.Warnings[0].Col)
}

func TestSolve_BadRequests(t *testing.T) {
	ts := newServer(t, false)
	cases := map[string]string{
		"malformed":     `{"matrix": [[1,2],[3`,
		"unknown field": `{"matrix": [[1,2],[3,4]], "colour": "red"}`,
		"not square":    `{"matrix": [[1,2,3],[4,5,6]]}`,
		"too small":     `{"matrix": [[1]]}`,
		"empty":         `{"matrix": []}`,
		"bad objective": `{"matrix": [[1,2],[3,4]], "objective": "sideways"}`,
		"bad language":  `{"matrix": [[1,2],[3,4]], "lang": "not a tag!"}`,
		"save no store": `{"matrix": [[1,2],[3,4]], "save": true}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp, out := postSolve(t, ts, body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(out))

			var e struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(out, &e))
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestSolve_SaveAndFetch(t *testing.T) {
	ts := newServer(t, true)
	resp, body := postSolve(t, ts, `{"matrix": [[1,2],[3,4]], "save": true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got solveResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.NotEmpty(t, got.ID)

	var entries []store.Entry
	require.Equal(t, http.StatusOK, get(t, ts.URL+"/v1/solves?limit=5", &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, got.ID, entries[0].ID)

	var entry store.Entry
	require.Equal(t, http.StatusOK, get(t, ts.URL+"/v1/solves/"+got.ID, &entry))
	require.NotNil(t, entry.Solution)
	assert.InDelta(t, 5.0, entry.TotalCost, 1e-9)

	assert.Equal(t, http.StatusNotFound, get(t, ts.URL+"/v1/solves/nope", nil))
	assert.Equal(t, http.StatusBadRequest, get(t, ts.URL+"/v1/solves?limit=x", nil))
}

func TestSolves_WithoutStore(t *testing.T) {
	ts := newServer(t, false)
	assert.Equal(t, http.StatusNotFound, get(t, ts.URL+"/v1/solves", nil))
	assert.Equal(t, http.StatusNotFound, get(t, ts.URL+"/v1/solves/abc", nil))
}

func TestPresets(t *testing.T) {
	ts := newServer(t, false)

	var p presets.Preset
	require.Equal(t, http.StatusOK, get(t, ts.URL+"/v1/presets/3", &p))
	assert.Equal(t, 3, p.Size)
	assert.Len(t, p.Rows, 3)

	// Unknown sizes fall back to the default example.
	require.Equal(t, http.StatusOK, get(t, ts.URL+"/v1/presets/8", &p))
	assert.Equal(t, presets.DefaultSize, p.Size)

	var all []presets.Preset
	require.Equal(t, http.StatusOK, get(t, ts.URL+"/v1/presets", &all))
	assert.Len(t, all, len(presets.Sizes()))

	assert.Equal(t, http.StatusBadRequest, get(t, ts.URL+"/v1/presets/four", nil))
}

func TestHealth(t *testing.T) {
	var h struct {
		Status  string `json:"status"`
		History bool   `json:"history"`
	}
	require.Equal(t, http.StatusOK, get(t, newServer(t, true).URL+"/healthz", &h))
	assert.Equal(t, "ok", h.Status)
	assert.True(t, h.History)
}

func TestListenAndServe_Shutdown(t *testing.T) {
	srv := server.New(config.Default(), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
