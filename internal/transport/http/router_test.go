package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sigdesk/internal/content"
	"sigdesk/internal/dealplan"
	"sigdesk/internal/enrich"
	"sigdesk/internal/feed"
	"sigdesk/internal/objection"
	"sigdesk/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	catalog := content.NewStatic(
		[]types.SignalStory{{ID: "st-1", Type: types.SignalVendor, Title: "Vendor sunset",
			PublishedAt: time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)}},
		[]types.Voice{{ID: "v-1", Name: "Dana Reyes", Role: "Field CTO", Episodes: []types.VoiceEpisode{
			{ID: "v1-ep1", Title: "Ep 1", PublishedAt: time.Date(2026, 8, 29, 7, 0, 0, 0, time.UTC)}}}},
		[]types.Winwire{{ID: "w-1", Title: "Acme win", CustomerName: "Acme",
			SpaceVisibility: []string{"internal"},
			CreatedAt:       time.Date(2026, 8, 26, 11, 0, 0, 0, time.UTC)}},
	)
	plans := dealplan.NewService(dealplan.NewMemoryRepository(), nil)
	enricher := enrich.New(objection.New(nil), "default")
	api := NewRouter(feed.New(catalog), plans, enricher, nil)
	server, err := NewServer(":0", api)
	require.NoError(t, err)
	return server.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFeedEndpoints(t *testing.T) {
	h := newTestHandler(t)

	t.Run("unified stories", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/feed/stories", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Items []types.UnifiedStoryItem `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 3)
	})

	t.Run("winwires filtered by space", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/feed/winwires?space=partner", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Items []types.UnifiedStoryItem `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Items)
	})

	t.Run("unknown voice playlist is empty not 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/feed/voices/nobody", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPromoteFlow(t *testing.T) {
	h := newTestHandler(t)
	sig := types.Signal{
		ID: "a", FocusID: "acme", WeekOf: "2026-02-09", Type: types.SignalVendor,
		Title: "Vendor sunset", SoWhat: "Opens displacement window",
		RecommendedAction: "Bring migration plan", Confidence: 75,
	}

	rec := doJSON(t, h, http.MethodPost, "/api/dealplans/acme/2026-02-09/promote",
		map[string]any{"signals": []types.Signal{sig}})
	require.Equal(t, http.StatusOK, rec.Code)
	var res dealplan.PromotionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.AddedCount)

	// Second promotion of the same signal is a no-op.
	rec = doJSON(t, h, http.MethodPost, "/api/dealplans/acme/2026-02-09/promote",
		map[string]any{"signals": []types.Signal{sig}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 0, res.AddedCount)

	rec = doJSON(t, h, http.MethodGet, "/api/dealplans/acme/2026-02-09", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var plan types.DealPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Len(t, plan.PromotedSignals, 1)

	rec = doJSON(t, h, http.MethodDelete, "/api/dealplans/acme/2026-02-09/signals/a", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/dealplans/acme/2026-02-09/signals/a", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDealPlan_NotFound(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodGet, "/api/dealplans/ghost/2026-02-09", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEnrichEndpoint(t *testing.T) {
	h := newTestHandler(t)

	t.Run("missing focus id rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/signals/enrich", map[string]any{"signals": []types.Signal{}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("signals enriched", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/signals/enrich", map[string]any{
			"focus_id": "acme",
			"signals": []types.Signal{{
				ID: "s1", FocusID: "acme", WeekOf: "2026-02-09", Type: types.SignalRegulatory,
				Title: "Residency rules", SoWhat: "Budget unlocks",
				RecommendedAction: "Offer workshop", Confidence: 80,
			}},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Signals []types.EnrichedSignal `json:"signals"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Signals, 1)
		assert.Equal(t, "High", resp.Signals[0].ConfidenceLabel)
		assert.NotEmpty(t, resp.Signals[0].DerivedFields)
	})
}
