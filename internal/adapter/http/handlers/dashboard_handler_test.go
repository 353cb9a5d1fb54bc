package handlers

import (
	"errors"
	"net/http"
	"testing"

	"resource_management/internal/adapter/http/handlers/mocks"
	"resource_management/internal/domain/entities"
	"resource_management/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := newTestRouter()
		r.GET("/api/dashboard/stats", h.GetStats)

		uc.EXPECT().Stats(gomock.Any()).Return(entities.DashboardStats{
			TotalAccounts:    1,
			TotalDemands:     1,
			AccountsByStatus: map[string]int{"Open": 1},
			DemandsByStatus:  map[string]int{"Open": 1},
		}, nil)

		w := doJSON(r, http.MethodGet, "/api/dashboard/stats", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data, _ := decodeBody(t, w)["data"].(map[string]any)
		if data["totalAccounts"] != 1.0 || data["totalDemands"] != 1.0 {
			t.Fatalf("unexpected data: %s", w.Body.String())
		}
		byStatus, _ := data["accountsByStatus"].(map[string]any)
		if byStatus["Open"] != 1.0 {
			t.Fatalf("unexpected accountsByStatus: %s", w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := newTestRouter()
		r.GET("/api/dashboard/stats", h.GetStats)

		uc.EXPECT().Stats(gomock.Any()).Return(entities.DashboardStats{}, errors.New("timeout"))

		w := doJSON(r, http.MethodGet, "/api/dashboard/stats", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_Search(t *testing.T) {
	t.Run("missing entity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := newTestRouter()
		r.GET("/api/search", h.Search)

		w := doJSON(r, http.MethodGet, "/api/search?query=eng", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := newTestRouter()
		r.GET("/api/search", h.Search)

		w := doJSON(r, http.MethodGet, "/api/search?entity=demands", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_SEARCH_QUERY" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty query matches all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := newTestRouter()
		r.GET("/api/search", h.Search)

		uc.EXPECT().Search(gomock.Any(), "", entities.SearchEntityAccounts).Return(entities.SearchResult{
			Entity:   entities.SearchEntityAccounts,
			Accounts: []entities.Account{{ID: "ACC-1"}, {ID: "ACC-2"}},
		}, nil)

		w := doJSON(r, http.MethodGet, "/api/search?query=&entity=accounts", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data, _ := decodeBody(t, w)["data"].([]any)
		if len(data) != 2 {
			t.Fatalf("expected two hits, got %s", w.Body.String())
		}
	})

	t.Run("invalid entity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := newTestRouter()
		r.GET("/api/search", h.Search)

		uc.EXPECT().Search(gomock.Any(), "eng", "projects").Return(entities.SearchResult{}, usecase.ErrInvalidSearchEntity)

		w := doJSON(r, http.MethodGet, "/api/search?query=eng&entity=projects", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("demands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := newTestRouter()
		r.GET("/api/search", h.Search)

		uc.EXPECT().Search(gomock.Any(), "eng", entities.SearchEntityDemands).Return(entities.SearchResult{
			Entity:  entities.SearchEntityDemands,
			Demands: []entities.Demand{{ID: "DEM-1", Role: "Senior engineer"}},
		}, nil)

		w := doJSON(r, http.MethodGet, "/api/search?query=eng&entity=demands", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data, _ := decodeBody(t, w)["data"].([]any)
		if len(data) != 1 {
			t.Fatalf("expected one hit, got %s", w.Body.String())
		}
		hit, _ := data[0].(map[string]any)
		if hit["role"] != "Senior engineer" {
			t.Fatalf("unexpected hit: %s", w.Body.String())
		}
	})
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	r.GET("/api/health", Health("1.0.0"))

	w := doJSON(r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"status":"ok","version":"1.0.0"}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
