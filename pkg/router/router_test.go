package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/bistro/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGroupsAndNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/menu", "menu.index", ok)

	authed := r.Group("", func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Guarded", "1")
			next.ServeHTTP(w, req)
		})
	})
	authed.Delete("/carts/{id}", "carts.destroy", ok)

	path, found := r.Path("carts.destroy")
	if !found || path != "/carts/{id}" {
		t.Errorf("Path(carts.destroy) = %q, %v", path, found)
	}

	url, err := r.URL("carts.destroy", map[string]string{"id": "652c"})
	if err != nil || url != "/carts/652c" {
		t.Errorf("URL(carts.destroy) = %q, %v", url, err)
	}

	if _, err := r.URL("carts.destroy", nil); err == nil {
		t.Error("expected error for missing params")
	}

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/carts/652c", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Guarded") != "1" {
		t.Error("group middleware did not run")
	}

	if got := len(r.Routes()); got != 2 {
		t.Errorf("Routes() = %d entries, want 2", got)
	}
}

func TestUngroupedRouteSkipsGroupMiddleware(t *testing.T) {
	r := router.New()
	called := false
	r.Group("/admin", func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			called = true
			next.ServeHTTP(w, req)
		})
	}).Get("/stats", "admin.stats", ok)
	r.Get("/menu", "menu.index", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))
	if called {
		t.Error("group middleware leaked onto ungrouped route")
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	if !called {
		t.Error("group middleware did not run for grouped route")
	}
}
