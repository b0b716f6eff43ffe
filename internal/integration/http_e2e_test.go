//go:build integration || !unit

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/zerolog"

	server "parkbike/internal/adapters/http_server"
	"parkbike/internal/adapters/location"
	"parkbike/internal/adapters/spots"
	"parkbike/internal/app"
	"parkbike/internal/domain"
	mysqlstore "parkbike/internal/storage/mysql"
)

// ---------- remote spot list ----------
const spotsJSON = `[
  {"id": 1, "name": "A", "latitude": 0, "longitude": 0, "capacity": 4},
  {"id": 2, "name": "B", "latitude": 1, "longitude": 1, "capacity": 2}
]`

func spotEndpoint(t *testing.T) string {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(spotsJSON))
	}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=parkbike",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "parkbike")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// newAPI builds the full stack the way cmd/api does, on the given store.
func newAPI(t *testing.T, store domain.Store, spotsURL string) *httptest.Server {
	t.Helper()
	cl, err := spots.New(spotsURL, 100)
	if err != nil {
		t.Fatalf("spots client: %v", err)
	}
	c := app.NewController(location.NewStatic(51.9, 4.4), store, cl, app.Options{})
	if rep := c.Refresh(context.Background()); !rep.OK() {
		t.Fatalf("refresh: %v", rep.Err())
	}
	srv := server.New(zerolog.Nop())
	srv.MountHandlers(&server.Handlers{C: c})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getState(t *testing.T, base string) app.State {
	t.Helper()
	res, err := http.Get(base + "/v1/state")
	if err != nil {
		t.Fatalf("GET state: %v", err)
	}
	defer res.Body.Close()
	var st app.State
	if err := json.NewDecoder(res.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return st
}

// ---------- the test ----------
func TestHTTP_EndToEnd_FavoritesSurviveRestart(t *testing.T) {
	db := startMySQL(t)
	store := mysqlstore.New(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	url := spotEndpoint(t)

	first := newAPI(t, store, url)
	res, err := http.Post(first.URL+"/v1/favorites/2/toggle", "application/json", nil)
	if err != nil {
		t.Fatalf("POST toggle: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	// a second process on the same database starts with the saved favorites
	second := newAPI(t, store, url)
	st := getState(t, second.URL)
	if !st.Favorites.Equal(domain.NewFavoriteSet(2)) {
		t.Fatalf("favorites not restored: %v", st.Favorites)
	}
	if len(st.Spots) != 2 || st.RenderEpoch != 0 {
		t.Fatalf("unexpected fresh state: %+v", st)
	}
}
