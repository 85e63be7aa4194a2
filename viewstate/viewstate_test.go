package viewstate

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"udoo-web/client"
	"udoo-web/models"
)

// fakeBackend meniru API backend untuk pengujian state layar: setiap rute
// "METHOD /path" dipetakan ke satu handler, dan jumlah kunjungan per rute
// dicatat.
type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	hits   map[string]int
	srv    *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		routes: map[string]http.HandlerFunc{},
		hits:   map[string]int{},
	}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		b.mu.Lock()
		b.hits[key]++
		h, ok := b.routes[key]
		b.mu.Unlock()
		if !ok {
			t.Errorf("Rute tidak terdaftar: %s", key)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) on(route string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[route] = h
}

// onData mendaftarkan rute yang menjawab amplop sukses dengan data literal.
func (b *fakeBackend) onData(route, data string) {
	b.on(route, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status":true,"data":%s}`, data)
	})
}

// onFail mendaftarkan rute yang menjawab kegagalan beramplop.
func (b *fakeBackend) onFail(route string, status int, message string) {
	b.on(route, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"status":false,"message":%q}`, message)
	})
}

func (b *fakeBackend) hitCount(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[route]
}

func (b *fakeBackend) client() *client.Client {
	return client.New(b.srv.URL)
}

func testSession(role models.Role) models.Session {
	return models.Session{
		User:  models.User{ID: 1, Name: "Tester", Email: "tester@udoo.test", Role: role},
		Token: "tok-test",
	}
}
