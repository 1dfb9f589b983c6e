package crawler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/haldorsen/webcrawl/internal/httpfetch"
)

// testSite is a deterministic httptest-backed fixture: it serves literal
// bytes per path and tracks how many fetches were in flight at once, so
// scenario 6 (bounded concurrency) can be verified directly.
type testSite struct {
	server *httptest.Server

	mu          sync.Mutex
	pages       map[string]page
	visits      []string
	inFlight    int64
	maxInFlight int64
}

type page struct {
	contentType string
	body        string
	delay       time.Duration
}

func newTestSite() *testSite {
	s := &testSite{pages: make(map[string]page)}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *testSite) url(path string) string {
	return s.server.URL + path
}

func (s *testSite) set(path, contentType, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[path] = page{contentType: contentType, body: body}
}

func (s *testSite) setDelayed(path, contentType, body string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[path] = page{contentType: contentType, body: body, delay: delay}
}

func (s *testSite) handle(w http.ResponseWriter, r *http.Request) {
	cur := atomic.AddInt64(&s.inFlight, 1)
	defer atomic.AddInt64(&s.inFlight, -1)

	s.mu.Lock()
	if cur > s.maxInFlight {
		s.maxInFlight = cur
	}
	s.visits = append(s.visits, r.URL.Path)
	p, ok := s.pages[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	w.Header().Set("Content-Type", p.contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(p.body))
}

func (s *testSite) visitCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visits)
}

func (s *testSite) uniqueVisits() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int)
	for _, v := range s.visits {
		out[v]++
	}
	return out
}

func (s *testSite) peakInFlight() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxInFlight
}

func (s *testSite) close() {
	s.server.Close()
}

var allModes = []Mode{ModeSequential, ModeThreads, ModeAsync}

func newFetcher() httpfetch.Fetcher {
	return httpfetch.New(httpfetch.Config{ConnectTimeout: 2 * time.Second})
}

func htmlBody(links ...string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, l := range links {
		b.WriteString(`<a href="`)
		b.WriteString(l)
		b.WriteString(`">link</a>`)
	}
	b.WriteString("</body></html>")
	return b.String()
}
