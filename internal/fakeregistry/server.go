// Package fakeregistry is an in-memory implementation of the monkey registry
// API. It backs the client tests and the serve-fake command.
package fakeregistry

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/zjrosen/monkeyreg/internal/log"
	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/registry"
)

// Request is a request the server received, recorded for assertions.
type Request struct {
	Method    string
	Path      string
	RawQuery  string
	Body      string
	RequestID string
}

// failure is an injected response for the next request matching a route.
type failure struct {
	method string
	status int
	body   any
}

// Server is the fake registry. The zero value is not usable; call New.
type Server struct {
	mu       sync.Mutex
	order    []string
	records  map[string]registry.Record
	requests []Request
	failures []failure

	router chi.Router
	now    func() time.Time
	newID  func() string
}

// Option configures a Server.
type Option func(*Server)

// WithClock fixes the timestamps written on create and update.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithIDs overrides id generation.
func WithIDs(fn func() string) Option {
	return func(s *Server) { s.newID = fn }
}

// New returns an empty registry.
func New(opts ...Option) *Server {
	s := &Server{
		records: make(map[string]registry.Record),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(s.record)
	r.Get("/api/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Monkey Registry API"})
	})
	r.Route(registry.CollectionPath, func(mr chi.Router) {
		mr.Get("/", s.list)
		mr.Post("/", s.create)
		mr.Get("/{monkeyID}", s.get)
		mr.Put("/{monkeyID}", s.update)
		mr.Delete("/{monkeyID}", s.delete)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Seed inserts m as-is, assigning an id when it has none. It returns the
// stored record.
func (s *Server) Seed(m monkey.Monkey) monkey.Monkey {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = s.newID()
	}
	stamp := s.stamp()
	if m.CreatedAt == "" {
		m.CreatedAt = stamp
	}
	if m.UpdatedAt == "" {
		m.UpdatedAt = stamp
	}
	s.put(registry.FromMonkey(m))
	return m
}

// FailNext makes the next request with method respond with status and a
// JSON-encoded body. A nil body sends no body at all.
func (s *Server) FailNext(method string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method: method, status: status, body: body})
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Len is the number of stored records.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = readAll(r)
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			RawQuery:  r.URL.RawQuery,
			Body:      string(body),
			RequestID: r.Header.Get(registry.RequestIDHeader),
		})
		injected, ok := s.takeFailure(r.Method)
		s.mu.Unlock()

		log.Debug(log.CatAPI, "fake registry request", "method", r.Method, "path", r.URL.Path)

		if ok {
			if injected.body == nil {
				w.WriteHeader(injected.status)
				return
			}
			writeJSON(w, injected.status, injected.body)
			return
		}
		r.Body = newBody(body)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) takeFailure(method string) (failure, bool) {
	for i, f := range s.failures {
		if f.method == method {
			s.failures = append(s.failures[:i], s.failures[i+1:]...)
			return f, true
		}
	}
	return failure{}, false
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	species := r.URL.Query().Get("species")
	search := strings.ToLower(r.URL.Query().Get("search"))

	s.mu.Lock()
	out := make([]registry.Record, 0, len(s.order))
	for _, id := range s.order {
		rec := s.records[id]
		if species != "" && rec.Species != species {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Name), search) &&
			!strings.Contains(strings.ToLower(rec.Species), search) {
			continue
		}
		out = append(out, rec)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "monkeyID")

	s.mu.Lock()
	rec, ok := s.records[id]
	s.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Monkey not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.duplicate(p.Name, p.Species, "") {
		writeDetail(w, http.StatusBadRequest,
			fmt.Sprintf("A monkey named '%s' already exists in species '%s'", p.Name, p.Species))
		return
	}

	stamp := s.stamp()
	rec := registry.Record{
		MonkeyID:       s.newID(),
		Name:           p.Name,
		Species:        p.Species,
		AgeYears:       p.AgeYears,
		FavouriteFruit: p.FavouriteFruit,
		LastCheckupAt:  p.LastCheckupAt,
		CreatedAt:      stamp,
		UpdatedAt:      stamp,
	}
	s.put(rec)
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "monkeyID")
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[id]
	if !exists {
		writeDetail(w, http.StatusNotFound, "Monkey not found")
		return
	}
	if s.duplicate(p.Name, p.Species, id) {
		writeDetail(w, http.StatusBadRequest,
			fmt.Sprintf("A monkey named '%s' already exists in species '%s'", p.Name, p.Species))
		return
	}

	rec.Name = p.Name
	rec.Species = p.Species
	rec.AgeYears = p.AgeYears
	rec.FavouriteFruit = p.FavouriteFruit
	rec.LastCheckupAt = p.LastCheckupAt
	rec.UpdatedAt = s.stamp()
	s.records[id] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "monkeyID")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		writeDetail(w, http.StatusNotFound, "Monkey not found")
		return
	}
	delete(s.records, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	writeJSON(w, http.StatusOK, map[string]string{"message": "Monkey deleted successfully"})
}

// put stores rec; callers hold mu.
func (s *Server) put(rec registry.Record) {
	if _, ok := s.records[rec.MonkeyID]; !ok {
		s.order = append(s.order, rec.MonkeyID)
	}
	s.records[rec.MonkeyID] = rec
}

// duplicate reports whether another record shares name and species; callers
// hold mu.
func (s *Server) duplicate(name, species, exceptID string) bool {
	for id, rec := range s.records {
		if id != exceptID && rec.Name == name && rec.Species == species {
			return true
		}
	}
	return false
}

func (s *Server) stamp() string {
	return s.now().UTC().Format("2006-01-02T15:04:05.000000")
}
