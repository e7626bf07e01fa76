// Package testutil seeds fake registries for tests.
package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/monkeyreg/internal/fakeregistry"
	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/registry"
)

// Builder accumulates records and seeds them into a fake registry in order.
type Builder struct {
	t       *testing.T
	fake    *fakeregistry.Server
	monkeys []monkey.Monkey
}

// NewBuilder creates a builder for fake.
func NewBuilder(t *testing.T, fake *fakeregistry.Server) *Builder {
	t.Helper()
	return &Builder{t: t, fake: fake}
}

// WithMonkey adds a record with optional configuration.
func (b *Builder) WithMonkey(name string, opts ...MonkeyOption) *Builder {
	m := defaultMonkey(name)
	for _, opt := range opts {
		opt(&m)
	}
	b.monkeys = append(b.monkeys, m)
	return b
}

// Build seeds every record and returns them as stored, ids filled in.
func (b *Builder) Build() []monkey.Monkey {
	b.t.Helper()
	out := make([]monkey.Monkey, 0, len(b.monkeys))
	for _, m := range b.monkeys {
		_, err := monkey.Validate(m.Form())
		require.NoError(b.t, err, "seed record %q must be valid", m.Name)
		out = append(out, b.fake.Seed(m))
	}
	return out
}

// Registry is a fake registry served over HTTP for the duration of a test.
type Registry struct {
	Fake   *fakeregistry.Server
	Server *httptest.Server
	Client *registry.HTTPClient
}

// NewRegistry starts a fake registry and a client pointed at it. Both are
// torn down by t.Cleanup.
func NewRegistry(t *testing.T, opts ...fakeregistry.Option) *Registry {
	t.Helper()
	fake := fakeregistry.New(opts...)
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := registry.NewHTTPClient(srv.URL)
	require.NoError(t, err)
	return &Registry{Fake: fake, Server: srv, Client: client}
}

// Seed returns a builder for r's fake.
func (r *Registry) Seed(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(t, r.Fake)
}
