package mcp_test

import (
	"testing"

	mcpadapter "github.com/fedforge/fedforge/internal/adapters/inbound/mcp"
	"github.com/fedforge/fedforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The server only sees the domain ports, so tests can hand it fakes.
type fakeWriter struct{ sets int }

func (w *fakeWriter) WriteSet(string, *domain.ArtifactSet) error { w.sets++; return nil }
func (w *fakeWriter) WriteAll(_ string, sets []*domain.ArtifactSet) error {
	w.sets += len(sets)
	return nil
}

type fakeRepo struct{ inits int }

func (r *fakeRepo) Init(string) error { r.inits++; return nil }

func TestNewFedForgeMCPServer(t *testing.T) {
	s := mcpadapter.NewFedForgeMCPServer(&fakeWriter{}, &fakeRepo{})
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewFedForgeMCPServer(&fakeWriter{}, &fakeRepo{})
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"fedforge_normalize_name",
		"fedforge_shared_policy",
		"fedforge_preview",
		"fedforge_scaffold",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
