package tour

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopSection(name string, topic Topic) *Section {
	return &Section{
		Name:  name,
		Title: name,
		Topic: topic,
		Run:   func(context.Context, io.Writer) error { return nil },
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(noopSection("alpha", TopicSyntax)))

	s, err := r.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", s.Name)
	assert.True(t, r.Has("alpha"))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(noopSection("alpha", TopicSyntax)))

	err := r.Register(noopSection("alpha", TopicData))
	assert.ErrorIs(t, err, ErrSectionAlreadyRegistered)
}

func TestRegistry_InvalidSections(t *testing.T) {
	r := NewRegistry()

	err := r.Register(&Section{Name: "", Run: func(context.Context, io.Writer) error { return nil }})
	assert.ErrorIs(t, err, ErrSectionNameEmpty)

	err = r.Register(&Section{Name: "norun"})
	assert.ErrorIs(t, err, ErrSectionRunNil)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("missing")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestRegistry_NamesPreserveOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, r.Register(noopSection(name, TopicSyntax)))
	}
	assert.Equal(t, []string{"c", "a", "b"}, r.Names())
}

func TestRegistry_ByTopic(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(noopSection("one", TopicSyntax)))
	require.NoError(t, r.Register(noopSection("two", TopicData)))
	require.NoError(t, r.Register(noopSection("three", TopicSyntax)))

	syntax := r.ByTopic(TopicSyntax)
	require.Len(t, syntax, 2)
	assert.Equal(t, "one", syntax[0].Name)
	assert.Equal(t, "three", syntax[1].Name)
	assert.Empty(t, r.ByTopic(TopicConcurrency))
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(noopSection("alpha", TopicSyntax))
	assert.Panics(t, func() {
		r.MustRegister(noopSection("alpha", TopicSyntax))
	})
}
