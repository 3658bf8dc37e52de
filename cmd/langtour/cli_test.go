package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionHeader(t *testing.T) {
	t.Run("plain when color disabled", func(t *testing.T) {
		h := sectionHeader(false)
		assert.Equal(t, "--- Generics ---", h("Generics"))
	})

	t.Run("no-color flag wins over config", func(t *testing.T) {
		noColor = true
		t.Cleanup(func() { noColor = false })

		h := sectionHeader(true)
		assert.Equal(t, "--- Generics ---", h("Generics"))
	})

	t.Run("styled output keeps the title", func(t *testing.T) {
		h := sectionHeader(true)
		assert.True(t, strings.Contains(h("Generics"), "Generics"))
	})
}

func TestRunTour_FullTour(t *testing.T) {
	prev := configPath
	configPath = filepath.Join(t.TempDir(), "langtour.yaml")
	t.Cleanup(func() { configPath = prev })

	rootCmd.SetContext(context.Background())
	require.NoError(t, runTour(rootCmd, nil))
}

func TestRunTour_UnknownSection(t *testing.T) {
	prev := configPath
	configPath = filepath.Join(t.TempDir(), "langtour.yaml")
	t.Cleanup(func() { configPath = prev })

	rootCmd.SetContext(context.Background())
	err := runTour(rootCmd, []string{"nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "section not found")
}
