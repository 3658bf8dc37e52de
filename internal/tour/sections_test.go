package tour

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"langtour/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runSection(t *testing.T, reg *Registry, name string) string {
	t.Helper()
	s, err := reg.Get(name)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, s.Run(context.Background(), &sb))
	return sb.String()
}

func TestDefaultRegistry_AllSectionsPresent(t *testing.T) {
	reg := DefaultRegistry(nil)

	want := []string{
		"basics", "flow", "functions", "collections", "strings", "structs",
		"generics", "errors", "interfaces", "signals", "closures", "concurrency",
	}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Errorf("section names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistry_SectionsRunCleanly(t *testing.T) {
	cfg := config.Default()
	cfg.Concurrency.Delay = "0s"
	reg := DefaultRegistry(cfg)

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			out := runSection(t, reg, name)
			assert.NotEmpty(t, out)
		})
	}
}

func TestGenericsSection_Output(t *testing.T) {
	out := runSection(t, DefaultRegistry(nil), "generics")

	assert.Contains(t, out, "Largest number: 100")
	assert.Contains(t, out, "Largest char: y")
	assert.Contains(t, out, "Generic Point: x = 5, y = 10")
	assert.Contains(t, out, "Generic Point: x = 1, y = 4")
}

func TestErrorsSection_Output(t *testing.T) {
	out := runSection(t, DefaultRegistry(nil), "errors")

	assert.Contains(t, out, "Found 3 at index: 2")
	assert.Contains(t, out, "6 not found in the list.")
	assert.Contains(t, out, "10.0 / 2.0 = 5")
	assert.Contains(t, out, "Error: Cannot divide by zero!")
	assert.Contains(t, out, "Processed division result: 8")
	assert.Contains(t, out, "Processing error: Cannot divide by zero!")
}

func TestStructsSection_Output(t *testing.T) {
	out := runSection(t, DefaultRegistry(nil), "structs")

	assert.Contains(t, out, "Rectangle area: 1500")
	assert.Contains(t, out, "Can rect hold another? true")
	assert.Contains(t, out, "Square area: 625")
	assert.Contains(t, out, "Rectangle Stringer: Rect(30x50)")
}

func TestInterfacesSection_Output(t *testing.T) {
	out := runSection(t, DefaultRegistry(nil), "interfaces")

	assert.Contains(t, out, "Tweet summary: @horse_ebooks: of course, as you probably already know")
	assert.Contains(t, out, "Article summary: (Read more from @Iceburgh...)")
	assert.Contains(t, out, "Breaking news! @horse_ebooks")
}

func TestSignalsSection_Output(t *testing.T) {
	out := runSection(t, DefaultRegistry(nil), "signals")

	want := strings.Join([]string{
		"Message: Write - Hello from enum!",
		"Message: ChangeColor to (10, 20, 30)",
		"Message: Quit",
		"Message: Move to x=50, y=-10",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("signals output mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionsSection_DeterministicOutput(t *testing.T) {
	reg := DefaultRegistry(nil)

	first := runSection(t, reg, "collections")
	second := runSection(t, reg, "collections")
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Score for Blue team: 10")
	assert.Contains(t, first, "Blue: 10\nYellow: 50")
}

func TestConcurrencySection_JoinsSpawnedGoroutine(t *testing.T) {
	cfg := config.Default()
	cfg.Concurrency.Delay = "0s"
	cfg.Concurrency.SpawnedGreetings = 3
	cfg.Concurrency.MainGreetings = 2

	out := runSection(t, DefaultRegistry(cfg), "concurrency")

	for _, line := range []string{
		"Hi number 1 from the spawned goroutine!",
		"Hi number 3 from the spawned goroutine!",
		"Hi number 1 from the main goroutine!",
		"Hi number 2 from the main goroutine!",
	} {
		assert.Contains(t, out, line)
	}

	// The join happens before the closing line, so it is always last.
	assert.True(t, strings.HasSuffix(out, "Spawned goroutine finished.\n"))
}

func TestConcurrencySection_CanceledContext(t *testing.T) {
	cfg := config.Default()
	cfg.Concurrency.Delay = "0s"
	reg := DefaultRegistry(cfg)

	s, err := reg.Get("concurrency")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sb strings.Builder
	err = s.Run(ctx, &sb)
	assert.ErrorIs(t, err, context.Canceled)
}
