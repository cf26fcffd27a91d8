package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGolden_FocusMinimalTwoEvents(t *testing.T) {
	sc, err := LoadScenario("testdata/scenarios/focus_minimal_two_events.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, sc)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestSnapshotMap_StableAcrossRuns(t *testing.T) {
	sc := monthScenario([]Assertion{{Type: AssertEventsAccounted}})

	first, err := Run(sc)
	require.NoError(t, err)
	second, err := Run(sc)
	require.NoError(t, err)

	assert.Equal(t, snapshotMap(sc.Name, first), snapshotMap(sc.Name, second))
}
