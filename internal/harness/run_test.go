package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverline/riverline/internal/event"
	"github.com/riverline/riverline/internal/testutil"
)

func monthScenario(assertions []Assertion) *Scenario {
	return &Scenario{
		Name:        "month_clustering",
		Description: "two close events cluster, one distant stands alone",
		Events: []event.TimelineEvent{
			testutil.EventAt("a", "photo", 0),
			testutil.EventAt("b", "photo", 1),
			testutil.EventAt("c", "note", 151), // five months later
		},
		View:       ViewSpec{ZoomLevel: 0.3}, // month tier
		Assertions: assertions,
	}
}

func TestRun_AssertionsPass(t *testing.T) {
	result, err := Run(monthScenario([]Assertion{
		{Type: AssertNodeCount, Count: 2},
		{Type: AssertClusterCount, Count: 1},
		{Type: AssertEventNodeCount, Count: 1},
		{Type: AssertEventsAccounted},
		{Type: AssertPathCount, Count: 1},
		{Type: AssertIntersectionCount, Count: 0},
	}))

	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 3, result.EventCount)
}

func TestRun_AssertionFailureReported(t *testing.T) {
	result, err := Run(monthScenario([]Assertion{
		{Type: AssertNodeCount, Count: 99},
	}))

	require.NoError(t, err, "assertion failures are not run errors")
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "node_count")
	assert.Contains(t, result.Errors[0], "expected 99, got 2")
}

func TestRun_TagFilter(t *testing.T) {
	tagged := testutil.EventAt("a", "photo", 0)
	tagged.Tags = []string{"travel"}

	sc := &Scenario{
		Name:        "tag_filter",
		Description: "only tagged events survive the filter",
		Events:      []event.TimelineEvent{tagged, testutil.EventAt("b", "photo", 1)},
		View:        ViewSpec{ZoomLevel: 1.0},
		Tags:        []string{"travel"},
		Assertions: []Assertion{
			{Type: AssertNodeCount, Count: 1},
			{Type: AssertEventsAccounted},
		},
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, 1, result.EventCount)
}

func TestRun_NoCardOverlapHolds(t *testing.T) {
	sc := &Scenario{
		Name:        "dense_maximal",
		Description: "dense daily events never produce overlapping cards",
		Events:      testutil.Series(40, 1, "photo"),
		View:        ViewSpec{Mode: "maximal", ZoomLevel: 1.0},
		Assertions: []Assertion{
			{Type: AssertNoCardOverlap},
			{Type: AssertEventsAccounted},
		},
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_EmptyAfterFilterStillValid(t *testing.T) {
	sc := &Scenario{
		Name:        "filtered_to_nothing",
		Description: "a fully filtered-out event list yields an empty layout",
		Events:      []event.TimelineEvent{testutil.EventAt("a", "photo", 0)},
		View:        ViewSpec{ZoomLevel: 0.5},
		Tags:        []string{"no-such-tag"},
		Assertions: []Assertion{
			{Type: AssertNodeCount, Count: 0},
			{Type: AssertPathCount, Count: 0},
			{Type: AssertEventsAccounted},
		},
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_ProgressiveDisclosureViaExpanded(t *testing.T) {
	events := []event.TimelineEvent{
		testutil.EventAt("a", "photo", 0),
		testutil.EventAt("b", "photo", 1),
	}

	base := &Scenario{
		Name:        "expand_base",
		Description: "cluster forms at month tier",
		Events:      events,
		View:        ViewSpec{ZoomLevel: 0.3},
		Assertions:  []Assertion{{Type: AssertClusterCount, Count: 1}},
	}
	result, err := Run(base)
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)

	clusterID := result.Layout[0].Node.NodeID()
	expanded := &Scenario{
		Name:        "expand_open",
		Description: "expanded cluster renders members individually",
		Events:      events,
		View:        ViewSpec{ZoomLevel: 0.3, Expanded: []string{clusterID}},
		Assertions: []Assertion{
			{Type: AssertClusterCount, Count: 0},
			{Type: AssertEventNodeCount, Count: 2},
		},
	}
	result, err = Run(expanded)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}
