package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedCountsKeepsFirstSeenOrder(t *testing.T) {
	var counts OrderedCounts
	for _, label := range []string{"shipped", "pending", "shipped", "delivered", "processing"} {
		counts.Increment(label)
	}

	assert.Equal(t, []string{"shipped", "pending", "delivered", "processing"}, counts.Labels())
	assert.Equal(t, 2, counts.Get("shipped"))
	assert.Equal(t, 0, counts.Get("cancelled"))

	raw, err := json.Marshal(counts)
	require.NoError(t, err)
	assert.Equal(t, `{"shipped":2,"pending":1,"delivered":1,"processing":1}`, string(raw))
}

func TestOrderedCountsEmptyMarshalsToObject(t *testing.T) {
	raw, err := json.Marshal(OrderedCounts{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}

func TestOrderedCountsUnmarshalPreservesOrder(t *testing.T) {
	var counts OrderedCounts
	require.NoError(t, json.Unmarshal([]byte(`{"b":2,"a":1}`), &counts))
	assert.Equal(t, []string{"b", "a"}, counts.Labels())

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &counts))
}

func TestOrderedCountsMaxIsStable(t *testing.T) {
	var counts OrderedCounts
	_, ok := counts.Max()
	assert.False(t, ok)

	for _, label := range []string{"A", "B", "B", "A", "C"} {
		counts.Increment(label)
	}
	best, ok := counts.Max()
	require.True(t, ok)
	assert.Equal(t, CountEntry{Label: "A", Count: 2}, best)
}
