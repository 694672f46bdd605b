package search

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "failure", Failure.String())
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "cutoff", Cutoff.String())
	assert.Equal(t, "outcome(7)", Outcome(7).String())
}

func TestSentinelResults(t *testing.T) {
	for _, res := range []Result[string, string]{Failed[string, string](), CutOff[string, string]()} {
		assert.False(t, res.Found())
		assert.Nil(t, res.Node)
		assert.True(t, math.IsInf(res.PathCost(), 1))
		assert.Zero(t, res.Depth())
		assert.Equal(t, []string{}, res.PathActions())
		assert.Equal(t, []string{}, res.PathStates())
	}
	assert.Equal(t, "failure", Failed[int, int]().String())
	assert.Equal(t, "cutoff", CutOff[int, int]().String())

	// neither sentinel beats the other
	assert.False(t, Failed[int, int]().Less(CutOff[int, int]()))
	assert.False(t, CutOff[int, int]().Less(Failed[int, int]()))

	// Found without a node is not a solution
	assert.False(t, Result[int, int]{Outcome: Found}.Found())
}

func TestSolutionResult(t *testing.T) {
	root := NewRootNode[string, string]("S")
	goal := NewChildNode("G", NewChildNode("A", root, "A", 1), "G", 3.5)

	res := Solution(goal)
	assert.True(t, res.Found())
	assert.Equal(t, 3.5, res.PathCost())
	assert.Equal(t, 2, res.Depth())
	assert.Equal(t, []string{"A", "G"}, res.PathActions())
	assert.Equal(t, []string{"S", "A", "G"}, res.PathStates())
	assert.Equal(t, "<G> cost=3.5 depth=2", res.String())
}

func TestSentinelsLoseToEverySolution(t *testing.T) {
	runs := everyStrategy[string, string](diamond().problem())
	for _, s := range sortedStrategies(runs) {
		res, err := runs[s]()
		require.NoError(t, err)
		require.True(t, res.Found(), s)

		for _, sentinel := range []Result[string, string]{Failed[string, string](), CutOff[string, string]()} {
			assert.True(t, res.Less(sentinel), "%s result should beat %s", s, sentinel)
			assert.False(t, sentinel.Less(res), "%s should not beat %s result", sentinel, s)
		}
	}

	// a zero-cost solution too
	res, err := BreadthFirstSearch[int, int](context.Background(), counter(0, 1))
	require.NoError(t, err)
	assert.True(t, res.Less(Failed[int, int]()))
}
