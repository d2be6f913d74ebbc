package bench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homier/hashmap"
)

type countingCtx struct {
	ops int
}

func TestSuite_RunCallbackContract(t *testing.T) {
	var setups, teardowns, ops int

	s := NewSuite(WithWarmup(2), WithIterations(5), WithBatch(3))
	result := Run(s, Benchmark[*countingCtx]{
		Name:     "counting",
		Elements: 42,
		Setup: func(round int) *countingCtx {
			setups++
			return &countingCtx{}
		},
		Op: func(ctx *countingCtx, i int) {
			ctx.ops++
			ops++
		},
		Teardown: func(ctx *countingCtx) {
			teardowns++
			// Every round ran exactly one batch.
			assert.Equal(t, 3, ctx.ops)
		},
	})

	// Warmup and measured rounds both set up and tear down.
	assert.Equal(t, 7, setups)
	assert.Equal(t, 7, teardowns)
	assert.Equal(t, 21, ops)

	assert.Equal(t, "counting", result.Name)
	assert.Equal(t, 42, result.Elements)
	assert.Equal(t, 5, result.Samples)
	assert.GreaterOrEqual(t, result.AvgNs, 0.0)

	require.Len(t, s.Results(), 1)
	assert.Equal(t, result, s.Results()[0])
}

func TestSuite_NilTeardown(t *testing.T) {
	s := NewSuite(WithWarmup(0), WithIterations(1))

	require.NotPanics(t, func() {
		Run(s, Benchmark[int]{
			Name:  "no teardown",
			Setup: func(int) int { return 0 },
			Op:    func(int, int) {},
		})
	})
}

func TestSuite_DrivesMapThroughInterface(t *testing.T) {
	s := NewSuite(WithWarmup(1), WithIterations(3), WithBatch(10))

	result := Run(s, Benchmark[hashmap.Map[int, int]]{
		Name:     "ProbeMap::insert",
		Elements: 100,
		Setup: func(int) hashmap.Map[int, int] {
			m := hashmap.NewProbe[int, int](256)
			for i := 0; i < 100; i++ {
				_ = m.Insert(i, i)
			}
			return m
		},
		Op: func(m hashmap.Map[int, int], i int) {
			_ = m.Insert(1000+i, i)
		},
	})

	assert.Equal(t, 3, result.Samples)
}

func TestSuite_WriteCSV(t *testing.T) {
	s := NewSuite()
	s.results = []Result{
		{Name: "ChainMap::insert", Elements: 1000, AvgNs: 123.456, StdDevNs: 7.89, Samples: 290},
		{Name: "CuckooMap::at", Elements: 5000, AvgNs: 42, StdDevNs: 0.5, Samples: 300},
	}

	var buf strings.Builder
	require.NoError(t, s.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Algorithm,Elements,Average(ns),StdDev(ns),SamplesUsed", lines[0])
	assert.Equal(t, "ChainMap::insert,1000,123.46,7.89,290", lines[1])
	assert.Equal(t, "CuckooMap::at,5000,42.00,0.50,300", lines[2])
}

func TestSuite_WriteCSVFile(t *testing.T) {
	s := NewSuite()
	s.results = []Result{{Name: "x", Elements: 1, AvgNs: 1, StdDevNs: 0, Samples: 1}}

	path := t.TempDir() + "/results.csv"
	require.NoError(t, s.WriteCSVFile(path))

	assert.FileExists(t, path)
}

func TestSuite_WriteCSVEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, NewSuite().WriteCSV(&buf))

	assert.Equal(t, "Algorithm,Elements,Average(ns),StdDev(ns),SamplesUsed\n", buf.String())
}
