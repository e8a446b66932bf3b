package idgen_test

import (
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/adapter/idgen"
)

func TestULIDGenerator_Generate(t *testing.T) {
	gen := idgen.NewULIDGenerator()

	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 100; i++ {
		id := gen.Generate()

		_, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Len(t, id, 26)
		assert.False(t, seen[id], "duplicate id %s", id)
		assert.Greater(t, id, prev)

		seen[id] = true
		prev = id
	}
}

func TestULIDGenerator_SameMillisecond(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := idgen.NewULIDGeneratorAt(func() time.Time { return fixed })

	prev := ""
	for i := 0; i < 1000; i++ {
		id := gen.Generate()

		parsed, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Equal(t, ulid.Timestamp(fixed), parsed.Time())
		require.Greater(t, id, prev)

		prev = id
	}
}

func TestULIDGenerator_Concurrent(t *testing.T) {
	gen := idgen.NewULIDGenerator()

	const workers, perWorker = 8, 200
	ids := make(chan string, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- gen.Generate()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, workers*perWorker)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}
