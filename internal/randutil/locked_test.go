package randutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLockedDeterministic(t *testing.T) {
	a := NewLocked(42)
	b := NewLocked(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNewLockedConcurrentUse(t *testing.T) {
	rng := NewLocked(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				n := rng.Intn(20)
				assert.GreaterOrEqual(t, n, 0)
				assert.Less(t, n, 20)
			}
		}()
	}
	wg.Wait()
}
