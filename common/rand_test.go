package common

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRand(t *testing.T) {
	r := NewRand()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f := r.Float64()
				assert.True(t, f >= 0 && f < 1)
				n := r.Intn(3)
				assert.True(t, n >= 0 && n < 3)
				m := r.Int63n(10)
				assert.True(t, m >= 0 && m < 10)
			}
		}()
	}
	wg.Wait()
}
