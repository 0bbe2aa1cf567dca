package xsync

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutexWithLock(t *testing.T) {
	var m Mutex
	var inside, overlapped atomic.Bool

	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := 0; i < 100; i++ {
				m.WithLock(func() {
					if !inside.CompareAndSwap(false, true) {
						overlapped.Store(true)
					}
					runtime.Gosched()
					inside.Store(false)
				})
			}
		}()
	}
	wg.Wait()

	require.False(t, overlapped.Load())
}

func TestRWMutexWithRLock(t *testing.T) {
	var m RWMutex
	pair := [2]int{21, 21}

	var torn atomic.Int64
	var wg sync.WaitGroup

	for r := 0; r < 50; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := 0; i < 500; i++ {
				m.WithRLock(func() {
					if pair[0]+pair[1] != 42 {
						torn.Add(1)
					}
				})
				runtime.Gosched()
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		for i := 0; i < 200; i++ {
			m.WithLock(func() {
				pair[0]++
				pair[1]--
			})
			runtime.Gosched()
		}
	}()

	wg.Wait()
	require.Zero(t, torn.Load())
	require.Equal(t, 42, pair[0]+pair[1])
}

func TestWithLockResult(t *testing.T) {
	var m Mutex
	counter := 0

	var wg sync.WaitGroup
	results := make([]int, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			results[i] = WithLock(&m, func() int {
				counter++

				return counter
			})
		}(i)
	}
	wg.Wait()

	require.Equal(t, 100, counter)
	seen := make(map[int]struct{}, len(results))
	for _, result := range results {
		seen[result] = struct{}{}
	}
	require.Len(t, seen, 100)
}

func TestWithRLockResult(t *testing.T) {
	var m RWMutex
	value := 42

	var wg sync.WaitGroup
	results := make([]int, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			results[i] = WithRLock(&m, func() int {
				return value
			})
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		require.Equal(t, 42, result)
	}
}
