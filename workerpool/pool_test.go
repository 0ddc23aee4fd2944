package workerpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvplane/workerpool"
	"github.com/stretchr/testify/require"
)

func TestSubmitWaitRunsAllJobs(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	var count atomic.Int64
	const n = 200
	for i := 0; i < n; i++ {
		pool.Submit(func() {
			count.Add(1)
		})
	}
	pool.Wait()

	require.Equal(t, int64(n), count.Load())
}

func TestSingleWorker(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()

	var order []int
	ch := make(chan int, 10)
	for i := 0; i < 10; i++ {
		i := i
		pool.Submit(func() {
			ch <- i
		})
	}
	pool.Wait()
	close(ch)
	for v := range ch {
		order = append(order, v)
	}
	require.Len(t, order, 10)
}

func TestWaitIsReusable(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	var count atomic.Int64
	for round := 0; round < 3; round++ {
		for i := 0; i < 5; i++ {
			pool.Submit(func() { count.Add(1) })
		}
		pool.Wait()
	}
	require.Equal(t, int64(15), count.Load())
}
