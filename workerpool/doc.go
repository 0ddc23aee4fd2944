// Package workerpool is a fixed-size goroutine pool: a pre-spawned,
// bounded worker set that the p3color and p3choose parallel drivers submit
// exactly one long-running job to per worker. It owns only scheduling; the
// frame-stealing, spinlock, and atomic counters that make each submitted
// job itself parallel-safe live in the owning package (p3color/parallel.go,
// p3choose/parallel.go).
package workerpool
