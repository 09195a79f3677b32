package config

import "varheap/pkg/heap"

// HeapConfig carries the defaults spec.md §4.1 documents for construction:
// growth enabled, one page eagerly warmed, 4 MB pages and a 256-byte
// fragmentation threshold.
type HeapConfig struct {
	PageSize          uint32
	FragmentThreshold uint32
	GrowOnExhaustion  bool
	InitialPages      uint32
}

func NewHeapConfig() *HeapConfig {
	return &HeapConfig{
		PageSize:          4 * heap.MB,
		FragmentThreshold: 256,
		GrowOnExhaustion:  true,
		InitialPages:      1,
	}
}

// Options converts this config into the heap.Options the Manager
// constructor expects.
func (c *HeapConfig) Options() *heap.Options {
	return &heap.Options{
		PageSize:          c.PageSize,
		FragmentThreshold: c.FragmentThreshold,
		DisableGrowth:     !c.GrowOnExhaustion,
		InitialPages:      c.InitialPages,
	}
}
