package main

import (
	"container/heap"
)

// FrontierEntry is one discovered cell waiting in the frontier
type FrontierEntry struct {
	Coord Coord // Cell the entry refers to
	Key   int   // Priority key: distance, plus the heuristic in A* mode
	Dist  int   // Actual path distance from start, never heuristic-biased
	Index int   // Index in the heap
}

// frontierQueue implements heap.Interface over frontier entries
type frontierQueue []*FrontierEntry

func (fq frontierQueue) Len() int { return len(fq) }

func (fq frontierQueue) Less(i, j int) bool {
	if fq[i].Key != fq[j].Key {
		return fq[i].Key < fq[j].Key
	}
	if fq[i].Dist != fq[j].Dist {
		return fq[i].Dist < fq[j].Dist
	}
	return fq[i].Coord.Less(fq[j].Coord)
}

func (fq frontierQueue) Swap(i, j int) {
	fq[i], fq[j] = fq[j], fq[i]
	fq[i].Index = i
	fq[j].Index = j
}

func (fq *frontierQueue) Push(x interface{}) {
	n := len(*fq)
	entry := x.(*FrontierEntry)
	entry.Index = n
	*fq = append(*fq, entry)
}

func (fq *frontierQueue) Pop() interface{} {
	old := *fq
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.Index = -1
	*fq = old[0 : n-1]
	return entry
}

// Frontier orders discovered-but-unsettled cells by priority key with a
// fixed tie-break (key, then actual distance, then coordinate order) so
// expansion traces are reproducible. Stale duplicate entries are allowed;
// callers must re-validate popped entries against the grid before acting
// on them.
type Frontier struct {
	queue frontierQueue
}

// NewFrontier creates an empty frontier
func NewFrontier() *Frontier {
	f := &Frontier{queue: frontierQueue{}}
	heap.Init(&f.queue)
	return f
}

// Len returns the number of entries, stale ones included
func (f *Frontier) Len() int { return f.queue.Len() }

// Push adds an entry for a cell. Pushing the same cell again with a
// different key is allowed; the older entry goes stale.
func (f *Frontier) Push(c Coord, key, dist int) {
	heap.Push(&f.queue, &FrontierEntry{Coord: c, Key: key, Dist: dist})
}

// PopMin removes and returns the minimum entry, or false when empty
func (f *Frontier) PopMin() (*FrontierEntry, bool) {
	if f.queue.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&f.queue).(*FrontierEntry), true
}
