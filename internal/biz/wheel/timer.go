package wheel

import (
	"container/heap"
	"time"
)

type timer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// timerQueue 基于 tick 时钟的定时回调队列，非并发安全
type timerQueue struct {
	now   time.Duration
	seq   uint64
	items timerHeap
}

// After 在当前时钟 d 之后执行 fn；回调内再次调用时以该回调的触发时刻为基准
func (q *timerQueue) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	q.seq++
	heap.Push(&q.items, &timer{at: q.now + d, seq: q.seq, fn: fn})
}

// Advance 推进时钟并按到期顺序触发回调
func (q *timerQueue) Advance(dt time.Duration) {
	target := q.now + dt
	for len(q.items) > 0 && q.items[0].at <= target {
		t := heap.Pop(&q.items).(*timer)
		q.now = t.at
		t.fn()
	}
	q.now = target
}

func (q *timerQueue) Len() int { return len(q.items) }

func (q *timerQueue) Now() time.Duration { return q.now }
