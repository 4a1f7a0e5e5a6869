package monitor

// DefaultRingCapacity is the number of aged entries each series retains
// when no capacity is configured.
const DefaultRingCapacity = 512

// DefaultHistoryDivisor records one ring entry per this many ticks.
const DefaultHistoryDivisor = 4

// Ring holds the rolling CPU and memory history behind the overlay
// graph. Both series age together: Record is called every tick, but only
// every divisor-th call pushes an entry, so the ring spans
// capacity*divisor ticks of wall time.
//
// The ring is owned by the tick loop and is not safe for concurrent use.
type Ring struct {
	cpu     *ringBuffer
	mem     *ringBuffer
	divisor int
	ticks   int
}

// NewRing creates a history ring. Non-positive capacity or divisor fall
// back to the defaults.
func NewRing(capacity, divisor int) *Ring {
	if capacity <= 0 {
		capacity = DefaultRingCapacity
	}
	if divisor <= 0 {
		divisor = DefaultHistoryDivisor
	}
	return &Ring{
		cpu:     newRingBuffer(capacity),
		mem:     newRingBuffer(capacity),
		divisor: divisor,
	}
}

// Record feeds one tick's samples into the ring. Values are clamped to
// [0, 100] before storage. Only every divisor-th call ages the ring;
// the rest are no-ops. Returns true when an entry was pushed, which the
// caller can use to know the graph changed.
func (r *Ring) Record(cpuPct, memPct float64) bool {
	r.ticks++
	if r.ticks%r.divisor != 0 {
		return false
	}
	r.cpu.push(clampPercent(cpuPct))
	r.mem.push(clampPercent(memPct))
	return true
}

// Window returns exactly width chronological values per series, oldest
// first. While the ring holds fewer entries than width, the front is
// zero-padded so the graph grows in from the right edge.
func (r *Ring) Window(width int) (cpu, mem []float64) {
	if width <= 0 {
		return nil, nil
	}
	cpu = make([]float64, width)
	mem = make([]float64, width)
	r.cpu.fillLast(cpu)
	r.mem.fillLast(mem)
	return cpu, mem
}

// Count returns the number of aged entries currently stored.
func (r *Ring) Count() int {
	return r.cpu.count
}

// Capacity returns the maximum number of aged entries per series.
func (r *Ring) Capacity() int {
	return r.cpu.size
}

// ringBuffer is a fixed-size circular buffer of float64 values.
// push is O(1): the head index advances and the oldest value is
// overwritten once the buffer is full.
type ringBuffer struct {
	data  []float64
	head  int // next write position
	count int // number of valid entries
	size  int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, evicting the oldest when full.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// fillLast writes the most recent len(dst) values into dst in
// chronological order, right-aligned. Leading slots keep their zero
// values when fewer entries exist.
func (r *ringBuffer) fillLast(dst []float64) {
	n := len(dst)
	if n > r.count {
		n = r.count
	}
	if n == 0 {
		return
	}
	start := (r.head - n + r.size) % r.size
	offset := len(dst) - n
	for i := 0; i < n; i++ {
		dst[offset+i] = r.data[(start+i)%r.size]
	}
}
