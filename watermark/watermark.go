package watermark

import (
	"math"
)

// Partial is the watermark of a single upstream input.
type Partial struct {
	idle      bool
	timestamp int64
}

func (p *Partial) SetIdle(idle bool) {
	p.idle = idle
}

func (p *Partial) IsIdle() bool {
	return p.idle
}

func (p *Partial) Timestamp() int64 {
	return p.timestamp
}

func (p *Partial) Update(timestamp int64) {
	p.idle = false
	p.timestamp = timestamp
}

// Combine tracks the combined input watermark over several inputs: the
// minimum over all non-idle inputs, monotonically non-decreasing. It is
// the lower bound on future event timestamps for the computation.
type Combine struct {
	idle     bool
	combined int64
	partials []*Partial
}

func NewCombine(inputs int) *Combine {
	var partials []*Partial
	for p := 0; p < inputs; p++ {
		partials = append(partials, &Partial{idle: true, timestamp: math.MaxInt64})
	}
	return &Combine{
		idle:     true,
		combined: math.MinInt64,
		partials: partials,
	}
}

func (c *Combine) IsIdle() bool {
	return c.idle
}

func (c *Combine) Get() int64 {
	return c.combined
}

// Update records a new watermark for one input (1-based) and reports
// whether the combined watermark advanced.
func (c *Combine) Update(timestamp int64, input int) bool {
	c.partials[input-1].Update(timestamp)
	return c.combine()
}

// UpdateIdle marks one input (1-based) idle or active and reports whether
// the combined watermark advanced.
func (c *Combine) UpdateIdle(idle bool, input int) bool {
	c.partials[input-1].SetIdle(idle)
	return c.combine()
}

func (c *Combine) combine() bool {
	if len(c.partials) == 0 {
		return false
	}
	var minimumOverAllInputs int64 = math.MaxInt64
	allIdle := true
	for _, partial := range c.partials {
		if !partial.IsIdle() {
			minimumOverAllInputs = int64(math.Min(float64(minimumOverAllInputs), float64(partial.Timestamp())))
			allIdle = false
		}
	}
	c.idle = allIdle
	if !allIdle && minimumOverAllInputs > c.combined {
		c.combined = minimumOverAllInputs
		return true
	}
	return false
}
