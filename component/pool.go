package component

// Pool is a clamped resource in [0, Max]
type Pool struct {
	Value float64
	Max   float64
}

// NewPool returns a full pool
func NewPool(max float64) Pool {
	return Pool{Value: max, Max: max}
}

// Set assigns v clamped to [0, Max]
func (p *Pool) Set(v float64) {
	switch {
	case v < 0:
		p.Value = 0
	case v > p.Max:
		p.Value = p.Max
	default:
		p.Value = v
	}
}

// Add applies a signed delta with clamping
func (p *Pool) Add(d float64) { p.Set(p.Value + d) }

// Drain removes up to amount and returns the portion actually taken
func (p *Pool) Drain(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	taken := min(p.Value, amount)
	p.Value -= taken
	return taken
}

// Fill restores the pool to Max
func (p *Pool) Fill() { p.Value = p.Max }

// Empty reports a depleted pool
func (p *Pool) Empty() bool { return p.Value <= 0 }

// Percent returns Value as 0..100 of Max
func (p Pool) Percent() float64 {
	if p.Max <= 0 {
		return 0
	}
	return p.Value / p.Max * 100
}
