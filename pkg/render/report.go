package render

import "time"

// Outcome is the result of one task.
type Outcome struct {
	Task     Task
	Output   string // location reported by the sink; empty on failure
	Cached   bool   // PNG bytes came from the cache
	Err      error  // recoverable failure, nil on success
	Duration time.Duration
}

// OK reports whether the task produced an output.
func (o Outcome) OK() bool { return o.Err == nil }

// Report lists task outcomes in task order.
type Report struct {
	Outcomes []Outcome
}

// Rendered returns how many tasks succeeded, cached or not.
func (r *Report) Rendered() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Cached returns how many successful tasks were served from the cache.
func (r *Report) Cached() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() && o.Cached {
			n++
		}
	}
	return n
}

// Failures returns the failed outcomes in task order.
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}
