package navigate

type planState int

const (
	planIdle planState = iota
	planPlanned
)

// Planner is a one-shot plan: any number of Plan calls are discharged by a
// single Drain.
type Planner struct {
	state planState
}

// Plan marks the action as owed.
func (p *Planner) Plan() {
	p.state = planPlanned
}

// Planned reports whether a Drain would run the action.
func (p *Planner) Planned() bool {
	return p.state == planPlanned
}

// Drain runs fn if a plan is pending and returns to idle. It reports whether
// fn ran.
func (p *Planner) Drain(fn func()) bool {
	if p.state != planPlanned {
		return false
	}
	fn()
	p.state = planIdle
	return true
}
