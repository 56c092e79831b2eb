package sim

// System is one stage of a simulation tick. A system that cannot complete
// sets f.Err and later stages are skipped for that tick.
type System interface {
	Update(f *Frame)
}

// Scheduler runs its systems in insertion order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// Add appends system to the tick. nil is ignored.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs one tick over f and returns the error of the first system
// that set f.Err.
func (s *Scheduler) Update(f *Frame) error {
	for _, system := range s.systems {
		system.Update(f)
		if f.Err != nil {
			return f.Err
		}
	}
	return nil
}
