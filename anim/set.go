package anim

import "time"

// Set plays its members together and ends once the last of them has ended.
type Set struct {
	listeners

	members []Animator
	done    []bool
	running bool
}

// Together joins animators into one logical animation with a single end callback.
func Together(members ...Animator) *Set {
	return &Set{
		members: members,
		done:    make([]bool, len(members)),
	}
}

// SetDuration overrides the duration of every member.
func (s *Set) SetDuration(d time.Duration) {
	for _, m := range s.members {
		m.SetDuration(d)
	}
}

// Running reports whether any member is still playing.
func (s *Set) Running() bool {
	return s.running
}

// Start fires the set's start listeners, then starts every member.
func (s *Set) Start() {
	if s.running {
		return
	}
	s.running = true
	for i := range s.done {
		s.done[i] = false
	}
	s.fireStart()
	for _, m := range s.members {
		m.Start()
	}
}

// Update advances every unfinished member. The set ends on the frame its last member ends.
func (s *Set) Update(dt time.Duration) bool {
	if !s.running {
		return true
	}
	finished := true
	for i, m := range s.members {
		if !s.done[i] {
			s.done[i] = m.Update(dt)
		}
		finished = finished && s.done[i]
	}
	if finished {
		s.end()
	}
	return finished
}

func (s *Set) end() {
	if !s.running {
		return
	}
	for i, m := range s.members {
		if !s.done[i] {
			m.end()
			s.done[i] = true
		}
	}
	s.running = false
	s.fireEnd()
}
