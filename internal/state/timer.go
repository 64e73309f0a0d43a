package state

import "fmt"

// Timer counts the seconds a session has been running.
type Timer struct {
	Elapsed int
	Active  bool
	// run invalidates ticks scheduled before the last Stop.
	run uint64
}

// StartTimer starts counting from zero. It does nothing before Begin or
// while the timer is already running.
func (s *State) StartTimer() {
	if !s.Started || s.Timer.Active {
		return
	}
	s.Timer.Elapsed = 0
	s.Timer.Active = true
	s.Timer.run++
	s.scheduleTick()
}

// StopTimer halts the timer. Calling it again is harmless.
func (s *State) StopTimer() {
	s.Timer.Active = false
}

// Tick advances the timer for a tick scheduled by this session's current run.
func (s *State) Tick(msg TickMsg) {
	if msg.Generation != s.Generation || msg.Run != s.Timer.run || !s.Timer.Active {
		return
	}
	s.Timer.Elapsed++
	s.presenter.TimeChanged(FormatElapsed(s.Timer.Elapsed))
	s.scheduleTick()
}

func (s *State) scheduleTick() {
	s.scheduler.Schedule(TickInterval, TickMsg{Generation: s.Generation, Run: s.Timer.run})
}

// FormatElapsed renders seconds as M:SS.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
