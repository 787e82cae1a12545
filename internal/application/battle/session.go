package battle

import "github.com/google/uuid"

// Session is the process-wide battle guard shared by the overworld and the
// battle screen. While Initiated is set no new encounter can start.
type Session struct {
	Initiated bool
	ID        uuid.UUID
	Count     int
}

// Begin marks a battle as started and assigns it a fresh id
func (s *Session) Begin() uuid.UUID {
	s.Initiated = true
	s.ID = uuid.New()
	s.Count++
	return s.ID
}

// End re-arms the encounter guard. The id of the last battle is kept for logs.
func (s *Session) End() {
	s.Initiated = false
}
