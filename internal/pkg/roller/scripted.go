package roller

import "sync"

// Scripted replays a fixed sequence of faces and then repeats the last one.
// It is safe for concurrent use.
type Scripted struct {
	mu    sync.Mutex
	faces []int
	next  int
}

// NewScripted returns a source that yields faces in order. With no faces it
// always rolls 1.
func NewScripted(faces ...int) *Scripted {
	return &Scripted{faces: append([]int(nil), faces...)}
}

// RollD10 returns the next scripted face
func (s *Scripted) RollD10() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.faces) == 0 {
		return 1
	}
	if s.next >= len(s.faces) {
		return s.faces[len(s.faces)-1]
	}
	face := s.faces[s.next]
	s.next++
	return face
}

// Push appends faces to the script
func (s *Scripted) Push(faces ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faces = append(s.faces, faces...)
}

// Consumed reports how many scripted faces have been read
func (s *Scripted) Consumed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
