// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package alert

// pending reports whether an auto-hide is scheduled.
func (s *Store) pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
