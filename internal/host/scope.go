package host

// Scope collects release functions and runs them together. A component
// acquires every listener through its Scope and calls Release on each exit
// path; Release is idempotent so deferring it next to an explicit call is safe.
type Scope struct {
	releases []func()
	released bool
}

// Acquire records release to run on Release. If the scope is already
// released, release runs immediately so nothing outlives the scope.
func (s *Scope) Acquire(release func()) {
	if release == nil {
		return
	}
	if s.released {
		release()
		return
	}
	s.releases = append(s.releases, release)
}

// Release runs every recorded release function, most recent first.
func (s *Scope) Release() {
	if s.released {
		return
	}
	s.released = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// Held is the number of releases still pending.
func (s *Scope) Held() int { return len(s.releases) }

// Released reports whether Release has run.
func (s *Scope) Released() bool { return s.released }
