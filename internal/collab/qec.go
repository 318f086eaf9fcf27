package collab

import "sync/atomic"

// QECState is a QECStatus hook backing: a toggle between "no code
// active" and "the named code is active", consulted by the fault-
// tolerant gates that know how to re-express themselves under a code
// (currently SwapLeads, via three CNOTs).
type QECState struct {
	enabled atomic.Bool
	codeID  atomic.Value // string
}

// NewQECState returns a state with no code active.
func NewQECState() *QECState {
	s := &QECState{}
	s.codeID.Store("")
	return s
}

// Enable activates the named code.
func (s *QECState) Enable(codeID string) {
	s.codeID.Store(codeID)
	s.enabled.Store(true)
}

// Disable deactivates whatever code was active.
func (s *QECState) Disable() {
	s.enabled.Store(false)
}

// Status is installed as a Register's Hooks.QECStatus field.
func (s *QECState) Status() (bool, string) {
	if !s.enabled.Load() {
		return false, ""
	}
	return true, s.codeID.Load().(string)
}
