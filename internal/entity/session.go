package entity

// Mode is the state of an edit session.
type Mode string

const (
	ModeClosed   Mode = "closed"
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

// EditSession tracks the record being created or edited and its draft.
type EditSession struct {
	mode     Mode
	targetID string
	draft    Draft
	errors   map[string]string
}

// SessionSnapshot is a read-only copy of an edit session.
type SessionSnapshot struct {
	Mode     Mode              `json:"mode"`
	TargetID string            `json:"targetId,omitempty"`
	Draft    Draft             `json:"draft,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// Open reports whether a draft is in progress.
func (s *EditSession) Open() bool {
	return s.mode == ModeCreating || s.mode == ModeEditing
}

func (s *EditSession) openCreate(blank Draft) {
	s.mode = ModeCreating
	s.targetID = ""
	s.draft = blank.Clone()
	s.errors = nil
}

func (s *EditSession) openEdit(id string, current Draft) {
	s.mode = ModeEditing
	s.targetID = id
	s.draft = current.Clone()
	s.errors = nil
}

// set changes one draft value and clears the error previously reported for it.
func (s *EditSession) set(key, value string) {
	s.draft[key] = value
	delete(s.errors, key)
}

func (s *EditSession) fail(errors map[string]string) {
	s.errors = make(map[string]string, len(errors))
	for k, v := range errors {
		s.errors[k] = v
	}
}

func (s *EditSession) close() {
	s.mode = ModeClosed
	s.targetID = ""
	s.draft = nil
	s.errors = nil
}

func (s *EditSession) snapshot() SessionSnapshot {
	mode := s.mode
	if mode == "" {
		mode = ModeClosed
	}
	snap := SessionSnapshot{Mode: mode, TargetID: s.targetID, Draft: s.draft.Clone()}
	if len(s.errors) > 0 {
		snap.Errors = make(map[string]string, len(s.errors))
		for k, v := range s.errors {
			snap.Errors[k] = v
		}
	}
	return snap
}
