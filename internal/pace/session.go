package pace

// State is the observable state of a Session
type State int

const (
	StateEmpty State = iota
	StatePopulated
)

// String returns the state name
func (s State) String() string {
	if s == StatePopulated {
		return "populated"
	}
	return "empty"
}

// Session owns the two raw inputs and the two tables of one calculator screen
type Session struct {
	calc      Calculator
	paceText  string
	speedText string
	last      *Result
}

// NewSession creates an empty session
func NewSession(calc Calculator) *Session {
	return &Session{calc: calc}
}

// Calculator returns the calculator the session submits through
func (s *Session) Calculator() Calculator {
	return s.calc
}

// Submit validates in and replaces the tables on success.
// On error the previous tables stay as they were.
func (s *Session) Submit(in Input) (Result, error) {
	s.paceText = in.PaceText
	s.speedText = in.SpeedText

	res, err := s.calc.Calculate(in)
	if err != nil {
		return Result{}, err
	}

	s.paceText = res.PaceText
	s.speedText = res.SpeedText
	s.last = &res
	return res, nil
}

// Reset clears both inputs and both tables
func (s *Session) Reset() {
	s.paceText = ""
	s.speedText = ""
	s.last = nil
}

// State reports whether the session holds tables
func (s *Session) State() State {
	if s.last == nil {
		return StateEmpty
	}
	return StatePopulated
}

// Inputs returns the current pace and speed field text
func (s *Session) Inputs() (paceText, speedText string) {
	return s.paceText, s.speedText
}

// Last returns the most recent successful result, or nil when empty
func (s *Session) Last() *Result {
	return s.last
}

// DistanceTable returns the current distance-to-time rows (empty after Reset)
func (s *Session) DistanceTable() []Row {
	if s.last == nil {
		return nil
	}
	return s.last.Distances
}

// TimeTable returns the current time-to-distance rows (empty after Reset)
func (s *Session) TimeTable() []Row {
	if s.last == nil {
		return nil
	}
	return s.last.Times
}
