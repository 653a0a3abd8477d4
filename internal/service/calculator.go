package service

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"pacecalc/internal/pace"
	"pacecalc/internal/store"
)

// HistoryStore is the part of the store the calculator service needs
type HistoryStore interface {
	SaveCalculation(c *store.Calculation) error
	RecentCalculations(limit int) ([]store.Calculation, error)
	CountCalculations() (int, error)
	ClearCalculations() error
	GetState(key string) (string, error)
	SetState(key, value string) error
}

// CalculatorService runs submits through a pace session and records the
// successful ones. A nil store disables history.
type CalculatorService struct {
	session *pace.Session
	store   HistoryStore
	limit   int
	now     func() time.Time
}

// NewCalculatorService creates a new calculator service
func NewCalculatorService(calc pace.Calculator, history HistoryStore, limit int) *CalculatorService {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &CalculatorService{
		session: pace.NewSession(calc),
		store:   history,
		limit:   limit,
		now:     time.Now,
	}
}

// Outcome is a successful submit
type Outcome struct {
	Result pace.Result
	// HistoryErr is set when the result could not be recorded
	HistoryErr error
}

// Session returns the underlying session
func (s *CalculatorService) Session() *pace.Session {
	return s.session
}

// HistoryEnabled reports whether submits are recorded
func (s *CalculatorService) HistoryEnabled() bool {
	return s.store != nil
}

// Submit validates in and, on success, records it in the history.
// The returned error is always a *pace.ValidationError.
func (s *CalculatorService) Submit(in pace.Input) (*Outcome, error) {
	res, err := s.session.Submit(in)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Result: res}
	if s.store == nil {
		return out, nil
	}

	calc := s.session.Calculator()
	entry := &store.Calculation{
		PaceText:     res.PaceText,
		SpeedText:    res.SpeedText,
		Source:       sourceName(res.Source),
		Mode:         calc.Mode.String(),
		Rounding:     calc.Rounding.String(),
		PaceMinPerKm: res.Pace,
		SpeedKmh:     res.Speed,
		CreatedAt:    s.now(),
	}
	if err := s.store.SaveCalculation(entry); err != nil {
		out.HistoryErr = fmt.Errorf("recording calculation: %w", err)
		return out, nil
	}
	if err := s.saveInputs(res.PaceText, res.SpeedText, sourceName(res.Source)); err != nil {
		out.HistoryErr = err
	}
	return out, nil
}

// Reset clears the session and the remembered inputs
func (s *CalculatorService) Reset() error {
	s.session.Reset()
	if s.store == nil {
		return nil
	}
	return s.saveInputs("", "", "")
}

// RestoreInputs returns the inputs of the last successful submit from a previous run.
// Edited names the field that submit was computed from.
func (s *CalculatorService) RestoreInputs() (pace.Input, error) {
	if s.store == nil {
		return pace.Input{}, nil
	}
	paceText, err := s.store.GetState(store.StateLastPaceText)
	if err != nil {
		return pace.Input{}, fmt.Errorf("loading last pace: %w", err)
	}
	speedText, err := s.store.GetState(store.StateLastSpeedText)
	if err != nil {
		return pace.Input{}, fmt.Errorf("loading last speed: %w", err)
	}
	source, err := s.store.GetState(store.StateLastSource)
	if err != nil {
		return pace.Input{}, fmt.Errorf("loading last source: %w", err)
	}
	return pace.Input{PaceText: paceText, SpeedText: speedText, Edited: sourceField(source)}, nil
}

func (s *CalculatorService) saveInputs(paceText, speedText, source string) error {
	if err := s.store.SetState(store.StateLastPaceText, paceText); err != nil {
		return fmt.Errorf("saving last pace: %w", err)
	}
	if err := s.store.SetState(store.StateLastSpeedText, speedText); err != nil {
		return fmt.Errorf("saving last speed: %w", err)
	}
	if err := s.store.SetState(store.StateLastSource, source); err != nil {
		return fmt.Errorf("saving last source: %w", err)
	}
	return nil
}

// HistoryEntry is a history row ready for display
type HistoryEntry struct {
	ID        string
	Input     string // what the user typed, e.g. "配速 630"
	Pace      string // "6:30"
	Speed     string // "9.2"
	Mode      string
	Rounding  string
	CreatedAt time.Time
	Ago       string // "3 minutes ago"
}

// History returns the most recent recorded calculations, newest first
func (s *CalculatorService) History() ([]HistoryEntry, error) {
	if s.store == nil {
		return nil, nil
	}

	calcs, err := s.store.RecentCalculations(s.limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	now := s.now()
	entries := make([]HistoryEntry, 0, len(calcs))
	for _, c := range calcs {
		rounding, _ := pace.ParseRounding(c.Rounding)
		entries = append(entries, HistoryEntry{
			ID:        c.ID,
			Input:     inputLabel(c),
			Pace:      pace.FormatPaceClock(c.PaceMinPerKm, rounding),
			Speed:     pace.FormatSpeedText(c.PaceMinPerKm),
			Mode:      c.Mode,
			Rounding:  c.Rounding,
			CreatedAt: c.CreatedAt,
			Ago:       humanize.RelTime(c.CreatedAt, now, "ago", "from now"),
		})
	}
	return entries, nil
}

// HistoryCount returns how many calculations are recorded in total
func (s *CalculatorService) HistoryCount() (int, error) {
	if s.store == nil {
		return 0, nil
	}
	n, err := s.store.CountCalculations()
	if err != nil {
		return 0, fmt.Errorf("counting history: %w", err)
	}
	return n, nil
}

// ClearHistory removes every recorded calculation
func (s *CalculatorService) ClearHistory() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.ClearCalculations(); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// DistanceSeries returns the km covered for each fixed duration, for charting
func DistanceSeries(p float64) []float64 {
	durations := pace.Durations()
	series := make([]float64, 0, len(durations))
	for _, d := range durations {
		series = append(series, pace.KmFor(d.Minutes, p))
	}
	return series
}

func sourceName(f pace.Field) string {
	if f == pace.FieldSpeed {
		return SourceSpeed
	}
	return SourcePace
}

func sourceField(name string) pace.Field {
	switch name {
	case SourcePace:
		return pace.FieldPace
	case SourceSpeed:
		return pace.FieldSpeed
	}
	return pace.FieldNone
}

func inputLabel(c store.Calculation) string {
	if c.Source == SourceSpeed {
		return "时速 " + c.SpeedText
	}
	return "配速 " + c.PaceText
}
