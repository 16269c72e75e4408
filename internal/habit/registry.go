package habit

import (
	"context"
	"errors"
	"time"

	"github.com/strideapp/stride/internal/period"
)

// Record is the persisted shape of a habit, as loaded from storage.
type Record struct {
	Name        string
	Periodicity period.Periodicity
	CreatedAt   time.Time
}

// Storage is the persistence collaborator injected into the Registry.
//
// The registry calls these synchronously and treats any failure as a
// STORAGE_ERROR, propagated to the caller unchanged and never retried.
// Implementations are assumed to have exclusive, non-concurrent use; the
// reference implementation is internal/store.
type Storage interface {
	// LoadAllHabits returns every stored habit in insertion order.
	LoadAllHabits(ctx context.Context) ([]Record, error)

	// LoadCompletions returns a habit's completion dates in ascending order.
	LoadCompletions(ctx context.Context, name string) ([]time.Time, error)

	// PersistHabit stores a newly created habit.
	PersistHabit(ctx context.Context, rec Record) error

	// PersistCompletion stores one completion for a habit.
	PersistCompletion(ctx context.Context, name string, date time.Time) error

	// DeleteHabit removes a habit and all its completions atomically.
	DeleteHabit(ctx context.Context, name string) error
}

// Registry holds all habits for the lifetime of the process.
//
// Habits are keyed by canonical name so uniqueness is enforced by the map
// itself; a separate slice preserves insertion order for stable listings.
// The registry owns all mutation: every state change persists to storage
// first and touches memory only on success, keeping failures all-or-nothing.
//
// Not safe for concurrent use. The process model is single-writer,
// synchronous execution; see the storage contract above.
type Registry struct {
	storage Storage
	habits  map[string]*Habit
	order   []string
}

// NewRegistry creates an empty registry over the given storage.
func NewRegistry(storage Storage) *Registry {
	return &Registry{
		storage: storage,
		habits:  make(map[string]*Habit),
	}
}

// Load creates a registry populated from storage: all habits plus each
// habit's completion history. Listing order follows storage insertion
// order, which matches creation sequence.
func Load(ctx context.Context, storage Storage) (*Registry, error) {
	r := NewRegistry(storage)

	records, err := storage.LoadAllHabits(ctx)
	if err != nil {
		return nil, NewStorageError("load habits", err)
	}

	for _, rec := range records {
		h := New(rec.Name, rec.Periodicity, rec.CreatedAt)

		dates, err := storage.LoadCompletions(ctx, rec.Name)
		if err != nil {
			return nil, NewStorageError("load completions", err)
		}
		for _, d := range dates {
			// Stored completions are already one-per-period; a duplicate
			// here means a hand-edited database, which we tolerate by
			// keeping the first entry.
			_ = h.ledger.Record(d)
		}

		r.habits[h.Name] = h
		r.order = append(r.order, h.Name)
	}

	return r, nil
}

// AddHabit creates a habit with an empty ledger and created_at = today.
// Fails with DUPLICATE_HABIT if the name is already registered and leaves
// the existing habit untouched.
func (r *Registry) AddHabit(ctx context.Context, name string, p period.Periodicity, today time.Time) (*Habit, error) {
	name = CanonicalName(name)
	if name == "" {
		return nil, errors.New("habit name must not be empty")
	}
	if _, ok := r.habits[name]; ok {
		return nil, NewDuplicateHabitError(name)
	}

	h := New(name, p, today)
	rec := Record{Name: h.Name, Periodicity: h.Periodicity, CreatedAt: h.CreatedAt}
	if err := r.storage.PersistHabit(ctx, rec); err != nil {
		return nil, NewStorageError("persist habit", err)
	}

	r.habits[name] = h
	r.order = append(r.order, name)
	return h, nil
}

// DeleteHabit removes a habit and its entire ledger.
// Fails with HABIT_NOT_FOUND if absent. Storage performs the cascade in a
// single transaction, and memory is only updated after it succeeds, so the
// removal is both-or-neither.
func (r *Registry) DeleteHabit(ctx context.Context, name string) error {
	name = CanonicalName(name)
	if _, ok := r.habits[name]; !ok {
		return NewNotFoundError(name)
	}

	if err := r.storage.DeleteHabit(ctx, name); err != nil {
		return NewStorageError("delete habit", err)
	}

	delete(r.habits, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// CompleteHabit records a completion for the given date's period.
// Fails with HABIT_NOT_FOUND for unknown names and surfaces
// DUPLICATE_COMPLETION unchanged from the ledger. The completion is
// persisted before the in-memory ledger is touched.
func (r *Registry) CompleteHabit(ctx context.Context, name string, date time.Time) error {
	name = CanonicalName(name)
	h, ok := r.habits[name]
	if !ok {
		return NewNotFoundError(name)
	}

	key := period.KeyFor(date, h.Periodicity)
	if h.ledger.Has(key) {
		return NewDuplicateCompletionError(name, key.String())
	}

	if err := r.storage.PersistCompletion(ctx, name, period.DateOf(date)); err != nil {
		return NewStorageError("persist completion", err)
	}

	return h.ledger.Record(date)
}

// Get returns the habit with the given name or HABIT_NOT_FOUND.
func (r *Registry) Get(name string) (*Habit, error) {
	name = CanonicalName(name)
	h, ok := r.habits[name]
	if !ok {
		return nil, NewNotFoundError(name)
	}
	return h, nil
}

// Habits returns all habits in insertion order, optionally filtered by
// periodicity. Pass nil for no filter.
func (r *Registry) Habits(filter *period.Periodicity) []*Habit {
	out := make([]*Habit, 0, len(r.order))
	for _, name := range r.order {
		h := r.habits[name]
		if filter != nil && h.Periodicity != *filter {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Len returns the number of registered habits.
func (r *Registry) Len() int {
	return len(r.habits)
}

// IncompleteFor returns, in insertion order, the habits with no completion
// recorded for the period containing today: daily habits not completed
// today, weekly habits not completed this week.
func (r *Registry) IncompleteFor(today time.Time) []*Habit {
	var out []*Habit
	for _, name := range r.order {
		h := r.habits[name]
		if !h.CompleteForPeriod(today) {
			out = append(out, h)
		}
	}
	return out
}

// StreakForHabit returns the named habit's longest streak.
// Fails with HABIT_NOT_FOUND for unknown names.
func (r *Registry) StreakForHabit(name string) (int, error) {
	h, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	return h.LongestStreak(), nil
}

// CurrentStreakForHabit returns the named habit's still-alive streak as of
// today. Fails with HABIT_NOT_FOUND for unknown names.
func (r *Registry) CurrentStreakForHabit(name string, today time.Time) (int, error) {
	h, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	return h.CurrentStreak(today), nil
}

// LongestStreakOverall returns the habit with the maximum longest streak
// across the registry, with its value. Ties resolve by earliest CreatedAt,
// then lexicographically by name, so the result is reproducible across
// runs. Returns ("", 0) for an empty registry.
func (r *Registry) LongestStreakOverall() (string, int) {
	var bestName string
	var best *Habit
	bestStreak := -1

	for _, name := range r.order {
		h := r.habits[name]
		s := h.LongestStreak()
		switch {
		case s > bestStreak:
		case s == bestStreak && h.CreatedAt.Before(best.CreatedAt):
		case s == bestStreak && h.CreatedAt.Equal(best.CreatedAt) && name < bestName:
		default:
			continue
		}
		bestName, best, bestStreak = name, h, s
	}

	if best == nil {
		return "", 0
	}
	return bestName, bestStreak
}
