// Package registry holds the in-memory roster of extracurricular activities.
// The registry is the sole stateful entity in the system: it is seeded once at
// startup and mutated in place by signup/unregister calls for the life of the
// process. Activities are never created or deleted at runtime.
package registry

import (
	"errors"
	"sync"
)

var (
	ErrActivityNotFound = errors.New("ACTIVITY_NOT_FOUND")
	ErrAlreadySignedUp  = errors.New("ALREADY_SIGNED_UP")
	ErrNotSignedUp      = errors.New("NOT_SIGNED_UP")
)

// Activity is a named extracurricular offering. Participants is ordered by
// signup time and holds each email at most once.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registry maps activity name to its record. Construct one per process (or
// per test) and inject it into the handlers; there is no package-level
// instance. The mutex exists for memory safety under the concurrent HTTP
// server, it makes no ordering promise across requests.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// New builds a registry from a seed roster. The seed is deep-copied so the
// caller's map stays untouched by later mutations.
func New(seed map[string]*Activity) *Registry {
	activities := make(map[string]*Activity, len(seed))
	for name, act := range seed {
		activities[name] = &Activity{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    append([]string(nil), act.Participants...),
		}
	}
	return &Registry{activities: activities}
}

// Snapshot returns a deep copy of the full name-to-activity mapping.
func (r *Registry) Snapshot() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		out[name] = Activity{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    append([]string(nil), act.Participants...),
		}
	}
	return out
}

// Signup appends email to the named activity's participant list, preserving
// signup order. No capacity check is made against MaxParticipants: the roster
// accepts signups past capacity.
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for _, participant := range act.Participants {
		if participant == email {
			return ErrAlreadySignedUp
		}
	}

	act.Participants = append(act.Participants, email)
	return nil
}

// Unregister removes email from the named activity's participant list.
func (r *Registry) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for i, participant := range act.Participants {
		if participant == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return nil
		}
	}

	return ErrNotSignedUp
}
