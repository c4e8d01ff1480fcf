// internal/registry/registry_test.go
package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestRegistry() *Registry {
	return New(Seed())
}

// ==========================
// Seed Tests
// ==========================

func TestSeed_Roster(t *testing.T) {
	reg := createTestRegistry()
	snap := reg.Snapshot()

	assert.Len(t, snap, 9)
	assert.Contains(t, snap, "Chess Club")
	assert.Contains(t, snap, "Programming Class")

	chess := snap["Chess Club"]
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestNew_DeepCopiesSeed(t *testing.T) {
	seed := Seed()
	reg := New(seed)

	require.NoError(t, reg.Signup("Chess Club", "test@mergington.edu"))

	assert.Len(t, seed["Chess Club"].Participants, 2, "seed map must stay untouched")
	assert.Len(t, reg.Snapshot()["Chess Club"].Participants, 3)
}

func TestSnapshot_CopiesAreIsolated(t *testing.T) {
	reg := createTestRegistry()

	snap := reg.Snapshot()
	snap["Chess Club"].Participants[0] = "tampered@mergington.edu"

	assert.Equal(t, "michael@mergington.edu", reg.Snapshot()["Chess Club"].Participants[0])
}

// ==========================
// Signup Tests
// ==========================

func TestSignup(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{
			name:     "new participant",
			activity: "Chess Club",
			email:    "test@mergington.edu",
			wantErr:  nil,
		},
		{
			name:     "duplicate participant",
			activity: "Chess Club",
			email:    "michael@mergington.edu",
			wantErr:  ErrAlreadySignedUp,
		},
		{
			name:     "unknown activity",
			activity: "Nonexistent Club",
			email:    "test@mergington.edu",
			wantErr:  ErrActivityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := createTestRegistry()
			before := reg.Snapshot()

			err := reg.Signup(tt.activity, tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, reg.Snapshot(), "failed signup must not mutate the registry")
				return
			}

			require.NoError(t, err)
			got := reg.Snapshot()[tt.activity].Participants
			assert.Equal(t, tt.email, got[len(got)-1], "new participant appends at the end")
		})
	}
}

func TestSignup_PreservesOrder(t *testing.T) {
	reg := createTestRegistry()

	emails := []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"}
	for _, email := range emails {
		require.NoError(t, reg.Signup("Science Club", email))
	}

	want := append([]string{"james@mergington.edu"}, emails...)
	assert.Equal(t, want, reg.Snapshot()["Science Club"].Participants)
}

func TestSignup_CapacityNotEnforced(t *testing.T) {
	reg := createTestRegistry()
	max := reg.Snapshot()["Tennis Club"].MaxParticipants

	// Fill well past capacity; every signup must still succeed.
	for i := 0; i < max+5; i++ {
		err := reg.Signup("Tennis Club", fmt.Sprintf("student%d@mergington.edu", i))
		require.NoError(t, err)
	}

	assert.Greater(t, len(reg.Snapshot()["Tennis Club"].Participants), max)
}

// ==========================
// Unregister Tests
// ==========================

func TestUnregister(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{
			name:     "existing participant",
			activity: "Chess Club",
			email:    "michael@mergington.edu",
			wantErr:  nil,
		},
		{
			name:     "absent participant",
			activity: "Chess Club",
			email:    "notregistered@mergington.edu",
			wantErr:  ErrNotSignedUp,
		},
		{
			name:     "unknown activity",
			activity: "Nonexistent Club",
			email:    "michael@mergington.edu",
			wantErr:  ErrActivityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := createTestRegistry()
			before := reg.Snapshot()

			err := reg.Unregister(tt.activity, tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, reg.Snapshot(), "failed unregister must not mutate the registry")
				return
			}

			require.NoError(t, err)
			assert.NotContains(t, reg.Snapshot()[tt.activity].Participants, tt.email)
		})
	}
}

func TestSignupThenUnregister_RoundTrip(t *testing.T) {
	reg := createTestRegistry()
	before := reg.Snapshot()

	require.NoError(t, reg.Signup("Programming Class", "roundtrip@mergington.edu"))
	require.NoError(t, reg.Unregister("Programming Class", "roundtrip@mergington.edu"))

	assert.Equal(t, before, reg.Snapshot())
}
