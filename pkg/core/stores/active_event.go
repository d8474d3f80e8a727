package stores

import (
	"sync"

	"github.com/jakechorley/activibe/pkg/core/model"
)

// ActiveDrive identifies the drive a volunteer is checked in to
type ActiveDrive struct {
	DriveID   string
	DriveName string
	NGOID     string
	NGOName   string
	CheckinID string
}

// EventStatus is what the map screen shows for the current session
type EventStatus string

const (
	StatusOutside   EventStatus = "outside"
	StatusCheckedIn EventStatus = "checked-in"
	StatusLeftZone  EventStatus = "left-zone"
	StatusEnded     EventStatus = "ended"
)

// ActiveEventState is a point-in-time copy of the active event store
type ActiveEventState struct {
	ActiveDrive  *ActiveDrive
	TimerSeconds int
	InZone       bool
	PostCount    int
	PostLimit    int
	EventEnded   bool
}

// Status derives the display status from the state flags
func (s ActiveEventState) Status() EventStatus {
	switch {
	case s.EventEnded:
		return StatusEnded
	case s.ActiveDrive != nil && s.InZone:
		return StatusCheckedIn
	case s.ActiveDrive != nil:
		return StatusLeftZone
	default:
		return StatusOutside
	}
}

// ActiveEventStore tracks one volunteer's presence at a single drive.
//
// There is at most one session at a time. Every operation is total: calls
// that make no sense in the current state leave it unchanged.
type ActiveEventStore struct {
	mu sync.Mutex

	drive      model.Drive
	newCheckin func() string

	activeDrive  *ActiveDrive
	timerSeconds int
	inZone       bool
	postCount    int
	eventEnded   bool
}

// NewActiveEventStore creates a store bound to drive. newCheckinID is called
// once per new session to mint the check-in identifier.
func NewActiveEventStore(drive model.Drive, newCheckinID func() string) *ActiveEventStore {
	return &ActiveEventStore{
		drive:      drive,
		newCheckin: newCheckinID,
	}
}

// SimulateEntry opens a session if none exists and marks the volunteer in-zone
func (s *ActiveEventStore) SimulateEntry() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeDrive == nil {
		s.activeDrive = &ActiveDrive{
			DriveID:   s.drive.ID,
			DriveName: s.drive.Name,
			NGOID:     s.drive.NGOID,
			NGOName:   s.drive.NGOName,
			CheckinID: s.newCheckin(),
		}
	}
	s.inZone = true
	s.eventEnded = false
}

// SimulateExit pauses the timer. The session and elapsed time are kept.
func (s *ActiveEventStore) SimulateExit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inZone = false
}

// SimulatePost counts one post against the drive's post limit. It reports
// whether the post was counted; at the limit nothing changes.
func (s *ActiveEventStore) SimulatePost() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.postCount >= s.drive.PostLimit {
		return false
	}
	s.postCount++
	return true
}

// EndEvent closes the event but keeps the session on display until checkout
func (s *ActiveEventStore) EndEvent() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eventEnded = true
	s.inZone = false
}

// Checkout tears the session down and zeroes every counter
func (s *ActiveEventStore) Checkout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
}

// Reset is Checkout under the name the developer tools use
func (s *ActiveEventStore) Reset() {
	s.Checkout()
}

// IncrementTimer adds one second while a session exists and the volunteer is in-zone
func (s *ActiveEventStore) IncrementTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeDrive != nil && s.inZone {
		s.timerSeconds++
	}
}

// Snapshot returns a consistent copy of the store's state
func (s *ActiveEventStore) Snapshot() ActiveEventState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := ActiveEventState{
		TimerSeconds: s.timerSeconds,
		InZone:       s.inZone,
		PostCount:    s.postCount,
		PostLimit:    s.drive.PostLimit,
		EventEnded:   s.eventEnded,
	}
	if s.activeDrive != nil {
		d := *s.activeDrive
		state.ActiveDrive = &d
	}
	return state
}

// Drive returns the drive sessions are bound to
func (s *ActiveEventStore) Drive() model.Drive {
	return s.drive
}

func (s *ActiveEventStore) clear() {
	s.activeDrive = nil
	s.timerSeconds = 0
	s.inZone = false
	s.postCount = 0
	s.eventEnded = false
}
