package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/core/stores"
)

var (
	ErrNoActiveDrive    = errors.New("no active drive, enter the drive zone first")
	ErrNotInZone        = errors.New("not inside the drive zone")
	ErrEventNotEnded    = errors.New("event has not ended yet")
	ErrPostLimitReached = errors.New("post limit reached for this drive")
)

const (
	defaultLiveCaption      = "Loving this drive! 🌊 Making a real difference today."
	defaultPostEventCaption = "Just wrapped up an amazing drive! 🌿✨"
	justNow                 = "Just now"
)

// ActiveEventTracker defines the active event operations the check-in flow needs
type ActiveEventTracker interface {
	SimulateEntry()
	SimulateExit()
	SimulatePost() bool
	EndEvent()
	Checkout()
	Snapshot() stores.ActiveEventState
	Drive() model.Drive
}

// FeedWriter receives posts shared during a drive
type FeedWriter interface {
	AddPost(post model.FeedPost)
}

// EnterResult describes the session after entering the zone
type EnterResult struct {
	State stores.ActiveEventState
	// Celebrate is true when this entry started a session or resumed an ended one
	Celebrate bool
}

// EnterZone records the volunteer walking into the drive zone
func EnterZone(ctx context.Context, events ActiveEventTracker, logger *zap.Logger) *EnterResult {
	before := events.Snapshot()
	events.SimulateEntry()
	after := events.Snapshot()

	celebrate := before.ActiveDrive == nil || before.EventEnded
	if celebrate {
		logger.Info("Checked in to drive",
			zap.String("drive_id", after.ActiveDrive.DriveID),
			zap.String("checkin_id", after.ActiveDrive.CheckinID))
	} else {
		logger.Debug("Re-entered drive zone",
			zap.String("checkin_id", after.ActiveDrive.CheckinID),
			zap.Int("timer_seconds", after.TimerSeconds))
	}

	return &EnterResult{State: after, Celebrate: celebrate}
}

// LeaveZone pauses the session timer
func LeaveZone(ctx context.Context, events ActiveEventTracker, logger *zap.Logger) (stores.ActiveEventState, error) {
	state := events.Snapshot()
	if state.ActiveDrive == nil {
		return state, ErrNoActiveDrive
	}

	events.SimulateExit()
	state = events.Snapshot()

	logger.Debug("Left drive zone",
		zap.String("checkin_id", state.ActiveDrive.CheckinID),
		zap.Int("timer_seconds", state.TimerSeconds))

	return state, nil
}

// ShareLivePost posts from inside the zone. The post counts against the
// drive's post limit and is verified as live.
func ShareLivePost(ctx context.Context, events ActiveEventTracker, feed FeedWriter, author model.User, caption string, logger *zap.Logger) (*model.FeedPost, error) {
	state := events.Snapshot()
	if state.ActiveDrive == nil {
		return nil, ErrNoActiveDrive
	}
	if !state.InZone {
		return nil, ErrNotInZone
	}

	if caption == "" {
		caption = defaultLiveCaption
	}
	return sharePost(events, feed, author, model.PostTypeVolunteerLive, model.VerifiedLive, caption, logger)
}

// SharePostEventPost posts after the event has ended, verified as post-event
func SharePostEventPost(ctx context.Context, events ActiveEventTracker, feed FeedWriter, author model.User, caption string, logger *zap.Logger) (*model.FeedPost, error) {
	state := events.Snapshot()
	if state.ActiveDrive == nil {
		return nil, ErrNoActiveDrive
	}
	if !state.EventEnded {
		return nil, ErrEventNotEnded
	}

	if caption == "" {
		caption = defaultPostEventCaption
	}
	return sharePost(events, feed, author, model.PostTypeVolunteerPostEvent, model.VerifiedPostEvent, caption, logger)
}

// EndEvent closes the event, keeping the session for display until checkout
func EndEvent(ctx context.Context, events ActiveEventTracker, logger *zap.Logger) (stores.ActiveEventState, error) {
	state := events.Snapshot()
	if state.ActiveDrive == nil {
		return state, ErrNoActiveDrive
	}

	events.EndEvent()
	state = events.Snapshot()

	logger.Info("Event ended",
		zap.String("checkin_id", state.ActiveDrive.CheckinID),
		zap.Int("timer_seconds", state.TimerSeconds),
		zap.Int("post_count", state.PostCount))

	return state, nil
}

// Checkout tears the session down and returns the volunteer's performance card
func Checkout(ctx context.Context, events ActiveEventTracker, volunteer model.User, endorsements []model.Endorsement, logger *zap.Logger) (*PerformanceCard, error) {
	state := events.Snapshot()
	if state.ActiveDrive == nil {
		return nil, ErrNoActiveDrive
	}

	events.Checkout()

	logger.Info("Checked out of drive",
		zap.String("drive_id", state.ActiveDrive.DriveID),
		zap.String("checkin_id", state.ActiveDrive.CheckinID),
		zap.Int("active_seconds", state.TimerSeconds),
		zap.Int("posts", state.PostCount))

	return BuildPerformanceCard(volunteer, endorsements, &state), nil
}

func sharePost(events ActiveEventTracker, feed FeedWriter, author model.User, postType model.PostType, badge model.VerifiedBadge, caption string, logger *zap.Logger) (*model.FeedPost, error) {
	state := events.Snapshot()
	if !events.SimulatePost() {
		logger.Debug("Post rejected at limit",
			zap.Int("post_count", state.PostCount),
			zap.Int("post_limit", state.PostLimit))
		return nil, fmt.Errorf("%w (%d/%d)", ErrPostLimitReached, state.PostCount, state.PostLimit)
	}

	drive := events.Drive()
	post := model.FeedPost{
		ID:            "post-" + uuid.New().String(),
		Type:          postType,
		AuthorName:    author.Name,
		AuthorAvatar:  author.AvatarURL,
		AuthorRole:    model.RoleVolunteer,
		DriveName:     drive.Name,
		NGOName:       drive.NGOName,
		Caption:       caption,
		VerifiedBadge: badge,
		Timestamp:     justNow,
	}
	feed.AddPost(post)

	logger.Info("Shared drive post",
		zap.String("post_id", post.ID),
		zap.String("type", string(post.Type)),
		zap.Int("post_count", state.PostCount+1),
		zap.Int("post_limit", state.PostLimit))

	return &post, nil
}
