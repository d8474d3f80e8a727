package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/core/stores"
)

// SessionSummary is what one check-in contributed to the card
type SessionSummary struct {
	DriveName     string
	NGOName       string
	CheckinID     string
	ActiveSeconds int
	ActiveTime    string // HH:MM:SS
	PostsShared   int
	PostLimit     int
}

// PerformanceCard is the shareable summary of a volunteer's record
type PerformanceCard struct {
	VolunteerName    string
	TotalActiveHours int
	DrivesCompleted  int
	EndorsementCount int
	Endorsements     []model.Endorsement
	EndorsedSkills   []string
	OtherSkills      []string
	// Session is nil when the card is viewed outside a checkout
	Session *SessionSummary
}

// BuildPerformanceCard assembles the card from the volunteer profile and,
// when given, the session that was just checked out
func BuildPerformanceCard(volunteer model.User, endorsements []model.Endorsement, session *stores.ActiveEventState) *PerformanceCard {
	card := &PerformanceCard{
		VolunteerName:    volunteer.Name,
		TotalActiveHours: volunteer.TotalActiveHours,
		DrivesCompleted:  volunteer.DrivesCompleted,
		EndorsementCount: volunteer.EndorsementCount,
		Endorsements:     slices.Clone(endorsements),
	}

	for _, skill := range volunteer.Skills {
		if skill.Tier == model.SkillTierEndorsed {
			card.EndorsedSkills = append(card.EndorsedSkills, skill.Category)
		} else {
			card.OtherSkills = append(card.OtherSkills, skill.Category)
		}
	}

	if session != nil && session.ActiveDrive != nil {
		card.Session = &SessionSummary{
			DriveName:     session.ActiveDrive.DriveName,
			NGOName:       session.ActiveDrive.NGOName,
			CheckinID:     session.ActiveDrive.CheckinID,
			ActiveSeconds: session.TimerSeconds,
			ActiveTime:    FormatTimer(session.TimerSeconds),
			PostsShared:   session.PostCount,
			PostLimit:     session.PostLimit,
		}
	}

	return card
}

// VolunteerProfile returns the signed in volunteer's performance card
func VolunteerProfile(ctx context.Context, volunteer *model.User, endorsements []model.Endorsement, logger *zap.Logger) (*PerformanceCard, error) {
	if err := RequireRole(volunteer, model.RoleVolunteer); err != nil {
		return nil, err
	}

	card := BuildPerformanceCard(*volunteer, endorsements, nil)
	logger.Debug("Built performance card",
		zap.String("volunteer_id", volunteer.ID),
		zap.Int("endorsements", len(card.Endorsements)))

	return card, nil
}

// ShareText renders the message used when sharing the card
func (c *PerformanceCard) ShareText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌟 %s — ActiVibe Performance Card\n\n", c.VolunteerName)
	fmt.Fprintf(&b, "✅ %d GPS-verified hours\n", c.TotalActiveHours)
	fmt.Fprintf(&b, "🏅 %d endorsements\n", c.EndorsementCount)
	fmt.Fprintf(&b, "📊 %d drives completed\n\n", c.DrivesCompleted)
	b.WriteString("#ActiVibe #VerifiedVolunteer")
	return b.String()
}
