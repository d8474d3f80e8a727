package services

import (
	"cmp"
	"context"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/model"
)

// AnalyticsSource provides the figures behind the drive dashboard
type AnalyticsSource struct {
	Summary    model.AnalyticsSummary
	KPIs       model.NGOKPIs
	Volunteers []model.AnalyticsVolunteer
	ZoneTime   []model.ZoneTimeSlot
	Roles      []model.RoleFill
}

// RankedVolunteer is a volunteer row with its share of the top active time
type RankedVolunteer struct {
	model.AnalyticsVolunteer
	Rank  int
	Ratio float64 // 0..1 relative to the most active volunteer
}

// RoleFillRate is a drive role with its fill percentage
type RoleFillRate struct {
	model.RoleFill
	Percent int
}

// DriveDashboard is everything the NGO analytics view renders
type DriveDashboard struct {
	Summary    model.AnalyticsSummary
	KPIs       model.NGOKPIs
	Volunteers []RankedVolunteer
	Roles      []RoleFillRate
	ZoneTime   []model.ZoneTimeSlot
	// PeakHour is the zero value when there is no zone data
	PeakHour model.ZoneTimeSlot
}

// DriveAnalytics derives the dashboard for the signed in NGO
func DriveAnalytics(ctx context.Context, ngo *model.User, src AnalyticsSource, logger *zap.Logger) (*DriveDashboard, error) {
	if err := RequireRole(ngo, model.RoleNGO); err != nil {
		return nil, err
	}

	dash := &DriveDashboard{
		Summary:    src.Summary,
		KPIs:       src.KPIs,
		Volunteers: RankVolunteers(src.Volunteers),
		ZoneTime:   slices.Clone(src.ZoneTime),
	}
	for _, r := range src.Roles {
		dash.Roles = append(dash.Roles, RoleFillRate{RoleFill: r, Percent: FillPercent(r.Filled, r.Total)})
	}
	for _, slot := range src.ZoneTime {
		// first slot wins a tie
		if slot.Count > dash.PeakHour.Count {
			dash.PeakHour = slot
		}
	}

	logger.Debug("Built drive analytics",
		zap.String("ngo_id", ngo.ID),
		zap.Int("volunteers", len(dash.Volunteers)),
		zap.String("peak_hour", dash.PeakHour.Hour))

	return dash, nil
}

// RankVolunteers orders volunteers by active minutes, most active first.
// Volunteers with equal minutes keep their input order.
func RankVolunteers(volunteers []model.AnalyticsVolunteer) []RankedVolunteer {
	sorted := slices.Clone(volunteers)
	slices.SortStableFunc(sorted, func(a, b model.AnalyticsVolunteer) int {
		return cmp.Compare(b.ActiveMinutes, a.ActiveMinutes)
	})

	maxMinutes := 0
	if len(sorted) > 0 {
		maxMinutes = sorted[0].ActiveMinutes
	}

	ranked := make([]RankedVolunteer, 0, len(sorted))
	for i, v := range sorted {
		rv := RankedVolunteer{AnalyticsVolunteer: v, Rank: i + 1}
		if maxMinutes > 0 {
			rv.Ratio = float64(v.ActiveMinutes) / float64(maxMinutes)
		}
		ranked = append(ranked, rv)
	}
	return ranked
}

// FillPercent returns filled/total as a rounded percentage
func FillPercent(filled, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(filled) / float64(total) * 100))
}
