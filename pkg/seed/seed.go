// Package seed holds the hardcoded demo data the app runs on.
//
// Every accessor returns a fresh copy, so callers may mutate what they get
// without touching the fixture.
package seed

import (
	"slices"

	"github.com/jakechorley/activibe/pkg/core/model"
)

const (
	VolunteerID = "vol-arjun-001"
	NGOID       = "ngo-gp-001"
	DriveID     = "drive-versova-001"
)

var volunteer = model.User{
	ID:               VolunteerID,
	Name:             "Arjun Mehta",
	AvatarURL:        "https://api.dicebear.com/7.x/avataaars/png?seed=Arjun",
	Role:             model.RoleVolunteer,
	Bio:              "Passionate about sustainable development and community action. Available weekends.",
	Location:         "Mumbai, Maharashtra",
	JoinedDate:       "March 2024",
	TotalActiveHours: 142,
	DrivesCompleted:  8,
	EndorsementCount: 4,
	Skills: []model.SkillTag{
		{Category: "Tech & IT", Tier: model.SkillTierEndorsed, EndorsedBy: "Greenpeace Mumbai", EndorsedAt: "Jun 2025"},
		{Category: "Logistics & Ops", Tier: model.SkillTierInferred},
		{Category: "Environment", Tier: model.SkillTierSelf},
	},
}

var ngo = model.User{
	ID:         NGOID,
	Name:       "Greenpeace Mumbai",
	AvatarURL:  "https://api.dicebear.com/7.x/identicon/png?seed=Greenpeace",
	Role:       model.RoleNGO,
	Location:   "Mumbai, Maharashtra",
	JoinedDate: "January 2024",
}

var drive = model.Drive{
	ID:              DriveID,
	Name:            "Versova Beach Cleanup Drive",
	NGOID:           NGOID,
	NGOName:         "Greenpeace Mumbai",
	NGOLogo:         "https://api.dicebear.com/7.x/identicon/png?seed=Greenpeace",
	Date:            "15 June 2025",
	Time:            "8:00 AM – 12:00 PM",
	Location:        "Versova Beach, Mumbai",
	Lat:             19.1236,
	Lng:             72.8175,
	GeofenceRadius:  500,
	RegisteredCount: 23,
	MaxVolunteers:   30,
	PostLimit:       5,
	Status:          model.DriveStatusLive,
	CauseArea:       "Environment & Climate",
	Description:     "Join us for our monthly beach cleanup. Bring gloves and sunscreen! Equipment provided on-site.",
}

var feedPosts = []model.FeedPost{
	{
		ID:           "post-1",
		Type:         model.PostTypeNGODrive,
		AuthorName:   "Greenpeace Mumbai",
		AuthorAvatar: "https://api.dicebear.com/7.x/identicon/png?seed=Greenpeace",
		AuthorRole:   model.RoleNGO,
		DriveName:    "Versova Beach Cleanup",
		Caption:      "Join us for Versova Beach Cleanup on 15 June! 🏖️ Help us restore our coastline. Register now — 7 spots left.",
		ImageURL:     "https://images.unsplash.com/photo-1567095761054-7a02e69e5c43?w=600&q=80",
		Likes:        34,
		Comments:     8,
		CTALabel:     "Register for Drive",
		Timestamp:    "2h ago",
	},
	{
		ID:            "post-2",
		Type:          model.PostTypeVolunteerLive,
		AuthorName:    "Arjun Mehta",
		AuthorAvatar:  "https://api.dicebear.com/7.x/avataaars/png?seed=Arjun",
		AuthorRole:    model.RoleVolunteer,
		DriveName:     "Versova Beach Cleanup",
		NGOName:       "Greenpeace Mumbai",
		Caption:       "Live from the beach! This is what community looks like. 🌊 So many amazing volunteers out here today!",
		ImageURL:      "https://images.unsplash.com/photo-1618477461853-cf6ed80faba5?w=600&q=80",
		Likes:         12,
		Comments:      3,
		VerifiedBadge: model.VerifiedLive,
		Timestamp:     "45min ago",
	},
	{
		ID:         "post-3",
		Type:       model.PostTypeRecommendation,
		AuthorName: "ActiVibe",
		AuthorRole: model.RoleNGO,
		DriveName:  "Tree Plantation Drive",
		NGOName:    "Greenpeace",
		Caption:    "Greenpeace needs Logistics & Ops skills at Tree Plantation Drive on 22 Jun.",
		SkillMatch: "Logistics & Ops",
	},
	{
		ID:           "post-4",
		Type:         model.PostTypeNGOUpdate,
		AuthorName:   "Teach For India",
		AuthorAvatar: "https://api.dicebear.com/7.x/identicon/png?seed=TeachForIndia",
		AuthorRole:   model.RoleNGO,
		Caption:      "We completed our 10th literacy session this month! 📖 45 children attended and showed incredible progress. Thank you to all our volunteers!",
		ImageURL:     "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=600&q=80",
		Likes:        28,
		Comments:     5,
		Timestamp:    "4h ago",
	},
	{
		ID:            "post-5",
		Type:          model.PostTypeVolunteerPostEvent,
		AuthorName:    "Priya Sharma",
		AuthorAvatar:  "https://api.dicebear.com/7.x/avataaars/png?seed=Priya",
		AuthorRole:    model.RoleVolunteer,
		DriveName:     "Literacy Sessions",
		NGOName:       "Teach For India",
		Caption:       "Just wrapped 4 hours of tutoring. Exhausted but fulfilled. These kids are incredible! 📚✨",
		Likes:         9,
		Comments:      2,
		VerifiedBadge: model.VerifiedPostEvent,
		Timestamp:     "6h ago",
	},
}

var endorsements = []model.Endorsement{
	{ID: "end-1", BadgeID: "star", Emoji: "🌟", BadgeName: "Star Volunteer", NGOName: "Greenpeace Mumbai", DriveName: "Versova Cleanup", Date: "Jun 2025"},
	{ID: "end-2", BadgeID: "quick", Emoji: "⚡", BadgeName: "Quick Responder", NGOName: "Teach For India", DriveName: "Literacy Sessions", Date: "May 2025"},
	{ID: "end-3", BadgeID: "top", Emoji: "🎯", BadgeName: "Top Performer", NGOName: "iVolunteer", DriveName: "City Cleanup", Date: "Apr 2025"},
	{ID: "end-4", BadgeID: "first", Emoji: "🌱", BadgeName: "First Drive", NGOName: "NSS Mumbai", DriveName: "Orientation Drive", Date: "Mar 2024"},
}

var notifications = []model.NotificationItem{
	{
		ID: "notif-1", Type: model.NotificationDriveConfirmed, Read: false, Timestamp: "1h ago",
		Title:    "Drive Confirmed",
		Body:     "Greenpeace Mumbai confirmed your registration for Versova Beach Cleanup on 15 Jun.",
		CTALabel: "View Drive →",
	},
	{
		ID: "notif-2", Type: model.NotificationDriveReminder, Read: false, Timestamp: "3h ago",
		Title:    "Drive Reminder",
		Body:     "Versova Beach Cleanup starts in 2 hours. Get there early!",
		CTALabel: "Get Directions →",
	},
	{
		ID: "notif-3", Type: model.NotificationEndorsement, Read: true, Timestamp: "1d ago",
		Title:    "Endorsement Received! 🌟",
		Body:     `Greenpeace Mumbai endorsed you with "Star Volunteer" for Versova Cleanup.`,
		CTALabel: "View Endorsement →",
	},
	{
		ID: "notif-4", Type: model.NotificationDriveUpdate, Read: true, Timestamp: "2d ago",
		Title:    "Drive Update",
		Body:     `Greenpeace Mumbai posted an update: "Bring gloves and sunscreen!"`,
		CTALabel: "View Post →",
	},
}

var ngoKPIs = model.NGOKPIs{
	ActiveDrives:        3,
	TotalVolunteers:     247,
	AvgCheckinRate:      82,
	EndorsementsAwarded: 34,
}

var analyticsSummary = model.AnalyticsSummary{
	TotalVolunteers:      23,
	AvgActiveTime:        "2 hrs 41 min",
	TotalCollectiveHours: 61.5,
	AttendanceRate:       82,
	RegisteredCount:      28,
	CheckedInCount:       23,
	CompletedCount:       19,
}

var analyticsVolunteers = []model.AnalyticsVolunteer{
	{ID: "av-1", Name: "Rohan Desai", Avatar: "https://api.dicebear.com/7.x/avataaars/png?seed=Rohan", Role: "Waste Sorter", ActiveTime: "2:58:01", ActiveMinutes: 178, TasksDone: "5 of 5", Endorsements: 2},
	{ID: "av-2", Name: "Arjun Mehta", Avatar: "https://api.dicebear.com/7.x/avataaars/png?seed=Arjun", Role: "Logistics Coord.", ActiveTime: "2:47:23", ActiveMinutes: 167, TasksDone: "4 of 5", Endorsements: 1},
	{ID: "av-3", Name: "Priya Sharma", Avatar: "https://api.dicebear.com/7.x/avataaars/png?seed=Priya", Role: "Media & Content", ActiveTime: "2:31:09", ActiveMinutes: 151, TasksDone: "3 of 3", Endorsements: 1},
	{ID: "av-4", Name: "Aisha Khan", Avatar: "https://api.dicebear.com/7.x/avataaars/png?seed=Aisha", Role: "Team Coordinator", ActiveTime: "2:15:44", ActiveMinutes: 136, TasksDone: "4 of 4", Endorsements: 1},
	{ID: "av-5", Name: "Vikram Nair", Avatar: "https://api.dicebear.com/7.x/avataaars/png?seed=Vikram", Role: "Equipment Setup", ActiveTime: "1:52:33", ActiveMinutes: 113, TasksDone: "3 of 5", Endorsements: 0},
}

var zoneTimeDistribution = []model.ZoneTimeSlot{
	{Hour: "6am", Count: 0}, {Hour: "7am", Count: 3}, {Hour: "8am", Count: 18},
	{Hour: "9am", Count: 22}, {Hour: "10am", Count: 23}, {Hour: "11am", Count: 20},
	{Hour: "12pm", Count: 15}, {Hour: "1pm", Count: 8}, {Hour: "2pm", Count: 2},
}

var roleFill = []model.RoleFill{
	{Role: "Logistics Coordinator", Filled: 3, Total: 4, AvgHours: 2.6, Category: "Logistics & Ops"},
	{Role: "Media & Content", Filled: 2, Total: 3, AvgHours: 2.3, Category: "Media & Content"},
	{Role: "Waste Sorter", Filled: 8, Total: 10, AvgHours: 2.8, Category: "Environment"},
	{Role: "Team Coordinator", Filled: 2, Total: 2, AvgHours: 2.1, Category: "Community"},
	{Role: "Equipment Setup", Filled: 4, Total: 6, AvgHours: 1.7, Category: "Logistics & Ops"},
}

var badgeTypes = []model.BadgeType{
	{ID: "star", Emoji: "🌟", Name: "Star Volunteer", MaxPerDrive: 3},
	{ID: "quick", Emoji: "⚡", Name: "Quick Responder", MaxPerDrive: 3},
	{ID: "top", Emoji: "🎯", Name: "Top Performer", MaxPerDrive: 2},
	{ID: "first", Emoji: "🌱", Name: "First Drive", MaxPerDrive: 5},
	{ID: "leader", Emoji: "👑", Name: "Team Leader", MaxPerDrive: 2},
	{ID: "creative", Emoji: "✨", Name: "Creative Mind", MaxPerDrive: 3},
	{ID: "reliable", Emoji: "🛡️", Name: "Reliable", MaxPerDrive: 4},
	{ID: "spirit", Emoji: "🔥", Name: "Team Spirit", MaxPerDrive: 3},
}

var skillCategories = []model.SkillCategory{
	{ID: "environment", Label: "Environment", Emoji: "🌱"},
	{ID: "education", Label: "Education", Emoji: "📚"},
	{ID: "health", Label: "Health & Medical", Emoji: "🏥"},
	{ID: "tech", Label: "Tech & IT", Emoji: "💻"},
	{ID: "logistics", Label: "Logistics & Ops", Emoji: "📦"},
	{ID: "media", Label: "Media & Content", Emoji: "🎨"},
	{ID: "community", Label: "Community", Emoji: "🤝"},
}

// Volunteer returns the demo volunteer identity
func Volunteer() model.User {
	return cloneUser(volunteer)
}

// NGO returns the demo NGO identity
func NGO() model.User {
	return cloneUser(ngo)
}

// Drive returns the live demo drive
func Drive() model.Drive {
	return drive
}

func FeedPosts() []model.FeedPost {
	return slices.Clone(feedPosts)
}

func Endorsements() []model.Endorsement {
	return slices.Clone(endorsements)
}

func Notifications() []model.NotificationItem {
	return slices.Clone(notifications)
}

func NGOKPIs() model.NGOKPIs {
	return ngoKPIs
}

func AnalyticsSummary() model.AnalyticsSummary {
	return analyticsSummary
}

func AnalyticsVolunteers() []model.AnalyticsVolunteer {
	return slices.Clone(analyticsVolunteers)
}

func ZoneTimeDistribution() []model.ZoneTimeSlot {
	return slices.Clone(zoneTimeDistribution)
}

func RoleFill() []model.RoleFill {
	return slices.Clone(roleFill)
}

func BadgeTypes() []model.BadgeType {
	return slices.Clone(badgeTypes)
}

func SkillCategories() []model.SkillCategory {
	return slices.Clone(skillCategories)
}

func cloneUser(u model.User) model.User {
	u.Skills = slices.Clone(u.Skills)
	return u
}
