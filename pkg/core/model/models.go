package model

type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleNGO       Role = "ngo"
)

func (r Role) IsValid() bool {
	return r == RoleVolunteer || r == RoleNGO
}

type SkillTier string

const (
	SkillTierEndorsed SkillTier = "endorsed"
	SkillTierInferred SkillTier = "inferred"
	SkillTierSelf     SkillTier = "self"
)

// SkillTag is a skill shown on a volunteer profile and where it came from
type SkillTag struct {
	Category   string
	Tier       SkillTier
	EndorsedBy string // Empty unless Tier is endorsed
	EndorsedAt string
}

// User represents the signed-in identity, either a volunteer or an NGO
type User struct {
	ID        string
	Name      string
	AvatarURL string
	Role      Role

	// Optional profile fields, zero when absent
	Bio              string
	Location         string
	JoinedDate       string
	TotalActiveHours int
	DrivesCompleted  int
	EndorsementCount int
	Skills           []SkillTag
}

type DriveStatus string

const (
	DriveStatusUpcoming DriveStatus = "upcoming"
	DriveStatusLive     DriveStatus = "live"
	DriveStatusEnded    DriveStatus = "ended"
)

func (s DriveStatus) IsValid() bool {
	return s == DriveStatusUpcoming || s == DriveStatusLive || s == DriveStatusEnded
}

// Drive represents an NGO-organised volunteering event with a circular check-in zone
type Drive struct {
	ID              string
	Name            string
	NGOID           string
	NGOName         string
	NGOLogo         string
	Date            string
	Time            string
	Location        string
	Lat             float64
	Lng             float64
	GeofenceRadius  int // metres
	RegisteredCount int
	MaxVolunteers   int
	PostLimit       int
	Status          DriveStatus
	CauseArea       string
	Description     string
}

type PostType string

const (
	PostTypeNGODrive           PostType = "ngo_drive"
	PostTypeVolunteerLive      PostType = "volunteer_live"
	PostTypeRecommendation     PostType = "recommendation"
	PostTypeNGOUpdate          PostType = "ngo_update"
	PostTypeVolunteerPostEvent PostType = "volunteer_post_event"
)

type VerifiedBadge string

const (
	VerifiedNone      VerifiedBadge = ""
	VerifiedLive      VerifiedBadge = "live"
	VerifiedPostEvent VerifiedBadge = "post_event"
)

// FeedPost is a single card in the social feed
type FeedPost struct {
	ID            string
	Type          PostType
	AuthorName    string
	AuthorAvatar  string
	AuthorRole    Role
	DriveName     string
	NGOName       string
	Caption       string
	ImageURL      string
	Likes         int
	Comments      int
	VerifiedBadge VerifiedBadge
	CTALabel      string
	Timestamp     string
	SkillMatch    string
}

type FeedTab string

const (
	FeedTabAll     FeedTab = "all"
	FeedTabDrives  FeedTab = "drives"
	FeedTabUpdates FeedTab = "updates"
)

func (t FeedTab) IsValid() bool {
	return t == FeedTabAll || t == FeedTabDrives || t == FeedTabUpdates
}

// Endorsement is a badge an NGO coordinator granted to a volunteer
type Endorsement struct {
	ID          string
	BadgeID     string
	Emoji       string
	BadgeName   string
	NGOName     string
	DriveName   string
	Date        string
	Description string
}

// BadgeType is a badge coordinators can award, capped per drive
type BadgeType struct {
	ID          string
	Emoji       string
	Name        string
	MaxPerDrive int
}

// SkillCategory is one of the skill areas volunteers pick during onboarding
type SkillCategory struct {
	ID    string
	Label string
	Emoji string
}

type NotificationType string

const (
	NotificationDriveConfirmed NotificationType = "drive_confirmed"
	NotificationDriveReminder  NotificationType = "drive_reminder"
	NotificationEndorsement    NotificationType = "endorsement"
	NotificationDriveUpdate    NotificationType = "drive_update"
)

// NotificationItem represents an entry in the volunteer's inbox
type NotificationItem struct {
	ID        string
	Type      NotificationType
	Title     string
	Body      string
	CTALabel  string
	Read      bool
	Timestamp string
}

// AnalyticsVolunteer is one row of the per-drive volunteer table
type AnalyticsVolunteer struct {
	ID            string
	Name          string
	Avatar        string
	Role          string
	ActiveTime    string
	ActiveMinutes int
	TasksDone     string
	Endorsements  int
}

// AnalyticsSummary holds the headline numbers for one drive
type AnalyticsSummary struct {
	TotalVolunteers      int
	AvgActiveTime        string
	TotalCollectiveHours float64
	AttendanceRate       int // percent
	RegisteredCount      int
	CheckedInCount       int
	CompletedCount       int
}

// NGOKPIs holds the headline numbers on the NGO home screen
type NGOKPIs struct {
	ActiveDrives        int
	TotalVolunteers     int
	AvgCheckinRate      int // percent
	EndorsementsAwarded int
}

// ZoneTimeSlot counts volunteers inside the zone during one hour
type ZoneTimeSlot struct {
	Hour  string
	Count int
}

// RoleFill tracks how many of a drive role's slots were filled
type RoleFill struct {
	Role     string
	Filled   int
	Total    int
	AvgHours float64
	Category string
}
