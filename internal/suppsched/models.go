package suppsched

// Anchor names the daily reference point a supplement's timing is computed
// from.
type Anchor string

const (
	AnchorWake        Anchor = "wake"
	AnchorPreWorkout  Anchor = "pre_workout"
	AnchorPostWorkout Anchor = "post_workout"
	AnchorWithMeal    Anchor = "with_meal"
	AnchorBedtime     Anchor = "bedtime"
	AnchorMidday      Anchor = "midday"
)

// TimingRule is one row of the fixed supplement timing table: which anchor
// the supplement hangs off, a signed offset in minutes, whether it needs
// food, a fixed advisory note, and an optional "too late in the day"
// threshold (hour of day) that attaches a warning when crossed.
type TimingRule struct {
	SupplementID   string `json:"supplement_id"`
	Name           string `json:"name"`
	Anchor         Anchor `json:"anchor"`
	OffsetMinutes  int    `json:"offset_minutes"`
	WithFood       bool   `json:"with_food"`
	Notes          string `json:"notes"`
	AvoidAfterHour *int   `json:"avoid_after_hour,omitempty"`
}

// UserSchedule is the scheduler input: three wall-clock anchors within one
// conceptual day plus the selected supplement IDs (order irrelevant).
type UserSchedule struct {
	WakeTime     string   `json:"wake_time"`
	TrainingTime string   `json:"training_time"`
	BedTime      string   `json:"bed_time"`
	Supplements  []string `json:"supplements"`
}

// ScheduledSupplement is one computed schedule entry. TimeMinutes is the
// normalized minutes-since-midnight value used for sorting and grouping.
type ScheduledSupplement struct {
	Time         string `json:"time"`
	TimeMinutes  int    `json:"time_minutes"`
	SupplementID string `json:"supplement_id"`
	Name         string `json:"name"`
	WithFood     bool   `json:"with_food"`
	Notes        string `json:"notes"`
	Warning      string `json:"warning,omitempty"`
}

// ScheduleGroup is a display bucket of scheduled supplements.
type ScheduleGroup struct {
	Label string                `json:"label"`
	Items []ScheduledSupplement `json:"items"`
}

// ScheduleResult carries the flat sorted schedule plus the grouped display
// form.
type ScheduleResult struct {
	Items  []ScheduledSupplement `json:"items"`
	Groups []ScheduleGroup       `json:"groups"`
}
