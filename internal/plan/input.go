package plan

// DiabetesStatus is the tri-state answer to "Do you have diabetes?".
type DiabetesStatus string

const (
	DiabetesUnknown DiabetesStatus = "unknown"
	Diabetic        DiabetesStatus = "diabetic"
	NonDiabetic     DiabetesStatus = "non_diabetic"
)

// DiabetesStatuses lists the valid statuses in form display order.
var DiabetesStatuses = []DiabetesStatus{DiabetesUnknown, Diabetic, NonDiabetic}

var diabetesLabels = map[DiabetesStatus]string{
	DiabetesUnknown: "Not Sure",
	Diabetic:        "Yes (Diabetic)",
	NonDiabetic:     "No (Non-Diabetic)",
}

// Label returns the human-readable form option. Unknown values fall back to
// the raw string so a bad value is still visible in the log.
func (d DiabetesStatus) Label() string {
	if l, ok := diabetesLabels[d]; ok {
		return l
	}
	return string(d)
}

// Valid reports whether d is one of DiabetesStatuses.
func (d DiabetesStatus) Valid() bool {
	_, ok := diabetesLabels[d]
	return ok
}

// ActivityLevel is the self-reported weekly exercise frequency. It is
// recorded with each submission but does not affect the computed plan.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHeavy     ActivityLevel = "heavy"
)

// ActivityLevels lists the valid levels in form display order.
var ActivityLevels = []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityHeavy}

var activityLabels = map[ActivityLevel]string{
	ActivitySedentary: "Sedentary (No exercise)",
	ActivityLight:     "Light (1-2 days/week)",
	ActivityModerate:  "Moderate (3-4 days/week)",
	ActivityHeavy:     "Heavy (5+ days/week)",
}

func (a ActivityLevel) Label() string {
	if l, ok := activityLabels[a]; ok {
		return l
	}
	return string(a)
}

func (a ActivityLevel) Valid() bool {
	_, ok := activityLabels[a]
	return ok
}

// Input bounds enforced by the presentation layers (form clamps).
const (
	MinAge      = 5
	MaxAge      = 100
	MinWeightKG = 10.0
	MaxWeightKG = 250.0
	MinHeightCM = 50.0
	MaxHeightCM = 250.0
)

// UserInput is one form submission.
type UserInput struct {
	Age         int            `json:"age"`
	WeightKG    float64        `json:"weight_kg"`
	HeightCM    float64        `json:"height_cm"`
	Diabetes    DiabetesStatus `json:"diabetes"`
	Activity    ActivityLevel  `json:"activity"`
	HealthIssue string         `json:"health_issue,omitempty"`
}
