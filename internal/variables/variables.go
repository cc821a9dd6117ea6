// Package variables provides the controlling variables: trainable stats that
// drive combat theme scaling and derived character values.
// Activities train variables; managers automate activities.
package variables

import "fmt"

// Kind identifies one controlling variable.
type Kind uint8

const (
	Strength  Kind = iota // Mining, Lumberjacking → Unarmed/Armed damage
	Dexterity             // Obstacle courses → Ranged accuracy, Armed speed
	Focus                 // Meditation → Energy capacity, Ranged range
	Endurance             // Distance running, Farming → HP, defense
	Luck                  // Fishing → crit chance, loot quality
)

// NumKinds is the total number of controlling variables.
const NumKinds = 5

// AllKinds lists every variable in declaration order.
var AllKinds = [NumKinds]Kind{Strength, Dexterity, Focus, Endurance, Luck}

var kindNames = [NumKinds]string{"strength", "dexterity", "focus", "endurance", "luck"}

func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Activity is a laborious training activity.
type Activity uint8

const (
	Mining Activity = iota
	ObstacleCourse
	Meditation
	DistanceRunning
	Lumberjacking
	Fishing
	Farming
)

// NumActivities is the total number of training activities.
const NumActivities = 7

var activityNames = [NumActivities]string{
	"mining", "obstacle_course", "meditation", "distance_running",
	"lumberjacking", "fishing", "farming",
}

func (a Activity) String() string {
	if int(a) < NumActivities {
		return activityNames[a]
	}
	return "unknown"
}

// MarshalText encodes an activity by name.
func (a Activity) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an activity name.
func (a *Activity) UnmarshalText(b []byte) error {
	s := string(b)
	for i, name := range activityNames {
		if name == s {
			*a = Activity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown activity %q", s)
}

// ActivityVariable maps each activity to the variable it trains.
// Several activities can train the same variable.
var ActivityVariable = [NumActivities]Kind{
	Mining:          Strength,
	ObstacleCourse:  Dexterity,
	Meditation:      Focus,
	DistanceRunning: Endurance,
	Lumberjacking:   Strength,
	Fishing:         Luck,
	Farming:         Endurance,
}

// Training gains per hour at each effort level.
const (
	IntensityCasual  = 10.0
	IntensityFocused = 25.0
	IntensityDeep    = 50.0
)

// Variables holds the value of every controlling variable.
// Values are non-negative and never decay.
type Variables [NumKinds]float64

// Get returns the value of one variable.
func (v Variables) Get(k Kind) float64 {
	return v[k]
}

// Train adds amount to a variable. Non-positive amounts are ignored.
func (v *Variables) Train(k Kind, amount float64) {
	if amount > 0 {
		v[k] += amount
	}
}

// TrainActivity credits the variable an activity trains.
func (v *Variables) TrainActivity(a Activity, amount float64) {
	v.Train(ActivityVariable[a], amount)
}
