package types

// Interval полуоткрытый интервал [Start, End) в минутах от начала суток
type Interval struct {
	Start int
	End   int
}

// NewInterval строит интервал из времени начала и длительности в минутах
func NewInterval(start TimeString, durationMinutes int) (Interval, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: startMin, End: startMin + durationMinutes}, nil
}

// Overlaps возвращает true, если интервалы действительно пересекаются.
// Граничащие интервалы (один заканчивается ровно там, где начинается другой)
// пересечением НЕ считаются:
//   - [600, 660) и [660, 690) → false
//   - [600, 660) и [615, 645) → true
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}
