package seis

// TriggerInterval is a half-open detection window in sample indices.
// On is the first sample above the upper threshold, Off the first
// subsequent sample below the lower threshold.
type TriggerInterval struct {
	On  int
	Off int
}

// TriggerOnset scans a characteristic function and returns the intervals
// where it rises above thresholdOn and later falls back below thresholdOff.
// A trigger still active at the end of the signal is closed at the last
// sample.
func TriggerOnset(data []float64, thresholdOn, thresholdOff float64) []TriggerInterval {
	var triggers []TriggerInterval
	active := false
	start := 0

	for i, v := range data {
		switch {
		case !active && v > thresholdOn:
			active = true
			start = i
		case active && v < thresholdOff:
			triggers = append(triggers, TriggerInterval{On: start, Off: i})
			active = false
		}
	}
	if active {
		triggers = append(triggers, TriggerInterval{On: start, Off: len(data) - 1})
	}
	return triggers
}
