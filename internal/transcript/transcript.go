package transcript

// Segment is one chronological unit of recognized speech with its time span
// in seconds. Start/End may both be zero when the engine produced no
// timestamps; the recognizer applies an even-duration fallback in that case.
type Segment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Cue is a single subtitle display unit destined for an SRT file.
type Cue struct {
	Text  string
	Start float64
	End   float64
}
