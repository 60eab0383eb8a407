package transcript

// Cue is one timed transcript entry. Times are HH:MM:SS with the
// fractional seconds dropped.
type Cue struct {
	StartTime string `json:"startTime" yaml:"startTime"`
	EndTime   string `json:"endTime" yaml:"endTime"`
	Text      string `json:"text" yaml:"text"`
}

// Document is the transcript of a single video: passthrough metadata plus
// cues in source order.
type Document struct {
	VideoID    string `json:"videoId" yaml:"videoId"`
	VideoTitle string `json:"videoTitle" yaml:"videoTitle"`
	SourceURL  string `json:"vimeoUrl" yaml:"vimeoUrl"`
	Cues       []Cue  `json:"transcript" yaml:"transcript"`
}

// SkipReason explains why a cue block produced no cue.
// SkipNone means the block yielded a cue.
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipTooFewLines
	SkipNoTimingLine
	SkipMalformedTiming
	SkipEmptyText
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipTooFewLines:
		return "too few lines"
	case SkipNoTimingLine:
		return "no timing line"
	case SkipMalformedTiming:
		return "malformed timing line"
	case SkipEmptyText:
		return "empty text"
	default:
		return "unknown"
	}
}
