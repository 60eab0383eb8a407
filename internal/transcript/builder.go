// Package transcript converts WebVTT subtitle tracks into transcript
// documents of whole-second cues.
package transcript

import (
	"github.com/rs/zerolog"
)

// Builder converts VTT text into Documents. It holds no state besides the
// logger used for dropped-block diagnostics, so one Builder may serve
// concurrent callers.
type Builder struct {
	log zerolog.Logger
}

func NewBuilder(log zerolog.Logger) *Builder {
	return &Builder{log: log.With().Str("component", "transcript").Logger()}
}

// Build parses vttText and wraps the resulting cues with the video
// metadata. Malformed blocks are skipped and never fail the call.
func (b *Builder) Build(vttText, videoID, videoTitle, sourceURL string) *Document {
	blocks := SplitBlocks(vttText)

	cues := make([]Cue, 0, len(blocks))
	for i, block := range blocks {
		cue, reason := ParseBlock(block)
		if reason != SkipNone {
			b.logSkip(i, block, reason)
			continue
		}
		cues = append(cues, cue)
	}

	b.log.Debug().
		Str("video_id", videoID).
		Int("blocks", len(blocks)).
		Int("cues", len(cues)).
		Msg("transcript built")

	return &Document{
		VideoID:    videoID,
		VideoTitle: videoTitle,
		SourceURL:  sourceURL,
		Cues:       cues,
	}
}

func (b *Builder) logSkip(index int, block string, reason SkipReason) {
	event := b.log.Debug()
	if reason == SkipMalformedTiming {
		event = b.log.Warn()
	}
	event.
		Int("block", index).
		Str("reason", reason.String()).
		Str("content", block).
		Msg("skipping cue block")
}

// Build is Builder.Build without diagnostics.
func Build(vttText, videoID, videoTitle, sourceURL string) *Document {
	return NewBuilder(zerolog.Nop()).Build(vttText, videoID, videoTitle, sourceURL)
}
