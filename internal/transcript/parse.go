package transcript

import (
	"regexp"
	"strings"
)

const (
	headerSignature = "WEBVTT"
	arrow           = "-->"
	timingSeparator = " --> "
)

var blankLineRe = regexp.MustCompile(`\n{2,}`)

// SplitBlocks trims the input and splits it into cue blocks on blank
// lines. Empty blocks are dropped, and a leading block containing the
// WEBVTT signature is treated as the file header and removed.
func SplitBlocks(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSpace(content)

	var blocks []string
	for _, block := range blankLineRe.Split(content, -1) {
		if block != "" {
			blocks = append(blocks, block)
		}
	}

	if len(blocks) > 0 && strings.Contains(blocks[0], headerSignature) {
		blocks = blocks[1:]
	}
	if len(blocks) == 0 {
		return nil
	}
	return blocks
}

// ParseBlock turns one cue block into a Cue. Lines before the first line
// containing "-->" are ignored (cue identifiers); every line after it is
// cue text, even if it contains another arrow.
func ParseBlock(block string) (Cue, SkipReason) {
	lines := strings.Split(block, "\n")
	if len(lines) < 2 {
		return Cue{}, SkipTooFewLines
	}

	timingLine := ""
	found := false
	var textLines []string
	for _, line := range lines {
		if found {
			textLines = append(textLines, line)
			continue
		}
		if strings.Contains(line, arrow) {
			timingLine = line
			found = true
		}
	}
	if !found {
		return Cue{}, SkipNoTimingLine
	}

	parts := strings.Split(timingLine, timingSeparator)
	if len(parts) != 2 {
		return Cue{}, SkipMalformedTiming
	}

	text := joinText(textLines)
	if text == "" {
		return Cue{}, SkipEmptyText
	}

	return Cue{
		StartTime: TruncateTimestamp(parts[0]),
		EndTime:   TruncateTimestamp(parts[1]),
		Text:      text,
	}, SkipNone
}

// TruncateTimestamp drops everything from the first '.' on, so
// "00:01:02.500" becomes "00:01:02". The rest is not validated.
func TruncateTimestamp(field string) string {
	if i := strings.IndexByte(field, '.'); i >= 0 {
		return field[:i]
	}
	return field
}

func joinText(lines []string) string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(trimmed, " "))
}
