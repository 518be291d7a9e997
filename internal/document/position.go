package document

import "strings"

// Position is a zero-based line and character offset.
// Character is measured in UTF-16 code units.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a half-open span between two positions
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// nextLineBreak returns the index and width of the first line terminator in
// s, or -1 when there is none. "\r\n", "\n" and a lone "\r" all end a line.
func nextLineBreak(s string) (int, int) {
	idx := strings.IndexAny(s, "\r\n")
	if idx < 0 {
		return -1, 0
	}
	if s[idx] == '\r' && idx+1 < len(s) && s[idx+1] == '\n' {
		return idx, 2
	}
	return idx, 1
}

// lineBounds returns the byte offsets of the start and end (excluding the
// line terminator) of the given line
func lineBounds(text string, line int) (int, int, bool) {
	if line < 0 {
		return 0, 0, false
	}

	start := 0
	for i := 0; i < line; i++ {
		idx, width := nextLineBreak(text[start:])
		if idx < 0 {
			return 0, 0, false
		}
		start += idx + width
	}

	end := len(text)
	if idx, _ := nextLineBreak(text[start:]); idx >= 0 {
		end = start + idx
	}

	return start, end, true
}

// utf16Offset converts a UTF-16 column within s to a byte offset, clamping
// to len(s). A column that falls inside a surrogate pair rounds down.
func utf16Offset(s string, character int) int {
	units := 0
	for i, r := range s {
		if units >= character {
			return i
		}
		n := 1
		if r >= 0x10000 {
			n = 2
		}
		if units+n > character {
			return i
		}
		units += n
	}
	return len(s)
}

// LinePrefix returns the text of the given line from its start up to the
// character offset. A character past the end of the line clamps to the line
// end. Returns false when the line does not exist.
func LinePrefix(text string, line, character int) (string, bool) {
	start, end, ok := lineBounds(text, line)
	if !ok {
		return "", false
	}
	if character < 0 {
		character = 0
	}

	content := text[start:end]
	return content[:utf16Offset(content, character)], true
}

// Offset converts a position to a byte offset in text, clamping to the
// nearest valid location.
func Offset(text string, pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	start, end, ok := lineBounds(text, pos.Line)
	if !ok {
		return len(text)
	}
	character := pos.Character
	if character < 0 {
		character = 0
	}
	return start + utf16Offset(text[start:end], character)
}
