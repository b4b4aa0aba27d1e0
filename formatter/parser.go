package formatter

import (
	"strconv"
	"strings"
)

// minScanLength is the shortest template worth scanning: the smallest
// possible placeholder is three characters ("{x}"). Anything shorter is a
// literal with no value names, whatever it contains.
const minScanLength = 3

// parseFormat rewrites every named placeholder "{Name[,align][:spec]}" in
// format to its positional form "{index[,align][:spec]}" and returns the
// rewritten template together with the placeholder names in
// first-encountered order. Repeated names are not deduplicated: every
// occurrence takes the next sequential index and its own name entry.
// Unterminated placeholders degrade to literal text.
func parseFormat(format string) (string, []string) {
	if len(format) < minScanLength {
		return format, nil
	}

	var sb strings.Builder
	var names []string

	scanIndex := 0
	endIndex := len(format)

	for scanIndex < endIndex {
		openBraceIndex := findBraceIndex(format, '{', scanIndex, endIndex)
		if scanIndex == 0 && openBraceIndex == endIndex {
			// No placeholders at all.
			return format, nil
		}

		closeBraceIndex := findBraceIndex(format, '}', openBraceIndex, endIndex)
		if closeBraceIndex == endIndex {
			// Unmatched opener: the remainder is literal text.
			sb.WriteString(format[scanIndex:endIndex])
			scanIndex = endIndex
			continue
		}

		// Placeholder syntax: {name[,alignment][:format]}. The name runs
		// from the opener to the first ',' or ':'; everything from that
		// delimiter through the closer is copied untouched.
		delimiterIndex := findDelimiterIndex(format, openBraceIndex, closeBraceIndex)

		sb.WriteString(format[scanIndex : openBraceIndex+1])
		sb.WriteString(strconv.Itoa(len(names)))
		names = append(names, format[openBraceIndex+1:delimiterIndex])
		sb.WriteString(format[delimiterIndex : closeBraceIndex+1])

		scanIndex = closeBraceIndex + 1
	}

	return sb.String(), names
}

// findBraceIndex locates the next unescaped brace of the given kind in
// format[startIndex:endIndex], returning endIndex when there is none.
// Braces escape themselves by doubling, so the scan counts consecutive
// occurrences: an even run is fully escaped literal text and the search
// moves on. Within an odd run the two kinds pick opposite ends — '{' picks
// the last brace of the run and '}' picks the first — so that "{{{X}}}"
// reads as literal '{', placeholder open, X, placeholder close, literal '}'.
func findBraceIndex(format string, brace byte, startIndex, endIndex int) int {
	braceIndex := endIndex
	scanIndex := startIndex
	braceOccurrenceCount := 0

	for scanIndex < endIndex {
		if braceOccurrenceCount > 0 && format[scanIndex] != brace {
			if braceOccurrenceCount%2 == 0 {
				// Even run: escaped literal braces, keep searching.
				braceOccurrenceCount = 0
				braceIndex = endIndex
			} else {
				// Odd run: found an unescaped brace.
				break
			}
		} else if format[scanIndex] == brace {
			if brace == '}' {
				if braceOccurrenceCount == 0 {
					braceIndex = scanIndex
				}
			} else {
				braceIndex = scanIndex
			}
			braceOccurrenceCount++
		}
		scanIndex++
	}

	return braceIndex
}

// findDelimiterIndex returns the position of the first ',' or ':' between
// the placeholder braces, or closeBraceIndex when neither occurs.
func findDelimiterIndex(format string, openBraceIndex, closeBraceIndex int) int {
	if i := strings.IndexAny(format[openBraceIndex:closeBraceIndex], ",:"); i >= 0 {
		return openBraceIndex + i
	}
	return closeBraceIndex
}
