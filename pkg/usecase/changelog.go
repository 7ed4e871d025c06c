package usecase

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
)

// BulletGlyph replaces the "- " prefix of changelog entries
const BulletGlyph = "💫"

const bulletPrefix = "- "

// FormatChangelog rewrites every line starting with "- " to start with the bullet glyph instead.
// Other lines are kept as is, and line count and order never change.
func FormatChangelog(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, bulletPrefix); ok {
			lines[i] = BulletGlyph + " " + rest
		}
	}
	return strings.Join(lines, "\n")
}

// ChunkText splits text into consecutive pieces of at most size characters. Splitting is not
// word-aware but never breaks a UTF-8 sequence. Empty text yields no chunks.
func ChunkText(text string, size int) []string {
	if text == "" || size <= 0 {
		return nil
	}

	chunks := make([]string, 0, utf8.RuneCountInString(text)/size+1)
	for text != "" {
		end, n := 0, 0
		for end < len(text) && n < size {
			_, w := utf8.DecodeRuneInString(text[end:])
			end += w
			n++
		}
		chunks = append(chunks, text[:end])
		text = text[end:]
	}
	return chunks
}

// ReadChangelog reads the changelog file at path. A missing file is not an error: exists is false
// and text is empty. "\r\n" and lone "\r" line endings become "\n", and surrounding whitespace is trimmed.
func ReadChangelog(path string) (text string, exists bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, goerr.Wrap(err, "failed to read changelog", goerr.V("path", path))
	}

	text = strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text), true, nil
}
