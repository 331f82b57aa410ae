package history

import (
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AntonioJCosta/crush/internal/core/domain/history"
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	return relativeToHome(usr.HomeDir, absPath)
}

// ToUserFriendlyPath is toUserFriendlyPath for callers outside the package.
func ToUserFriendlyPath(absPath string) string {
	return toUserFriendlyPath(absPath)
}

func relativeToHome(homeDir, absPath string) string {
	if homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if !strings.HasPrefix(absPath, homeDir+string(filepath.Separator)) {
		return absPath
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// normalize removes trailing whitespace and line terminators so that
// equivalent entries are counted together.
func normalize(line string) string {
	line = strings.ReplaceAll(line, "\n", " ")
	return strings.TrimRight(line, " \t\r")
}

func splitLines(data string) []string {
	lines := []string{}
	for line := range strings.SplitSeq(data, "\n") {
		if line = normalize(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func lastN(lines []string, n int) []string {
	if n <= 0 || n >= len(lines) {
		return lines
	}
	return lines[len(lines)-n:]
}

// countFrequencies tallies identical lines and returns the top limit of them.
// A non-positive limit returns all of them.
func countFrequencies(lines []string, limit int) []history.LineFrequency {
	counts := make(map[string]int, len(lines))
	for _, line := range lines {
		counts[line]++
	}

	frequencies := make([]history.LineFrequency, 0, len(counts))
	for line, count := range counts {
		frequencies = append(frequencies, history.LineFrequency{Line: line, Count: count})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count != frequencies[j].Count {
			return frequencies[i].Count > frequencies[j].Count
		}
		return frequencies[i].Line < frequencies[j].Line
	})

	if limit > 0 && limit < len(frequencies) {
		frequencies = frequencies[:limit]
	}
	return frequencies
}
