package solutions

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Entry describes the solution files available for one problem.
type Entry struct {
	Main  bool  `json:"main"`
	Parts []int `json:"parts"`
}

// Manifest maps problem ids to their available solution files.
type Manifest struct {
	GeneratedAt string           `json:"generatedAt"`
	Total       int              `json:"total"`
	Problems    map[string]Entry `json:"problems"`
}

// BuildManifest scans dir for files named <problemId>_main.json or
// <problemId>_part<N>.json. Dotfiles, files named temp, and anything not
// matching the pattern are ignored. Parts are sorted ascending.
func BuildManifest(dir string) (Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Manifest{}, fmt.Errorf("read solutions dir: %w", err)
	}

	problems := make(map[string]Entry)
	for _, fsEntry := range entries {
		if fsEntry.IsDir() {
			continue
		}
		name := fsEntry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		base, ok := strings.CutSuffix(name, ".json")
		if !ok || base == "temp" {
			continue
		}

		if id, isMain := strings.CutSuffix(base, "_main"); isMain && id != "" {
			entry := problems[id]
			entry.Main = true
			problems[id] = entry
			continue
		}

		idx := strings.LastIndex(base, "_part")
		if idx <= 0 {
			continue
		}
		part, err := strconv.Atoi(base[idx+len("_part"):])
		if err != nil {
			continue
		}
		id := base[:idx]
		entry := problems[id]
		entry.Parts = append(entry.Parts, part)
		problems[id] = entry
	}

	for id, entry := range problems {
		sort.Ints(entry.Parts)
		problems[id] = entry
	}

	return Manifest{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Total:       len(problems),
		Problems:    problems,
	}, nil
}
