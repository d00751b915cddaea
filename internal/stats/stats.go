package stats

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/fenilsonani/mediafind/pkg/utils"
)

// Bin is one histogram row.
type Bin struct {
	Label string
	Count int
}

// CountStrings tallies occurrences of each value.
func CountStrings(values []string) map[string]int {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	return counts
}

// TopN converts a count map into bins sorted by descending count (ties
// broken by label) and keeps the n largest. n <= 0 keeps everything.
func TopN(counts map[string]int, n int) []Bin {
	bins := make([]Bin, 0, len(counts))
	for label, count := range counts {
		bins = append(bins, Bin{Label: label, Count: count})
	}
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].Count != bins[j].Count {
			return bins[i].Count > bins[j].Count
		}
		return bins[i].Label < bins[j].Label
	})
	if n > 0 && len(bins) > n {
		bins = bins[:n]
	}
	return bins
}

var resolutionRe = regexp.MustCompile(`(?i)\b(?:(\d{3,4})[pi]|(\d{3,4})x(\d{3,4}))\b`)

// ParseResolution extracts a vertical-resolution label ("1080p") from a
// filename. Both marker forms are understood: "1080p"/"1080i" and
// dimension pairs like "1920x1080". Returns "" when nothing matches.
func ParseResolution(name string) string {
	m := resolutionRe.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1] + "p"
	}

	// For a WxH pair the height is the resolution class.
	h, err := strconv.Atoi(m[3])
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%dp", h)
}

// LogBins builds a logarithmic histogram of file sizes with binsPerDecade
// bins per power of ten. Each bin is labeled with its geometric center.
// Zero and negative sizes are ignored.
func LogBins(sizes []int64, binsPerDecade int) []Bin {
	if binsPerDecade <= 0 {
		binsPerDecade = 3
	}

	counts := make(map[int]int)
	minIdx, maxIdx := math.MaxInt, math.MinInt
	for _, size := range sizes {
		if size <= 0 {
			continue
		}
		idx := int(math.Floor(math.Log10(float64(size)) * float64(binsPerDecade)))
		counts[idx]++
		if idx < minIdx {
			minIdx = idx
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	if len(counts) == 0 {
		return nil
	}

	// Contiguous bins, including empty ones, so the shape reads as a
	// proper histogram.
	bins := make([]Bin, 0, maxIdx-minIdx+1)
	for idx := minIdx; idx <= maxIdx; idx++ {
		center := math.Pow(10, (float64(idx)+0.5)/float64(binsPerDecade))
		bins = append(bins, Bin{
			Label: utils.FormatBytes(int64(center)),
			Count: counts[idx],
		})
	}
	return bins
}
