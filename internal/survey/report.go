package survey

import (
	"cmp"
	"slices"
	"time"

	"github.com/lox/riichi/internal/fileutil"
	"github.com/lox/riichi/internal/statistics"
	"github.com/lox/riichi/mahjong"
)

// tally is one worker's private count.
type tally struct {
	hands   int
	winning int
	shapes  map[mahjong.Shape]int
	yaku    map[string]int
	han     statistics.Histogram
}

func newTally() *tally {
	return &tally{
		shapes: make(map[mahjong.Shape]int),
		yaku:   make(map[string]int),
		han:    make(statistics.Histogram),
	}
}

func (t *tally) add(res mahjong.Result) {
	t.hands++
	t.shapes[res.Shape]++
	if !res.Winning {
		return
	}
	t.winning++
	t.han.Add(res.Han())
	for _, m := range res.Yaku {
		t.yaku[m.Name]++
	}
}

// Report is the merged result of a survey run.
type Report struct {
	Mode      Mode                 `json:"mode"`
	Seed      int64                `json:"seed"`
	Workers   int                  `json:"workers"`
	Requested int                  `json:"requested"`
	Hands     int                  `json:"hands"`
	Winning   int                  `json:"winning"`
	Truncated bool                 `json:"truncated,omitempty"`
	Shapes    map[string]int       `json:"shapes"`
	Yaku      map[string]int       `json:"yaku"`
	// Han maps a han total to the number of winning hands that scored it.
	Han       statistics.Histogram `json:"han"`
	Started   time.Time            `json:"started"`
	Elapsed   time.Duration        `json:"elapsed_ns"`
}

func newReport(cfg Config, workers int) *Report {
	return &Report{
		Mode:      cfg.Mode,
		Seed:      cfg.Seed,
		Workers:   workers,
		Requested: cfg.Hands,
		Shapes:    make(map[string]int),
		Yaku:      make(map[string]int),
		Han:       make(statistics.Histogram),
	}
}

func (r *Report) merge(t *tally) {
	r.Hands += t.hands
	r.Winning += t.winning
	for s, n := range t.shapes {
		r.Shapes[s.String()] += n
	}
	for name, n := range t.yaku {
		r.Yaku[name] += n
	}
	r.Han.Merge(t.han)
}

// WinRate is the fraction of evaluated hands that were complete.
func (r *Report) WinRate() float64 {
	if r.Hands == 0 {
		return 0
	}
	return float64(r.Winning) / float64(r.Hands)
}

// WinRateInterval95 is the Wilson interval around WinRate.
func (r *Report) WinRateInterval95() (float64, float64) {
	return statistics.WilsonInterval95(r.Winning, r.Hands)
}

// HandsPerSecond is throughput over the measured elapsed time.
func (r *Report) HandsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Hands) / r.Elapsed.Seconds()
}

// YakuCount is one row of the yaku frequency table.
type YakuCount struct {
	Name  string
	Count int
}

// YakuByFrequency lists matched yaku, most frequent first and then by name.
func (r *Report) YakuByFrequency() []YakuCount {
	rows := make([]YakuCount, 0, len(r.Yaku))
	for name, n := range r.Yaku {
		rows = append(rows, YakuCount{Name: name, Count: n})
	}
	slices.SortFunc(rows, func(a, b YakuCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return rows
}

// Write stores the report as JSON at path.
func (r *Report) Write(path string) error {
	return fileutil.WriteJSON(path, r)
}
