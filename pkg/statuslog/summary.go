package statuslog

import (
	"github.com/iwvelando/status-plot/pkg/mathutil"
)

// StatusCount is the number of records with one status and the largest
// payload among them.
type StatusCount struct {
	Status   string  `yaml:"status"`
	Count    int     `yaml:"count"`
	MaxValue float64 `yaml:"maxValue"`
}

// Summary describes a parsed log.
type Summary struct {
	Records  int           `yaml:"records"`
	Min      float64       `yaml:"min"`
	Max      float64       `yaml:"max"`
	Mean     float64       `yaml:"mean"`
	ByStatus []StatusCount `yaml:"byStatus"`
}

// Summarize counts records per status and computes payload statistics.
// ByStatus always lists every status, in the order of Statuses.
func Summarize(values []StatusValue) Summary {
	summary := Summary{Records: len(values)}
	counts := make(map[Status]*StatusCount, len(Statuses))
	for _, status := range Statuses {
		summary.ByStatus = append(summary.ByStatus, StatusCount{Status: status.String()})
	}
	for i, status := range Statuses {
		counts[status] = &summary.ByStatus[i]
	}

	payloads := make([]float64, 0, len(values))
	for i, v := range values {
		payloads = append(payloads, v.Value)
		if i == 0 {
			summary.Min, summary.Max = v.Value, v.Value
		} else {
			summary.Min = mathutil.Min(summary.Min, v.Value)
			summary.Max = mathutil.Max(summary.Max, v.Value)
		}

		c, ok := counts[v.Status]
		if !ok {
			continue
		}
		if c.Count == 0 {
			c.MaxValue = v.Value
		} else {
			c.MaxValue = mathutil.Max(c.MaxValue, v.Value)
		}
		c.Count++
	}
	summary.Mean = mathutil.Mean(payloads)
	return summary
}
