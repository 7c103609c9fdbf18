package core

import (
	"time"

	"github.com/calvertf/sked/pkg/models"
)

// DensityPoint is one hourly bucket of the deadline-density analysis.
// Count is the cumulative number of tasks whose deadline falls at or
// before the bucket time.
type DensityPoint struct {
	Time  time.Time `json:"time"`
	Count int       `json:"count"`
}

// Density buckets the given tasks' deadlines into hourly points
// spanning from the earliest to the latest deadline. Each point
// carries the cumulative count of tasks due by that point. An empty
// task set yields no points.
func Density(tasks []models.Task) []DensityPoint {
	if len(tasks) == 0 {
		return nil
	}

	deadlines := make([]time.Time, len(tasks))
	for i, t := range tasks {
		deadlines[i] = t.Deadline
	}
	deadlines = SortByKey(deadlines, func(d time.Time) int64 { return d.UnixNano() })

	first := deadlines[0]
	last := deadlines[len(deadlines)-1]
	buckets := int(last.Sub(first).Hours()) + 1

	points := make([]DensityPoint, 0, buckets)
	for i := 0; i < buckets; i++ {
		bucket := first.Add(time.Duration(i) * time.Hour)
		count := 0
		for _, d := range deadlines {
			if d.After(bucket) {
				break
			}
			count++
		}
		points = append(points, DensityPoint{Time: bucket, Count: count})
	}
	return points
}
