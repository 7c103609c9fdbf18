package core

import (
	"testing"
	"time"

	"github.com/calvertf/sked/pkg/models"
)

func densityTask(name string, deadline time.Time) models.Task {
	return models.Task{Name: name, Type: models.TaskTypePersonal, Deadline: deadline, Priority: 1, Duration: 10}
}

func TestDensity_Empty(t *testing.T) {
	if points := Density(nil); points != nil {
		t.Fatalf("expected no points for empty input, got %v", points)
	}
}

func TestDensity_SingleTask(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	points := Density([]models.Task{densityTask("a", deadline)})

	if len(points) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(points))
	}
	if !points[0].Time.Equal(deadline) {
		t.Errorf("expected bucket at %v, got %v", deadline, points[0].Time)
	}
	if points[0].Count != 1 {
		t.Errorf("expected count 1, got %d", points[0].Count)
	}
}

func TestDensity_CumulativeHourlyBuckets(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		densityTask("a", base),
		densityTask("b", base.Add(30*time.Minute)),
		densityTask("c", base.Add(3*time.Hour)),
	}

	points := Density(tasks)

	// Buckets every hour from 09:00 to 12:00 inclusive.
	if len(points) != 4 {
		t.Fatalf("expected 4 buckets, got %d: %v", len(points), points)
	}

	wantCounts := []int{1, 2, 2, 3}
	for i, want := range wantCounts {
		if points[i].Count != want {
			t.Errorf("bucket %d (%v): expected count %d, got %d", i, points[i].Time, want, points[i].Count)
		}
		wantTime := base.Add(time.Duration(i) * time.Hour)
		if !points[i].Time.Equal(wantTime) {
			t.Errorf("bucket %d: expected time %v, got %v", i, wantTime, points[i].Time)
		}
	}
}

func TestDensity_UnorderedInput(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		densityTask("late", base.Add(2*time.Hour)),
		densityTask("early", base),
	}

	points := Density(tasks)

	if len(points) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(points))
	}
	if points[0].Count != 1 || points[2].Count != 2 {
		t.Errorf("unexpected counts: %v", points)
	}
}
