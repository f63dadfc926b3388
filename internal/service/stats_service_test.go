package service

import (
	"context"
	"testing"

	"quizhub/internal/model"
	"quizhub/internal/repository/repotest"

	"github.com/rs/zerolog"
)

func seedStatsStore(t *testing.T) *repotest.Store {
	t.Helper()
	store := repotest.NewStore()
	ctx := context.Background()
	manyDays := make([]model.Day, 45)
	for i := range manyDays {
		manyDays[i] = model.Day{Day: dayID(i + 1)}
	}
	courses := []*model.Course{
		{Key: "html", Name: "HTML", Days: []model.Day{
			{Day: "day-1", Quizzes: make([]model.Question, 3)},
			{Day: "day-2", Quizzes: make([]model.Question, 1)},
		}},
		{Key: "rust", Name: "Rust", Days: []model.Day{}},
		{Key: "python", Name: "Python", Days: manyDays},
	}
	for _, c := range courses {
		if err := store.Courses().CreateCourse(ctx, c); err != nil {
			t.Fatalf("CreateCourse returned error: %v", err)
		}
	}
	if err := store.Users().CreateUser(ctx, &model.User{ID: "1", Email: "a@example.com"}); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	return store
}

func TestDashboardStats(t *testing.T) {
	store := seedStatsStore(t)
	svc := NewStatsService(store.Courses(), store.Users(), store.Visitors(), zerolog.Nop())

	got, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats returned error: %v", err)
	}
	want := DashboardStats{TotalCourses: 3, StartedCourses: 2, TotalDays: 47, TotalQuestions: 4, TotalUsers: 1}
	if *got != want {
		t.Fatalf("DashboardStats = %+v, want %+v", *got, want)
	}
}

func TestCoursesProgress(t *testing.T) {
	store := seedStatsStore(t)
	svc := NewStatsService(store.Courses(), store.Users(), store.Visitors(), zerolog.Nop())

	got, err := svc.CoursesProgress(context.Background())
	if err != nil {
		t.Fatalf("CoursesProgress returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	html := got[0]
	if html.Key != "html" || html.DayCount != 2 || html.Icon != "fab fa-html5" || html.Color != "from-orange-500 to-red-500" {
		t.Fatalf("unexpected html progress: %+v", html)
	}
	days := float64(html.DayCount)
	if want := days / completeCourseDays * 100; html.ProgressPercent != want {
		t.Fatalf("expected %v%%, got %v%%", want, html.ProgressPercent)
	}

	rust := got[1]
	if rust.Icon != "fas fa-book" || rust.Color != "from-gray-500 to-blue-500" || rust.ProgressPercent != 0 {
		t.Fatalf("unexpected fallback progress: %+v", rust)
	}

	if got[2].ProgressPercent != 100 {
		t.Fatalf("expected progress capped at 100, got %v", got[2].ProgressPercent)
	}
}

func TestPublicStatsCountsVisitors(t *testing.T) {
	store := seedStatsStore(t)
	visits := NewVisitorService(store.Visitors(), zerolog.Nop())
	for _, d := range []string{"a", "b", "a"} {
		if _, err := visits.RegisterVisit(context.Background(), d, ""); err != nil {
			t.Fatalf("RegisterVisit returned error: %v", err)
		}
	}
	svc := NewStatsService(store.Courses(), store.Users(), store.Visitors(), zerolog.Nop())

	got, err := svc.PublicStats(context.Background())
	if err != nil {
		t.Fatalf("PublicStats returned error: %v", err)
	}
	want := PublicStats{TotalCourses: 3, StartedCourses: 2, TotalDays: 47, TotalVisitors: 2}
	if *got != want {
		t.Fatalf("PublicStats = %+v, want %+v", *got, want)
	}
}
