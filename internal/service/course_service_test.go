package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"quizhub/internal/model"
	"quizhub/internal/repository/repotest"

	"github.com/rs/zerolog"
)

var fixedNow = time.UnixMilli(1700000000000)

func newTestCourseService(store *repotest.Store) CourseService {
	return NewCourseService(store.Courses(), zerolog.Nop(), WithClock(func() time.Time { return fixedNow }))
}

func TestCreateCourseThenList(t *testing.T) {
	store := repotest.NewStore()
	svc := newTestCourseService(store)
	ctx := context.Background()

	if _, err := svc.CreateCourse(ctx, "html", "HTML"); err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	courses, err := svc.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses returned error: %v", err)
	}
	if len(courses) != 1 || courses[0].Key != "html" || courses[0].Name != "HTML" {
		t.Fatalf("unexpected courses: %+v", courses)
	}
	if len(courses[0].Days) != 0 {
		t.Fatalf("expected no days, got %d", len(courses[0].Days))
	}
}

func TestCreateCourseDuplicateLeavesStoreUnchanged(t *testing.T) {
	store := repotest.NewStore()
	svc := newTestCourseService(store)
	ctx := context.Background()

	if _, err := svc.CreateCourse(ctx, "html", "HTML"); err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if _, err := svc.AddDay(ctx, AddDayParams{CourseKey: "html", Day: "day-1", Topic: "Basics"}); err != nil {
		t.Fatalf("AddDay returned error: %v", err)
	}

	_, err := svc.CreateCourse(ctx, "html", "Other")
	if !errors.Is(err, ErrDuplicateCourse) {
		t.Fatalf("expected ErrDuplicateCourse, got %v", err)
	}
	c := store.Course("html")
	if c.Name != "HTML" || len(c.Days) != 1 {
		t.Fatalf("duplicate create mutated the course: %+v", c)
	}
}

func TestAddDayStrictRejectsDuplicate(t *testing.T) {
	svc := newTestCourseService(repotest.NewStore())
	ctx := context.Background()
	p := AddDayParams{CourseKey: "html", Day: "day-1", Topic: "Basics", Description: "d"}

	if _, err := svc.AddDay(ctx, p); err != nil {
		t.Fatalf("AddDay returned error: %v", err)
	}
	p.Topic = "Replaced"
	if _, err := svc.AddDay(ctx, p); !errors.Is(err, ErrDuplicateDay) {
		t.Fatalf("expected ErrDuplicateDay, got %v", err)
	}
	days, err := svc.GetCourseDays(ctx, "html")
	if err != nil {
		t.Fatalf("GetCourseDays returned error: %v", err)
	}
	if len(days.Days) != 1 || days.Days[0].Topic != "Basics" {
		t.Fatalf("strict add changed the stored day: %+v", days.Days)
	}
}

func TestAddDayCreatesCourseWithCapitalizedName(t *testing.T) {
	store := repotest.NewStore()
	svc := newTestCourseService(store)

	day, err := svc.AddDay(context.Background(), AddDayParams{CourseKey: "javaScript", Day: "day-1", Topic: "Intro"})
	if err != nil {
		t.Fatalf("AddDay returned error: %v", err)
	}
	if day.Category != model.CategoryBasic {
		t.Fatalf("expected default category basic, got %q", day.Category)
	}
	c := store.Course("javaScript")
	if c == nil || c.Name != "JavaScript" {
		t.Fatalf("expected auto-created course named JavaScript, got %+v", c)
	}
}

func TestPutDayOverwrites(t *testing.T) {
	store := repotest.NewStore()
	svc := newTestCourseService(store)
	ctx := context.Background()

	if _, err := svc.AddDay(ctx, AddDayParams{CourseKey: "css", Day: "day-1", Topic: "Old"}); err != nil {
		t.Fatalf("AddDay returned error: %v", err)
	}
	if _, err := svc.AddDay(ctx, AddDayParams{CourseKey: "css", Day: "day-2", Topic: "Second"}); err != nil {
		t.Fatalf("AddDay returned error: %v", err)
	}
	if _, err := svc.PutDay(ctx, AddDayParams{CourseKey: "css", Day: "day-1", Topic: "New", Category: model.CategoryAdvanced}); err != nil {
		t.Fatalf("PutDay returned error: %v", err)
	}

	c := store.Course("css")
	if len(c.Days) != 2 {
		t.Fatalf("expected 2 days after overwrite, got %d", len(c.Days))
	}
	if c.Days[0].Day != "day-1" || c.Days[0].Topic != "New" || c.Days[0].Category != model.CategoryAdvanced {
		t.Fatalf("day-1 not overwritten in place: %+v", c.Days[0])
	}
}

func TestAddQuestionsIsCumulative(t *testing.T) {
	store := repotest.NewStore()
	svc := newTestCourseService(store)
	ctx := context.Background()

	q1 := model.Question{Question: "q1", Options: []string{"a", "b", "c", "d"}, Answer: 1}
	q2 := model.Question{Question: "q2", Options: []string{"a", "b", "c", "d"}, Answer: 2, Category: "medium"}

	if total, err := svc.AddQuestions(ctx, "html", "day-1", []model.Question{q1}); err != nil || total != 1 {
		t.Fatalf("first AddQuestions = %d, %v", total, err)
	}
	total, err := svc.AddQuestions(ctx, "html", "day-1", []model.Question{q2})
	if err != nil {
		t.Fatalf("second AddQuestions returned error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected totalQuestions 2, got %d", total)
	}

	day := store.Course("html").FindDay("day-1")
	if len(day.Quizzes) != 2 || day.Quizzes[0].Question != "q1" || day.Quizzes[1].Question != "q2" {
		t.Fatalf("unexpected question order: %+v", day.Quizzes)
	}
	if day.Quizzes[0].Category != "basic" || day.Quizzes[1].Category != "medium" {
		t.Fatalf("unexpected categories: %q, %q", day.Quizzes[0].Category, day.Quizzes[1].Category)
	}
}

func TestAddQuestionsCreatesPlaceholderDay(t *testing.T) {
	store := repotest.NewStore()
	svc := newTestCourseService(store)

	qs := []model.Question{{Question: "a"}, {Question: "b"}}
	total, err := svc.AddQuestions(context.Background(), "css", "day-1", qs)
	if err != nil {
		t.Fatalf("AddQuestions returned error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 questions, got %d", total)
	}
	c := store.Course("css")
	if c == nil || c.Name != "Css" {
		t.Fatalf("expected auto-created course Css, got %+v", c)
	}
	day := c.FindDay("day-1")
	if day.Topic != "No topic" || day.Description != "No description" || day.Category != model.CategoryBasic {
		t.Fatalf("unexpected placeholder day: %+v", day)
	}
	base := fixedNow.UnixMilli()
	if day.Quizzes[0].ID != base || day.Quizzes[1].ID != base+1 {
		t.Fatalf("expected ids %d and %d, got %d and %d", base, base+1, day.Quizzes[0].ID, day.Quizzes[1].ID)
	}
}

func TestAddQuestionsIDsRepeatAcrossBatchesInSameInstant(t *testing.T) {
	store := repotest.NewStore()
	svc := newTestCourseService(store)
	ctx := context.Background()

	if _, err := svc.AddQuestions(ctx, "c", "day-1", []model.Question{{Question: "a"}}); err != nil {
		t.Fatalf("AddQuestions returned error: %v", err)
	}
	if _, err := svc.AddQuestions(ctx, "c", "day-1", []model.Question{{Question: "b"}}); err != nil {
		t.Fatalf("AddQuestions returned error: %v", err)
	}
	qs := store.Course("c").FindDay("day-1").Quizzes
	if qs[0].ID != qs[1].ID {
		t.Fatalf("expected batch-local ids to collide under a frozen clock, got %d and %d", qs[0].ID, qs[1].ID)
	}
}

func TestNextDay(t *testing.T) {
	svc := newTestCourseService(repotest.NewStore())
	ctx := context.Background()

	next, err := svc.NextDay(ctx, "missing")
	if err != nil {
		t.Fatalf("NextDay returned error: %v", err)
	}
	if next.Day != "day-1" || len(next.ExistingDays) != 0 {
		t.Fatalf("unexpected next day for missing course: %+v", next)
	}

	for _, d := range []string{"day-1", "day-2", "day-5"} {
		if _, err := svc.AddDay(ctx, AddDayParams{CourseKey: "html", Day: d, Topic: d}); err != nil {
			t.Fatalf("AddDay(%s) returned error: %v", d, err)
		}
	}
	if _, err := svc.AddDay(ctx, AddDayParams{CourseKey: "html", Day: "bonus", Topic: "x"}); err != nil {
		t.Fatalf("AddDay(bonus) returned error: %v", err)
	}

	next, err = svc.NextDay(ctx, "html")
	if err != nil {
		t.Fatalf("NextDay returned error: %v", err)
	}
	if next.Day != "day-6" {
		t.Fatalf("expected day-6, got %s", next.Day)
	}
	want := []int{1, 2, 5}
	if len(next.ExistingDays) != len(want) {
		t.Fatalf("expected existing days %v, got %v", want, next.ExistingDays)
	}
	for i := range want {
		if next.ExistingDays[i] != want[i] {
			t.Fatalf("expected existing days %v, got %v", want, next.ExistingDays)
		}
	}
}

func TestGetCourseDaysSortedByNumber(t *testing.T) {
	svc := newTestCourseService(repotest.NewStore())
	ctx := context.Background()

	for _, d := range []string{"day-10", "day-2", "day-1", "day-3"} {
		if _, err := svc.AddDay(ctx, AddDayParams{CourseKey: "py", Day: d, Topic: d}); err != nil {
			t.Fatalf("AddDay(%s) returned error: %v", d, err)
		}
	}
	got, err := svc.GetCourseDays(ctx, "py")
	if err != nil {
		t.Fatalf("GetCourseDays returned error: %v", err)
	}
	want := []string{"day-1", "day-2", "day-3", "day-10"}
	for i, d := range got.Days {
		if d.Day != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], d.Day)
		}
	}
}

func TestGetCourseDaysMissingCourse(t *testing.T) {
	svc := newTestCourseService(repotest.NewStore())
	if _, err := svc.GetCourseDays(context.Background(), "nope"); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestStoreErrorsPropagate(t *testing.T) {
	store := repotest.NewStore()
	store.Err = errors.New("connection refused")
	svc := newTestCourseService(store)
	ctx := context.Background()

	if _, err := svc.CreateCourse(ctx, "html", "HTML"); !errors.Is(err, store.Err) {
		t.Fatalf("CreateCourse: expected store error, got %v", err)
	}
	if _, err := svc.AddQuestions(ctx, "html", "day-1", nil); !errors.Is(err, store.Err) {
		t.Fatalf("AddQuestions: expected store error, got %v", err)
	}
	if _, err := svc.NextDay(ctx, "html"); !errors.Is(err, store.Err) {
		t.Fatalf("NextDay: expected store error, got %v", err)
	}
}

func TestNextDayWithHugeDayNumber(t *testing.T) {
	svc := newTestCourseService(repotest.NewStore())
	ctx := context.Background()
	for _, d := range []string{"day-2", "day-9223372036854775808", "day-1"} {
		if _, err := svc.PutDay(ctx, AddDayParams{CourseKey: "c", Day: d, Topic: d}); err != nil {
			t.Fatalf("PutDay(%s) returned error: %v", d, err)
		}
	}

	cd, err := svc.GetCourseDays(ctx, "c")
	if err != nil {
		t.Fatalf("GetCourseDays returned error: %v", err)
	}
	if cd.Days[0].Day != "day-1" || cd.Days[2].Day != "day-9223372036854775808" {
		t.Fatalf("unexpected order %v", cd.Days)
	}

	next, err := svc.NextDay(ctx, "c")
	if err != nil {
		t.Fatalf("NextDay returned error: %v", err)
	}
	for _, n := range next.ExistingDays {
		if n < 0 {
			t.Fatalf("existing days contain a negative number: %v", next.ExistingDays)
		}
	}
	if want := dayID(math.MaxInt); next.Day != want {
		t.Fatalf("expected %s, got %s", want, next.Day)
	}
}
