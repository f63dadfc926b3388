// Package repotest provides in-memory repositories for tests.
package repotest

import (
	"context"
	"sync"
	"time"

	"quizhub/internal/model"
	"quizhub/internal/repository"
)

// Store is an in-memory repository.Store. Set Err to make every call fail.
type Store struct {
	mu       sync.Mutex
	courses  []*model.Course
	users    []model.User
	visitors map[string]*model.Visitor

	Err error
}

func NewStore() *Store {
	return &Store{visitors: make(map[string]*model.Visitor)}
}

func (s *Store) Courses() repository.CourseRepository   { return courseRepo{s} }
func (s *Store) Users() repository.UserRepository       { return userRepo{s} }
func (s *Store) Visitors() repository.VisitorRepository { return visitorRepo{s} }

func (s *Store) EnsureSchema(context.Context) error { return s.Err }
func (s *Store) Ping(context.Context) error         { return s.Err }

func (s *Store) Close(context.Context) error { return nil }

// Course returns a copy of the stored course, or nil.
func (s *Store) Course(key string) *model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.find(key); c != nil {
		return c.Clone()
	}
	return nil
}

// UserCount returns the number of stored users.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *Store) find(key string) *model.Course {
	for _, c := range s.courses {
		if c.Key == key {
			return c
		}
	}
	return nil
}

type courseRepo struct{ s *Store }

func (r courseRepo) ListCourses(context.Context) ([]model.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]model.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		out = append(out, *c.Clone())
	}
	return out, nil
}

func (r courseRepo) GetCourseByKey(_ context.Context, key string) (*model.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if c := r.s.find(key); c != nil {
		return c.Clone(), nil
	}
	return nil, nil
}

func (r courseRepo) CreateCourse(_ context.Context, c *model.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if r.s.find(c.Key) != nil {
		return repository.ErrDuplicateKey
	}
	r.s.courses = append(r.s.courses, c.Clone())
	return nil
}

func (r courseRepo) SaveCourse(_ context.Context, c *model.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, existing := range r.s.courses {
		if existing.Key == c.Key {
			r.s.courses[i] = c.Clone()
			return nil
		}
	}
	r.s.courses = append(r.s.courses, c.Clone())
	return nil
}

func (r courseRepo) CountCourses(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.courses)), nil
}

type userRepo struct{ s *Store }

func (r userRepo) CreateUser(_ context.Context, u *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateKey
		}
	}
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r userRepo) CountUsers(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.users)), nil
}

type visitorRepo struct{ s *Store }

func (r visitorRepo) GetVisitorByDeviceID(_ context.Context, deviceID string) (*model.Visitor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if v, ok := r.s.visitors[deviceID]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (r visitorRepo) CreateVisitor(_ context.Context, v *model.Visitor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.visitors[v.DeviceID]; ok {
		return repository.ErrDuplicateKey
	}
	cp := *v
	r.s.visitors[v.DeviceID] = &cp
	return nil
}

func (r visitorRepo) RecordVisit(_ context.Context, deviceID string, at time.Time) (*model.Visitor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	v, ok := r.s.visitors[deviceID]
	if !ok {
		return nil, nil
	}
	v.VisitCount++
	v.LastVisit = at
	cp := *v
	return &cp, nil
}

func (r visitorRepo) CountVisitors(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.visitors)), nil
}
