// Package store is the client-side state container: one typed state tree,
// pure reducers per action, and listener notification on every dispatch.
// It mirrors server state and holds no business logic of its own.
package store

import (
	"sync"

	"spill/internal/model"
)

type AuthState struct {
	Token string
	User  *model.User
}

type VenueState struct {
	Venues  []model.Venue
	Current *model.Venue
	Loading bool
}

type PostState struct {
	Posts   []model.Post
	Loading bool
}

type State struct {
	Auth   AuthState
	Venues VenueState
	Posts  PostState
}

// Action is a marker; every mutation is its own typed action struct.
type Action interface{ isAction() }

type SetAuth struct {
	Token string
	User  *model.User
}

type ClearAuth struct{}

type SetVenues struct{ Venues []model.Venue }

type SetCurrentVenue struct{ Venue *model.Venue }

type SetVenuesLoading struct{ Loading bool }

type SetPosts struct{ Posts []model.Post }

type SetPostsLoading struct{ Loading bool }

// AddPost prepends; the feed renders newest first.
type AddPost struct{ Post model.Post }

type RemovePost struct{ ID uint64 }

func (SetAuth) isAction()          {}
func (ClearAuth) isAction()        {}
func (SetVenues) isAction()        {}
func (SetCurrentVenue) isAction()  {}
func (SetVenuesLoading) isAction() {}
func (SetPosts) isAction()         {}
func (SetPostsLoading) isAction()  {}
func (AddPost) isAction()          {}
func (RemovePost) isAction()       {}

// reduce is pure: it never mutates the previous state's slices.
func reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetAuth:
		s.Auth = AuthState{Token: act.Token, User: act.User}
	case ClearAuth:
		s.Auth = AuthState{}
	case SetVenues:
		s.Venues.Venues = append([]model.Venue(nil), act.Venues...)
	case SetCurrentVenue:
		s.Venues.Current = act.Venue
	case SetVenuesLoading:
		s.Venues.Loading = act.Loading
	case SetPosts:
		s.Posts.Posts = append([]model.Post(nil), act.Posts...)
	case SetPostsLoading:
		s.Posts.Loading = act.Loading
	case AddPost:
		next := make([]model.Post, 0, len(s.Posts.Posts)+1)
		next = append(next, act.Post)
		next = append(next, s.Posts.Posts...)
		s.Posts.Posts = next
	case RemovePost:
		next := make([]model.Post, 0, len(s.Posts.Posts))
		for _, p := range s.Posts.Posts {
			if p.ID != act.ID {
				next = append(next, p)
			}
		}
		s.Posts.Posts = next
	}
	return s
}

// Store serializes all mutations through Dispatch.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

func New() *Store {
	return &Store{
		listeners: make(map[int]func(State)),
	}
}

func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	snapshot := s.state
	fns := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a re-render hook; the returned func unsubscribes.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
