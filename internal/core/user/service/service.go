package userapp

import (
	"context"
	"fmt"
	"time"

	"manshurat/internal/config"
	"manshurat/internal/core/interaction"
	"manshurat/internal/core/store"
	"manshurat/internal/core/timeline"
	userEntity "manshurat/internal/core/user"
	"manshurat/internal/ports/events"
	storePort "manshurat/internal/ports/store"
	userPort "manshurat/internal/ports/user"

	"go.uber.org/zap"
)

// UserService serves profiles, the viewer identity and user discovery.
type UserService struct {
	Store          storePort.SnapshotStore
	Events         events.Emitter
	SuggestedLimit int
	Now            func() time.Time
}

func NewUserService(st storePort.SnapshotStore, emitter events.Emitter, suggestedLimit int) *UserService {
	if emitter == nil {
		emitter = events.Discard
	}
	return &UserService{
		Store:          st,
		Events:         emitter,
		SuggestedLimit: suggestedLimit,
		Now:            time.Now,
	}
}

func profileOf(s *store.Snapshot, u userEntity.User) *userPort.ProfileDTO {
	return userPort.ToProfileDTO(u, s.FollowingOf(s.ViewerID).Has(u.ID))
}

// GetViewer returns the profile of the current viewer.
func (s *UserService) GetViewer(ctx context.Context) (*userPort.ProfileDTO, error) {
	snap := s.Store.Current(ctx)
	u, ok := snap.Viewer()
	if !ok {
		return nil, fmt.Errorf("viewer %d: %w", snap.ViewerID, store.ErrNotFound)
	}
	return profileOf(snap, u), nil
}

// SwitchViewer makes userID the user on whose behalf operations run.
func (s *UserService) SwitchViewer(ctx context.Context, userID int64) (*userPort.ProfileDTO, error) {
	var switched userEntity.User
	snap, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		next, u, err := interaction.SwitchViewer(cur, userID)
		switched = u
		return next, err
	})
	if err != nil {
		return nil, err
	}

	config.Logger.Info("Viewer switched", zap.Int64("userID", userID))
	s.Events.Emit(events.Event{Kind: events.ViewerSwitched, ActorID: userID, At: s.Now()})
	return profileOf(snap, switched), nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*userPort.ProfileDTO, error) {
	snap := s.Store.Current(ctx)
	u, ok := snap.User(userID)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, store.ErrNotFound)
	}
	return profileOf(snap, u), nil
}

// UpdateProfile merges patch into userID's profile. When userID is the viewer
// the change is visible through GetViewer immediately.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, patch userEntity.ProfilePatch) (*userPort.ProfileDTO, error) {
	var updated userEntity.User
	snap, err := s.Store.Update(ctx, func(cur *store.Snapshot) (*store.Snapshot, error) {
		next, u, err := interaction.UpdateProfile(cur, userID, patch)
		updated = u
		return next, err
	})
	if err != nil {
		config.Logger.Warn("⚠️ Profile update rejected", zap.Int64("userID", userID), zap.Error(err))
		return nil, err
	}

	s.Events.Emit(events.Event{Kind: events.ProfileUpdated, ActorID: userID, TargetID: userID, At: s.Now()})
	return profileOf(snap, updated), nil
}

// Search finds users by name for the viewer.
func (s *UserService) Search(ctx context.Context, query string) ([]*userPort.UserDTO, error) {
	snap := s.Store.Current(ctx)
	return toDTOs(timeline.Search(snap.Users, snap.ViewerID, query)), nil
}

// Suggested lists users the viewer does not follow yet.
func (s *UserService) Suggested(ctx context.Context) ([]*userPort.UserDTO, error) {
	snap := s.Store.Current(ctx)
	return toDTOs(timeline.Suggested(snap.Users, snap.ViewerID, snap.FollowingOf(snap.ViewerID), s.SuggestedLimit)), nil
}

func toDTOs(users []userEntity.User) []*userPort.UserDTO {
	out := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, userPort.ToDTO(u))
	}
	return out
}
