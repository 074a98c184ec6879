package graph

import (
	"context"
	"errors"
	"testing"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestRequestConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRelationshipRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	tests := []struct {
		name      string
		requester uint64
		target    uint64
		setup     func()
		wantErr   error
	}{
		{
			name:      "success",
			requester: 1,
			target:    2,
			setup: func() {
				repo.EXPECT().PairExists(ctx, uint64(1), uint64(2), common.KindConnection).Return(false, nil)
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, rel *dbmysql.Relationship) error {
						require.Equal(t, uint64(1), rel.FromID)
						require.Equal(t, uint64(2), rel.ToID)
						require.Equal(t, string(common.KindConnection), rel.Kind)
						require.Equal(t, string(common.StatusPending), rel.Status)
						return nil
					})
			},
		},
		{
			name:      "self reference",
			requester: 1,
			target:    1,
			setup:     func() {},
			wantErr:   common.ErrSelfReference,
		},
		{
			name:      "duplicate pair either direction",
			requester: 2,
			target:    1,
			setup: func() {
				repo.EXPECT().PairExists(ctx, uint64(2), uint64(1), common.KindConnection).Return(true, nil)
			},
			wantErr: common.ErrDuplicateEdge,
		},
		{
			name:      "repo failure",
			requester: 1,
			target:    3,
			setup: func() {
				repo.EXPECT().PairExists(ctx, uint64(1), uint64(3), common.KindConnection).Return(false, errors.New("db is down"))
			},
			wantErr: nil, // plain error, checked below
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			err := svc.RequestConnection(ctx, tc.requester, tc.target)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else if tc.name == "repo failure" {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Two reciprocal requests can both pass the PairExists fast path before
// either row lands. The canonical pair index then rejects the loser's insert,
// which the repository reports as a duplicate edge.
func TestReciprocalRequestsCollapseToOneEdge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRelationshipRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().PairExists(ctx, uint64(2), uint64(1), common.KindConnection).Return(false, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(common.ErrDuplicateEdge)

	err := svc.RequestConnection(ctx, 2, 1)
	require.ErrorIs(t, err, common.ErrDuplicateEdge)
}

func TestAcceptConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRelationshipRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	pending := func() *dbmysql.Relationship {
		return &dbmysql.Relationship{ID: 10, FromID: 1, ToID: 2, Kind: string(common.KindConnection), Status: string(common.StatusPending), Version: 1}
	}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetDirected(ctx, uint64(1), uint64(2), common.KindConnection).Return(pending(), nil)
		repo.EXPECT().UpdateStatusCAS(ctx, uint64(10), uint64(1), common.StatusAccepted, gomock.Not(gomock.Nil())).Return(true, nil)

		require.NoError(t, svc.AcceptConnection(ctx, 2, 1))
	})

	t.Run("no such request", func(t *testing.T) {
		repo.EXPECT().GetDirected(ctx, uint64(3), uint64(2), common.KindConnection).Return(nil, common.ErrNotFound)

		err := svc.AcceptConnection(ctx, 2, 3)
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("already terminal", func(t *testing.T) {
		rel := pending()
		rel.Status = string(common.StatusAccepted)
		repo.EXPECT().GetDirected(ctx, uint64(1), uint64(2), common.KindConnection).Return(rel, nil)

		err := svc.AcceptConnection(ctx, 2, 1)
		require.ErrorIs(t, err, common.ErrInvalidTransition)
	})

	t.Run("version race loser", func(t *testing.T) {
		repo.EXPECT().GetDirected(ctx, uint64(1), uint64(2), common.KindConnection).Return(pending(), nil)
		repo.EXPECT().UpdateStatusCAS(ctx, uint64(10), uint64(1), common.StatusAccepted, gomock.Any()).Return(false, nil)

		err := svc.AcceptConnection(ctx, 2, 1)
		require.ErrorIs(t, err, common.ErrInvalidTransition)
	})
}

func TestRejectAndCancelConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRelationshipRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	t.Run("receiver rejects", func(t *testing.T) {
		rel := &dbmysql.Relationship{ID: 11, FromID: 5, ToID: 6, Kind: string(common.KindConnection), Status: string(common.StatusPending), Version: 2}
		repo.EXPECT().GetDirected(ctx, uint64(5), uint64(6), common.KindConnection).Return(rel, nil)
		repo.EXPECT().UpdateStatusCAS(ctx, uint64(11), uint64(2), common.StatusRejected, gomock.Nil()).Return(true, nil)

		require.NoError(t, svc.RejectConnection(ctx, 6, 5))
	})

	t.Run("requester cancels", func(t *testing.T) {
		rel := &dbmysql.Relationship{ID: 12, FromID: 5, ToID: 6, Kind: string(common.KindConnection), Status: string(common.StatusPending), Version: 1}
		repo.EXPECT().GetDirected(ctx, uint64(5), uint64(6), common.KindConnection).Return(rel, nil)
		repo.EXPECT().UpdateStatusCAS(ctx, uint64(12), uint64(1), common.StatusCancelled, gomock.Nil()).Return(true, nil)

		require.NoError(t, svc.CancelConnection(ctx, 5, 6))
	})

	t.Run("cancel from cancelled is invalid", func(t *testing.T) {
		rel := &dbmysql.Relationship{ID: 13, FromID: 5, ToID: 6, Kind: string(common.KindConnection), Status: string(common.StatusCancelled), Version: 2}
		repo.EXPECT().GetDirected(ctx, uint64(5), uint64(6), common.KindConnection).Return(rel, nil)

		err := svc.CancelConnection(ctx, 5, 6)
		require.ErrorIs(t, err, common.ErrInvalidTransition)
	})
}

func TestBlockAndFollowEdges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRelationshipRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	t.Run("block creates accepted edge", func(t *testing.T) {
		repo.EXPECT().DirectedExists(ctx, uint64(1), uint64(2), common.KindBlock).Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, rel *dbmysql.Relationship) error {
				require.Equal(t, string(common.KindBlock), rel.Kind)
				require.Equal(t, string(common.StatusAccepted), rel.Status)
				return nil
			})
		require.NoError(t, svc.Block(ctx, 1, 2))
	})

	t.Run("double block rejected", func(t *testing.T) {
		repo.EXPECT().DirectedExists(ctx, uint64(1), uint64(2), common.KindBlock).Return(true, nil)
		require.ErrorIs(t, svc.Block(ctx, 1, 2), common.ErrDuplicateEdge)
	})

	t.Run("self block rejected", func(t *testing.T) {
		require.ErrorIs(t, svc.Block(ctx, 1, 1), common.ErrSelfReference)
	})

	t.Run("unblock missing edge", func(t *testing.T) {
		repo.EXPECT().DeleteDirected(ctx, uint64(1), uint64(2), common.KindBlock).Return(false, nil)
		require.ErrorIs(t, svc.Unblock(ctx, 1, 2), common.ErrNotFound)
	})

	t.Run("follow and unfollow", func(t *testing.T) {
		repo.EXPECT().DirectedExists(ctx, uint64(3), uint64(4), common.KindFollow).Return(false, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		require.NoError(t, svc.Follow(ctx, 3, 4))

		repo.EXPECT().DeleteDirected(ctx, uint64(3), uint64(4), common.KindFollow).Return(true, nil)
		require.NoError(t, svc.Unfollow(ctx, 3, 4))
	})
}

// IsConnected must be symmetric: the repository query covers both directions,
// so the answer is independent of argument order.
func TestIsConnectedSymmetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRelationshipRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().ActiveEdgeExists(ctx, uint64(1), uint64(2), common.KindConnection).Return(true, nil)
	repo.EXPECT().ActiveEdgeExists(ctx, uint64(2), uint64(1), common.KindConnection).Return(true, nil)

	ab, err := svc.IsConnected(ctx, 1, 2)
	require.NoError(t, err)
	ba, err := svc.IsConnected(ctx, 2, 1)
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

func TestIsBlockedEitherDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRelationshipRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().ActiveEdgeExists(ctx, uint64(9), uint64(8), common.KindBlock).Return(true, nil)

	blocked, err := svc.IsBlocked(ctx, 9, 8)
	require.NoError(t, err)
	require.True(t, blocked)
}
