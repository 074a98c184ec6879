package access

import (
	"context"
	"testing"
	"time"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func content(owner uint64, visibility common.Visibility) *dbmysql.Content {
	return &dbmysql.Content{ContentID: 100, OwnerID: owner, Visibility: string(visibility)}
}

func TestCanViewDecisionTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	graph := NewMockGraph(ctrl)
	engine := NewEngine(graph)
	ctx := context.Background()

	const owner, viewer = uint64(1), uint64(2)

	tests := []struct {
		name    string
		content *dbmysql.Content
		viewer  uint64
		setup   func()
		want    bool
	}{
		{
			name: "soft-deleted denied even for owner",
			content: func() *dbmysql.Content {
				c := content(owner, common.VisibilityPublic)
				c.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
				return c
			}(),
			viewer: owner,
			setup:  func() {},
			want:   false,
		},
		{
			name:    "owner always sees own private content",
			content: content(owner, common.VisibilityPrivate),
			viewer:  owner,
			setup:   func() {},
			want:    true,
		},
		{
			name:    "block overrides public visibility",
			content: content(owner, common.VisibilityPublic),
			viewer:  viewer,
			setup: func() {
				graph.EXPECT().IsBlocked(ctx, viewer, owner).Return(true, nil)
			},
			want: false,
		},
		{
			name:    "public allowed for stranger",
			content: content(owner, common.VisibilityPublic),
			viewer:  viewer,
			setup: func() {
				graph.EXPECT().IsBlocked(ctx, viewer, owner).Return(false, nil)
			},
			want: true,
		},
		{
			name:    "connections-only allowed when connected",
			content: content(owner, common.VisibilityConnections),
			viewer:  viewer,
			setup: func() {
				graph.EXPECT().IsBlocked(ctx, viewer, owner).Return(false, nil)
				graph.EXPECT().IsConnected(ctx, viewer, owner).Return(true, nil)
			},
			want: true,
		},
		{
			name:    "connections-only denied when not connected",
			content: content(owner, common.VisibilityConnections),
			viewer:  viewer,
			setup: func() {
				graph.EXPECT().IsBlocked(ctx, viewer, owner).Return(false, nil)
				graph.EXPECT().IsConnected(ctx, viewer, owner).Return(false, nil)
			},
			want: false,
		},
		{
			name:    "private denied for non-owner",
			content: content(owner, common.VisibilityPrivate),
			viewer:  viewer,
			setup: func() {
				graph.EXPECT().IsBlocked(ctx, viewer, owner).Return(false, nil)
			},
			want: false,
		},
		{
			name:    "anonymous sees public",
			content: content(owner, common.VisibilityPublic),
			viewer:  common.AnonymousID,
			setup:   func() {},
			want:    true,
		},
		{
			name:    "anonymous never sees connections-only",
			content: content(owner, common.VisibilityConnections),
			viewer:  common.AnonymousID,
			setup:   func() {},
			want:    false,
		},
		{
			name:    "anonymous never sees private",
			content: content(owner, common.VisibilityPrivate),
			viewer:  common.AnonymousID,
			setup:   func() {},
			want:    false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			got, err := engine.CanView(ctx, tc.content, tc.viewer)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// A block must suppress access while the accepted connection edge still
// exists: connections-only content stays hidden from a connected-but-blocked
// viewer.
func TestBlockOverridesAcceptedConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	graph := NewMockGraph(ctrl)
	engine := NewEngine(graph)
	ctx := context.Background()

	c := content(1, common.VisibilityConnections)

	// Before any relationship: denied.
	graph.EXPECT().IsBlocked(ctx, uint64(2), uint64(1)).Return(false, nil)
	graph.EXPECT().IsConnected(ctx, uint64(2), uint64(1)).Return(false, nil)
	allowed, err := engine.CanView(ctx, c, 2)
	require.NoError(t, err)
	require.False(t, allowed)

	// Connection accepted: allowed.
	graph.EXPECT().IsBlocked(ctx, uint64(2), uint64(1)).Return(false, nil)
	graph.EXPECT().IsConnected(ctx, uint64(2), uint64(1)).Return(true, nil)
	allowed, err = engine.CanView(ctx, c, 2)
	require.NoError(t, err)
	require.True(t, allowed)

	// Owner blocks the viewer; connection edge untouched in storage, but the
	// block is checked first and IsConnected is never consulted.
	graph.EXPECT().IsBlocked(ctx, uint64(2), uint64(1)).Return(true, nil)
	allowed, err = engine.CanView(ctx, c, 2)
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestCanModerate(t *testing.T) {
	report := &dbmysql.Report{ReportID: 1, ReporterID: 7}

	require.True(t, CanModerate(report, 7, false), "author may read own report")
	require.True(t, CanModerate(report, 99, true), "admin may read any report")
	require.False(t, CanModerate(report, 8, false), "stranger may not")
	require.False(t, CanModerate(report, common.AnonymousID, false), "anonymous may not")
}
