package access

import (
	"context"
	"testing"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newServiceForTest(t *testing.T) (Service, *MockContentRepository, *MockReportRepository, *MockGraph) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	contentRepo := NewMockContentRepository(ctrl)
	reportRepo := NewMockReportRepository(ctrl)
	graph := NewMockGraph(ctrl)
	svc := NewService(contentRepo, reportRepo, NewEngine(graph))
	return svc, contentRepo, reportRepo, graph
}

func TestGetContentMergesDenialWithAbsence(t *testing.T) {
	svc, contentRepo, _, graph := newServiceForTest(t)
	ctx := context.Background()

	// Missing item.
	contentRepo.EXPECT().GetByID(ctx, uint64(404)).Return(nil, common.ErrNotFound)
	_, errMissing := svc.GetContent(ctx, 2, 404)
	require.ErrorIs(t, errMissing, common.ErrNotFound)

	// Existing but denied item: identical error.
	contentRepo.EXPECT().GetByID(ctx, uint64(100)).Return(content(1, common.VisibilityPrivate), nil)
	graph.EXPECT().IsBlocked(ctx, uint64(2), uint64(1)).Return(false, nil)
	_, errDenied := svc.GetContent(ctx, 2, 100)
	require.ErrorIs(t, errDenied, common.ErrNotFound)

	require.Equal(t, errMissing.Error(), errDenied.Error())
}

func TestGetContentAllowed(t *testing.T) {
	svc, contentRepo, _, graph := newServiceForTest(t)
	ctx := context.Background()

	contentRepo.EXPECT().GetByID(ctx, uint64(100)).Return(content(1, common.VisibilityPublic), nil)
	graph.EXPECT().IsBlocked(ctx, uint64(2), uint64(1)).Return(false, nil)

	got, err := svc.GetContent(ctx, 2, 100)
	require.NoError(t, err)
	require.Equal(t, uint64(100), got.ContentID)
}

func TestListUserContentFiltersPerItem(t *testing.T) {
	svc, contentRepo, _, graph := newServiceForTest(t)
	ctx := context.Background()

	rows := []dbmysql.Content{
		{ContentID: 1, OwnerID: 1, Visibility: string(common.VisibilityPublic)},
		{ContentID: 2, OwnerID: 1, Visibility: string(common.VisibilityConnections)},
		{ContentID: 3, OwnerID: 1, Visibility: string(common.VisibilityPrivate)},
	}
	contentRepo.EXPECT().ListByOwner(ctx, uint64(1)).Return(rows, nil)
	graph.EXPECT().IsBlocked(ctx, uint64(2), uint64(1)).Return(false, nil).Times(3)
	graph.EXPECT().IsConnected(ctx, uint64(2), uint64(1)).Return(false, nil)

	visible, err := svc.ListUserContent(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, uint64(1), visible[0].ContentID)
}

func TestSetVisibilityOwnerOnly(t *testing.T) {
	svc, contentRepo, _, _ := newServiceForTest(t)
	ctx := context.Background()

	t.Run("owner updates", func(t *testing.T) {
		contentRepo.EXPECT().GetByID(ctx, uint64(100)).Return(content(1, common.VisibilityPublic), nil)
		contentRepo.EXPECT().UpdateVisibility(ctx, uint64(100), common.VisibilityPrivate).Return(nil)
		require.NoError(t, svc.SetVisibility(ctx, 1, 100, common.VisibilityPrivate))
	})

	t.Run("non-owner gets not-found", func(t *testing.T) {
		contentRepo.EXPECT().GetByID(ctx, uint64(100)).Return(content(1, common.VisibilityPublic), nil)
		require.ErrorIs(t, svc.SetVisibility(ctx, 2, 100, common.VisibilityPrivate), common.ErrNotFound)
	})

	t.Run("invalid visibility rejected", func(t *testing.T) {
		err := svc.SetVisibility(ctx, 1, 100, common.Visibility("friends-of-friends"))
		require.Error(t, err)
	})
}

func TestRemoveContent(t *testing.T) {
	svc, contentRepo, _, _ := newServiceForTest(t)
	ctx := context.Background()

	t.Run("owner removes", func(t *testing.T) {
		contentRepo.EXPECT().GetByID(ctx, uint64(100)).Return(content(1, common.VisibilityPublic), nil)
		contentRepo.EXPECT().SoftDelete(ctx, uint64(100)).Return(nil)
		require.NoError(t, svc.RemoveContent(ctx, 1, false, 100))
	})

	t.Run("moderator removes", func(t *testing.T) {
		contentRepo.EXPECT().GetByID(ctx, uint64(100)).Return(content(1, common.VisibilityPublic), nil)
		contentRepo.EXPECT().SoftDelete(ctx, uint64(100)).Return(nil)
		require.NoError(t, svc.RemoveContent(ctx, 50, true, 100))
	})

	t.Run("stranger denied as not-found", func(t *testing.T) {
		contentRepo.EXPECT().GetByID(ctx, uint64(100)).Return(content(1, common.VisibilityPublic), nil)
		require.ErrorIs(t, svc.RemoveContent(ctx, 2, false, 100), common.ErrNotFound)
	})
}

func TestReports(t *testing.T) {
	svc, contentRepo, reportRepo, _ := newServiceForTest(t)
	ctx := context.Background()

	t.Run("file and read own report", func(t *testing.T) {
		contentRepo.EXPECT().GetByID(ctx, uint64(100)).Return(content(1, common.VisibilityPublic), nil)
		reportRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r *dbmysql.Report) error {
				r.ReportID = 9
				return nil
			})

		id, err := svc.FileReport(ctx, 7, 100, "spam")
		require.NoError(t, err)
		require.Equal(t, uint64(9), id)

		reportRepo.EXPECT().GetByID(ctx, uint64(9)).Return(&dbmysql.Report{ReportID: 9, ReporterID: 7}, nil)
		report, err := svc.GetReport(ctx, 7, false, 9)
		require.NoError(t, err)
		require.Equal(t, uint64(9), report.ReportID)
	})

	t.Run("stranger cannot read report", func(t *testing.T) {
		reportRepo.EXPECT().GetByID(ctx, uint64(9)).Return(&dbmysql.Report{ReportID: 9, ReporterID: 7}, nil)
		_, err := svc.GetReport(ctx, 8, false, 9)
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("anonymous cannot file", func(t *testing.T) {
		_, err := svc.FileReport(ctx, common.AnonymousID, 100, "spam")
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}
