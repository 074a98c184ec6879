package access

import (
	"context"
	"errors"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"
)

type Service interface {
	CreateContent(ctx context.Context, ownerID uint64, kind, body string, visibility common.Visibility) (uint64, error)
	GetContent(ctx context.Context, viewerID, contentID uint64) (*dbmysql.Content, error)
	ListUserContent(ctx context.Context, viewerID, ownerID uint64) ([]dbmysql.Content, error)
	SetVisibility(ctx context.Context, actorID, contentID uint64, visibility common.Visibility) error
	RemoveContent(ctx context.Context, actorID uint64, actorAdmin bool, contentID uint64) error

	FileReport(ctx context.Context, reporterID, contentID uint64, reason string) (uint64, error)
	GetReport(ctx context.Context, actorID uint64, actorAdmin bool, reportID uint64) (*dbmysql.Report, error)
}

type accessService struct {
	contentRepo ContentRepository
	reportRepo  ReportRepository
	engine      *Engine
}

func NewService(contentRepo ContentRepository, reportRepo ReportRepository, engine *Engine) Service {
	return &accessService{
		contentRepo: contentRepo,
		reportRepo:  reportRepo,
		engine:      engine,
	}
}

func (s *accessService) CreateContent(ctx context.Context, ownerID uint64, kind, body string, visibility common.Visibility) (uint64, error) {
	if ownerID == common.AnonymousID {
		return 0, common.ErrNotFound
	}
	if !visibility.Valid() {
		return 0, errors.New("invalid visibility")
	}
	switch kind {
	case "post", "video", "clip":
	default:
		return 0, errors.New("invalid content kind")
	}

	content := &dbmysql.Content{
		OwnerID:    ownerID,
		Kind:       kind,
		Visibility: string(visibility),
	}
	if body != "" {
		content.Body = &body
	}
	if err := s.contentRepo.Create(ctx, content); err != nil {
		return 0, err
	}
	return content.ContentID, nil
}

// GetContent returns the item if the viewer may see it. A denied item and a
// missing item both come back as ErrNotFound, so existence never leaks.
func (s *accessService) GetContent(ctx context.Context, viewerID, contentID uint64) (*dbmysql.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.engine.CanView(ctx, content, viewerID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, common.ErrNotFound
	}
	return content, nil
}

// ListUserContent applies CanView per item before the page crosses the
// boundary; denied items are dropped silently.
func (s *accessService) ListUserContent(ctx context.Context, viewerID, ownerID uint64) ([]dbmysql.Content, error) {
	all, err := s.contentRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	visible := make([]dbmysql.Content, 0, len(all))
	for i := range all {
		allowed, err := s.engine.CanView(ctx, &all[i], viewerID)
		if err != nil {
			return nil, err
		}
		if allowed {
			visible = append(visible, all[i])
		}
	}
	return visible, nil
}

// SetVisibility is an owner-only mutation. A non-owner gets ErrNotFound, the
// same answer as for a nonexistent item.
func (s *accessService) SetVisibility(ctx context.Context, actorID, contentID uint64, visibility common.Visibility) error {
	if !visibility.Valid() {
		return errors.New("invalid visibility")
	}

	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return err
	}
	if actorID == common.AnonymousID || actorID != content.OwnerID {
		return common.ErrNotFound
	}
	return s.contentRepo.UpdateVisibility(ctx, contentID, visibility)
}

// RemoveContent soft-deletes. Allowed for the owner or a moderation actor
// with admin capability; the row stays while references exist.
func (s *accessService) RemoveContent(ctx context.Context, actorID uint64, actorAdmin bool, contentID uint64) error {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return err
	}
	if !actorAdmin && (actorID == common.AnonymousID || actorID != content.OwnerID) {
		return common.ErrNotFound
	}
	return s.contentRepo.SoftDelete(ctx, contentID)
}

func (s *accessService) FileReport(ctx context.Context, reporterID, contentID uint64, reason string) (uint64, error) {
	if reporterID == common.AnonymousID {
		return 0, common.ErrNotFound
	}
	if reason == "" {
		return 0, errors.New("reason required")
	}
	// The target must at least exist; visibility does not gate reporting.
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return 0, err
	}

	report := &dbmysql.Report{
		ContentID:  contentID,
		ReporterID: reporterID,
		Reason:     reason,
		Status:     "open",
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return 0, err
	}
	return report.ReportID, nil
}

func (s *accessService) GetReport(ctx context.Context, actorID uint64, actorAdmin bool, reportID uint64) (*dbmysql.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !CanModerate(report, actorID, actorAdmin) {
		return nil, common.ErrNotFound
	}
	return report, nil
}
