package reports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avikapoor/basketline-backend/pkg/db/models"
	pkgerrors "github.com/avikapoor/basketline-backend/pkg/errors"
	"github.com/avikapoor/basketline-backend/pkg/logger"
	"github.com/avikapoor/basketline-backend/pkg/metrics"
)

const opReportBuild = "report_build"

// Service defines the behavior needed by the reports controller.
type Service interface {
	Summary(ctx context.Context, userID uuid.UUID, yearFilter string) Report
}

type listFetcher interface {
	FetchOwned(ctx context.Context, ownerID uuid.UUID) ([]models.GroceryList, error)
	FetchSharedWith(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error)
}

// ServiceParams bundles the dependencies required to build a reports service.
type ServiceParams struct {
	Lists   listFetcher
	Metrics *metrics.OpMetrics
	Logger  *logger.Logger
}

type service struct {
	lists   listFetcher
	metrics *metrics.OpMetrics
	logg    *logger.Logger
}

// NewService constructs a reports service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Lists == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "list fetcher required")
	}
	return &service{
		lists:   params.Lists,
		metrics: params.Metrics,
		logg:    params.Logger,
	}, nil
}

// Summary builds the spend report over every list the user can see, owned
// and shared alike. A fetch failure degrades to a well-formed zero report so
// callers never branch on errors.
func (s *service) Summary(ctx context.Context, userID uuid.UUID, yearFilter string) Report {
	start := time.Now()

	visible, err := s.fetchVisible(ctx, userID)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "report fetch failed, returning empty report")
		}
		s.metrics.IncFailure(opReportBuild)
		return BuildReport(nil, yearFilter)
	}

	report := BuildReport(visible, yearFilter)
	s.metrics.ObserveDuration(opReportBuild, time.Since(start))
	s.metrics.IncSuccess(opReportBuild)
	return report
}

func (s *service) fetchVisible(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error) {
	owned, err := s.lists.FetchOwned(ctx, userID)
	if err != nil {
		return nil, err
	}
	shared, err := s.lists.FetchSharedWith(ctx, userID)
	if err != nil {
		return nil, err
	}
	return append(owned, shared...), nil
}
