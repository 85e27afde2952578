package exports

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avikapoor/basketline-backend/pkg/db/models"
	pkgerrors "github.com/avikapoor/basketline-backend/pkg/errors"
	"github.com/avikapoor/basketline-backend/pkg/logger"
	"github.com/avikapoor/basketline-backend/pkg/metrics"
)

const opExportFlatten = "export_flatten"

// Filter narrows the export feed. Empty values mean no filtering; Year
// tolerates string input the same way the report filter does.
type Filter struct {
	Year  string
	Store string
}

// Service defines the behavior needed by the exports controller.
type Service interface {
	Lists(ctx context.Context, userID uuid.UUID, filter Filter) (*Export, error)
}

type listFetcher interface {
	FetchOwned(ctx context.Context, ownerID uuid.UUID) ([]models.GroceryList, error)
	FetchSharedWith(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error)
}

// ServiceParams bundles the dependencies required to build an exports service.
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

// NewService constructs an exports service with the provided dependencies.
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

// Lists builds the flattened export feed over every list the user can see.
// Unlike the summary report, exporters need to know about fetch failures, so
// errors propagate.
func (s *service) Lists(ctx context.Context, userID uuid.UUID, filter Filter) (*Export, error) {
	start := time.Now()

	owned, err := s.lists.FetchOwned(ctx, userID)
	if err != nil {
		s.metrics.IncFailure(opExportFlatten)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch owned lists")
	}
	shared, err := s.lists.FetchSharedWith(ctx, userID)
	if err != nil {
		s.metrics.IncFailure(opExportFlatten)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch shared lists")
	}

	visible := applyFilter(append(owned, shared...), filter)
	export := Flatten(visible)

	s.metrics.ObserveDuration(opExportFlatten, time.Since(start))
	s.metrics.IncSuccess(opExportFlatten)
	return &export, nil
}

func applyFilter(source []models.GroceryList, filter Filter) []models.GroceryList {
	year := strings.TrimSpace(filter.Year)
	store := strings.TrimSpace(filter.Store)
	if year == "" || strings.EqualFold(year, "all") {
		year = ""
	}

	filtered := make([]models.GroceryList, 0, len(source))
	for i := range source {
		list := &source[i]
		if year != "" && strconv.Itoa(list.Year) != year {
			continue
		}
		if store != "" && list.Store != store {
			continue
		}
		filtered = append(filtered, *list)
	}
	return filtered
}
