package queries

import (
	"context"

	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/usecase/shared"
)

type CatalogQueries interface {
	ListCourts(ctx context.Context, s shared.Session) ([]*CourtView, error)
	ListServices(ctx context.Context, s shared.Session) ([]*ServiceCategoryView, error)
	ListVouchers(ctx context.Context, s shared.Session) ([]*VoucherView, error)
}

type catalogQueriesImpl struct {
	catalog shared.CatalogGateway
}

func NewCatalogQueries(catalog shared.CatalogGateway) CatalogQueries {
	return &catalogQueriesImpl{catalog: catalog}
}

func (q *catalogQueriesImpl) ListCourts(ctx context.Context, s shared.Session) ([]*CourtView, error) {
	courts, err := q.catalog.ListCourts(ctx, s)
	if err != nil {
		return nil, upstreamErr(err)
	}
	views := make([]*CourtView, len(courts))
	for i, c := range courts {
		views[i] = newCourtView(c)
	}
	return views, nil
}

// ListServices groups services by category, keeping the backend's order.
func (q *catalogQueriesImpl) ListServices(ctx context.Context, s shared.Session) ([]*ServiceCategoryView, error) {
	services, err := q.catalog.ListServices(ctx, s)
	if err != nil {
		return nil, upstreamErr(err)
	}

	categories, grouped := addon.GroupByCategory(services)
	views := make([]*ServiceCategoryView, 0, len(categories))
	for _, category := range categories {
		group := &ServiceCategoryView{Category: category}
		for _, svc := range grouped[category] {
			group.Services = append(group.Services, &ServiceView{
				ID:          svc.ID(),
				Name:        svc.Name(),
				Description: svc.Description(),
				UnitPrice:   svc.UnitPrice().Int64(),
				Category:    svc.Category(),
			})
		}
		views = append(views, group)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListVouchers(ctx context.Context, s shared.Session) ([]*VoucherView, error) {
	vouchers, err := q.catalog.ListVouchers(ctx, s)
	if err != nil {
		return nil, upstreamErr(err)
	}
	views := make([]*VoucherView, len(vouchers))
	for i, v := range vouchers {
		views[i] = newVoucherView(v)
	}
	return views, nil
}

func upstreamErr(err error) error {
	return shared.UpstreamErr(err, nil)
}
