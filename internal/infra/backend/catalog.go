package backend

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"shuttlesync/internal/domain/addon"
	"shuttlesync/internal/domain/court"
	"shuttlesync/internal/domain/voucher"
	"shuttlesync/internal/infra"
	"shuttlesync/internal/usecase/shared"
)

type CatalogGateway struct {
	client *Client
}

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

func (g *CatalogGateway) ListCourts(ctx context.Context, s shared.Session) ([]*court.Court, error) {
	var rows []courtModel
	if err := g.client.do(ctx, s, http.MethodGet, "/courts", nil, nil, &rows); err != nil {
		return nil, err
	}

	courts := make([]*court.Court, 0, len(rows))
	for _, row := range rows {
		c, err := toCourt(row)
		if err != nil {
			slog.Warn("skipping malformed court", "courtId", row.ID, "error", err)
			continue
		}
		courts = append(courts, c)
	}
	return courts, nil
}

func (g *CatalogGateway) GetCourt(ctx context.Context, s shared.Session, courtID string) (*court.Court, error) {
	var row courtModel
	if err := g.client.do(ctx, s, http.MethodGet, "/courts/"+url.PathEscape(courtID), nil, nil, &row); err != nil {
		return nil, err
	}
	c, err := toCourt(row)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed court from backend", err, infra.KindUpstreamFailure)
	}
	return c, nil
}

func (g *CatalogGateway) ListServices(ctx context.Context, s shared.Session) ([]*addon.Service, error) {
	var rows []serviceModel
	if err := g.client.do(ctx, s, http.MethodGet, "/services", nil, nil, &rows); err != nil {
		return nil, err
	}

	services := make([]*addon.Service, 0, len(rows))
	for _, row := range rows {
		svc, err := addon.NewService(row.ID, row.Name, row.Description, row.Price, row.Category)
		if err != nil {
			slog.Warn("skipping malformed service", "serviceId", row.ID, "error", err)
			continue
		}
		services = append(services, svc)
	}
	return services, nil
}

// ListVouchers keeps vouchers with broken rules; the calculator treats them as ineligible.
func (g *CatalogGateway) ListVouchers(ctx context.Context, s shared.Session) ([]*voucher.Voucher, error) {
	var rows []voucherModel
	if err := g.client.do(ctx, s, http.MethodGet, "/vouchers", nil, nil, &rows); err != nil {
		return nil, err
	}

	vouchers := make([]*voucher.Voucher, 0, len(rows))
	for _, row := range rows {
		if _, err := voucher.NewCode(row.Code); err != nil {
			slog.Warn("skipping voucher without code", "voucherId", row.ID)
			continue
		}
		vouchers = append(vouchers, voucher.ReconstructVoucher(
			row.ID,
			row.Code,
			row.Name,
			row.Description,
			voucher.ParseDiscountType(row.DiscountType),
			row.DiscountValue,
			row.MinOrderAmount,
			row.MaxDiscount,
		))
	}
	return vouchers, nil
}

// toCourt treats an unknown status as maintenance so the court shows as unbookable.
func toCourt(row courtModel) (*court.Court, error) {
	status := court.Status(row.Status)
	if !status.IsValid() {
		status = court.StatusMaintenance
	}
	return court.NewCourt(row.ID, row.Name, row.Description, status)
}
