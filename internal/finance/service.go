package finance

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edutorres-dev/BellaVitta/internal/orders"
	"github.com/edutorres-dev/BellaVitta/pkg/db/models"
	"github.com/edutorres-dev/BellaVitta/pkg/enums"
	pkgerrors "github.com/edutorres-dev/BellaVitta/pkg/errors"
	"github.com/edutorres-dev/BellaVitta/pkg/logger"
	"github.com/edutorres-dev/BellaVitta/pkg/money"
)

var monthLabels = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

type orderSource interface {
	ListWindow(ctx context.Context, from, to time.Time) ([]models.Order, error)
}

// Filters narrows the report window. Year defaults to the current year;
// Month and Day are optional, and Day requires Month.
type Filters struct {
	Year  int
	Month int
	Day   int
}

// Service builds the admin sales report.
type Service interface {
	Summary(ctx context.Context, filters Filters) (*Summary, error)
}

type service struct {
	source orderSource
	logg   *logger.Logger
	now    func() time.Time
}

// NewService builds the finance reporting service.
func NewService(source orderSource, logg *logger.Logger) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("order source required")
	}
	return &service{source: source, logg: logg, now: time.Now}, nil
}

// Summary aggregates delivered orders inside the filter window: revenue,
// items sold, totals per payment method, the ten best-selling flavors, and
// an items-sold series per month (year view) or per day (month view). The
// series ignores the day filter so the chart always shows the full month.
func (s *service) Summary(ctx context.Context, filters Filters) (*Summary, error) {
	if filters.Year == 0 {
		filters.Year = s.now().Year()
	}
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	yearStart := time.Date(filters.Year, time.January, 1, 0, 0, 0, 0, time.Local)
	all, err := s.source.ListWindow(ctx, yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "consultando pedidos")
	}

	summary := &Summary{
		Year:    filters.Year,
		Month:   filters.Month,
		Day:     filters.Day,
		Revenue: money.Format(decimal.Zero),
	}

	revenue := decimal.Zero
	byPayment := map[enums.PaymentMethod]decimal.Decimal{}
	byFlavor := map[string]int{}
	series := newSeries(filters)

	for _, order := range all {
		if order.Status != enums.OrderStatusDelivered {
			continue
		}

		items, err := orders.Parse(order.Description)
		if err != nil {
			if s.logg != nil {
				s.logg.Warn(s.logg.WithOrderID(ctx, order.ID.String()), "finance.unparseable_description")
			}
			items = nil
		}

		series.add(order.OrderedAt, items)

		if !inWindow(order.OrderedAt, filters) {
			continue
		}

		revenue = revenue.Add(order.Total)
		byPayment[order.PaymentMethod] = byPayment[order.PaymentMethod].Add(order.Total)
		for _, item := range items {
			summary.ItemsSold += item.Qty
			byFlavor[item.Flavor] += item.Qty
		}
	}

	summary.Revenue = money.Format(revenue)
	summary.ByPayment = rankPayments(byPayment)
	summary.TopFlavors = rankFlavors(byFlavor)
	summary.Series = series.points()
	return summary, nil
}

func validateFilters(filters Filters) error {
	details := map[string]string{}
	if filters.Year < 2000 || filters.Year > 9999 {
		details["ano"] = "informe um ano com 4 dígitos"
	}
	if filters.Month < 0 || filters.Month > 12 {
		details["mes"] = "informe um mês entre 1 e 12"
	}
	if filters.Day != 0 {
		if filters.Month == 0 {
			details["dia"] = "o filtro de dia exige um mês"
		} else if filters.Day < 1 || filters.Day > daysInMonth(filters.Year, filters.Month) {
			details["dia"] = "dia inexistente para o mês informado"
		}
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "filtros inválidos").WithDetails(details)
	}
	return nil
}

func inWindow(at time.Time, filters Filters) bool {
	if filters.Month != 0 && int(at.Month()) != filters.Month {
		return false
	}
	if filters.Day != 0 && at.Day() != filters.Day {
		return false
	}
	return true
}

func rankPayments(totals map[enums.PaymentMethod]decimal.Decimal) []PaymentSlice {
	slices := make([]PaymentSlice, 0, len(totals))
	for method, total := range totals {
		slices = append(slices, PaymentSlice{Method: method, Total: money.Format(total), raw: total})
	}
	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].raw.Equal(slices[j].raw) {
			return slices[i].raw.GreaterThan(slices[j].raw)
		}
		return slices[i].Method < slices[j].Method
	})
	return slices
}

func rankFlavors(quantities map[string]int) []FlavorSlice {
	slices := make([]FlavorSlice, 0, len(quantities))
	for flavor, qty := range quantities {
		slices = append(slices, FlavorSlice{Flavor: flavor, Qty: qty})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Qty != slices[j].Qty {
			return slices[i].Qty > slices[j].Qty
		}
		return slices[i].Flavor < slices[j].Flavor
	})
	if len(slices) > 10 {
		slices = slices[:10]
	}
	return slices
}

// itemSeries accumulates items sold per month of the year, or per day of the
// filtered month.
type itemSeries struct {
	month   int
	buckets []int
}

func newSeries(filters Filters) *itemSeries {
	if filters.Month != 0 {
		return &itemSeries{month: filters.Month, buckets: make([]int, daysInMonth(filters.Year, filters.Month))}
	}
	return &itemSeries{buckets: make([]int, 12)}
}

func (s *itemSeries) add(at time.Time, items []orders.Item) {
	qty := 0
	for _, item := range items {
		qty += item.Qty
	}
	if s.month != 0 {
		if int(at.Month()) == s.month {
			s.buckets[at.Day()-1] += qty
		}
		return
	}
	s.buckets[int(at.Month())-1] += qty
}

func (s *itemSeries) points() []SeriesPoint {
	points := make([]SeriesPoint, len(s.buckets))
	for i, qty := range s.buckets {
		label := monthLabels[i%12]
		if s.month != 0 {
			label = strconv.Itoa(i + 1)
		}
		points[i] = SeriesPoint{Label: label, Items: qty}
	}
	return points
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
