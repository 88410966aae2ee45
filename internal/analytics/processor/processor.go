package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-server/internal/clients/redis"
	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"

	"github.com/google/uuid"
)

// ClickStore defines the event-store operations required by AnalyticsProcessor
type ClickStore interface {
	IncrementClick(ctx context.Context, productID, vendorID uuid.UUID, day time.Time, button store.ButtonKind) error
	ListClickBuckets(ctx context.Context, vendorID uuid.UUID, from, to time.Time) ([]store.ClickBucket, error)
	TopProductsByTraffic(ctx context.Context, vendorID uuid.UUID, day time.Time, limit int) ([]store.ProductTrafficResult, error)
}

// ProductLookup resolves the owning vendor of a product. Products are
// owned by the catalog; ingestion only reads them.
type ProductLookup interface {
	GetProductVendorID(ctx context.Context, productID uuid.UUID) (uuid.UUID, error)
}

var (
	ErrInvalidButton   = errors.New("unrecognized button name")
	ErrProductNotFound = errors.New("product not found")
	ErrNoData          = errors.New("no click data for date")
)

// defaultTopProductsLimit applies when the caller does not ask for a
// specific ranking size.
const defaultTopProductsLimit = 5

// windowCacheTTL bounds how stale a cached week/month roll-up may be.
const windowCacheTTL = 60 * time.Second

type AnalyticsProcessor struct {
	store    ClickStore
	products ProductLookup
	cache    *redis.Client
	logger   *observability.Logger
	now      func() time.Time
}

func New(clickStore ClickStore, products ProductLookup, cache *redis.Client, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:    clickStore,
		products: products,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// parseButton maps a request button name to its storage counter kind.
func parseButton(buttonName string) (store.ButtonKind, error) {
	switch store.ButtonKind(buttonName) {
	case store.ButtonShare, store.ButtonWhatsapp, store.ButtonCall, store.ButtonProfile, store.ButtonEnquire:
		return store.ButtonKind(buttonName), nil
	default:
		return "", ErrInvalidButton
	}
}

// RecordClick applies one click event to today's bucket for the product.
// The button name is validated before anything is touched, so a bad name
// never creates or mutates a bucket.
func (p *AnalyticsProcessor) RecordClick(ctx context.Context, productID uuid.UUID, buttonName string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "product_id", Value: productID.String()},
		observability.Field{Key: "button", Value: buttonName},
	)

	button, err := parseButton(buttonName)
	if err != nil {
		return err
	}

	vendorID, err := p.products.GetProductVendorID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to resolve product vendor", err)
		return err
	}

	day := truncateDay(p.now())
	if err := p.store.IncrementClick(ctx, productID, vendorID, day, button); err != nil {
		p.logger.Error(ctx, "failed to record click", err)
		return err
	}
	return nil
}

// GetDataForDate returns the flat counter totals across all of a vendor's
// products on a single day. Zero matching buckets is reported as ErrNoData;
// the windowed queries treat the same situation as legitimate zero data.
func (p *AnalyticsProcessor) GetDataForDate(ctx context.Context, vendorID uuid.UUID, date time.Time) (DayTotals, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "vendor_id", Value: vendorID.String()},
	)

	day := truncateDay(date)
	buckets, err := p.store.ListClickBuckets(ctx, vendorID, day, day)
	if err != nil {
		p.logger.Error(ctx, "failed to list click buckets for date", err)
		return DayTotals{}, err
	}
	if len(buckets) == 0 {
		return DayTotals{}, ErrNoData
	}

	totals := sumBucketsByDay(buckets)
	return totals[day.Format(isoDateFormat)], nil
}

// GetDataForWeek returns 7 DayPoints covering [date, date+6], each compared
// against the same offset in the preceding 7 days.
func (p *AnalyticsProcessor) GetDataForWeek(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]DayPoint, error) {
	return p.aggregateWindow(ctx, vendorID, weekWindow(date), "week")
}

// GetDataForMonth returns one DayPoint per day of the calendar month
// containing date, compared against the prior month by offset. Offsets the
// prior month does not have come back with zero prev fields.
func (p *AnalyticsProcessor) GetDataForMonth(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]DayPoint, error) {
	return p.aggregateWindow(ctx, vendorID, monthWindow(date), "month")
}

// aggregateWindow is the single range-aggregation routine behind the week
// and month queries. It reads the previous and current ranges in one store
// call and pairs days by offset within the window.
func (p *AnalyticsProcessor) aggregateWindow(ctx context.Context, vendorID uuid.UUID, w window, kind string) ([]DayPoint, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "vendor_id", Value: vendorID.String()},
		observability.Field{Key: "window", Value: kind},
	)

	cacheKey := fmt.Sprintf("analytics:%s:%s:%s", kind, vendorID, w.start.Format(isoDateFormat))
	if points, ok := p.cachedDayPoints(ctx, cacheKey); ok {
		return points, nil
	}

	end := w.start.AddDate(0, 0, w.length-1)
	buckets, err := p.store.ListClickBuckets(ctx, vendorID, w.prevStart, end)
	if err != nil {
		p.logger.Error(ctx, "failed to list click buckets for window", err)
		return nil, err
	}

	points := buildDayPoints(w, sumBucketsByDay(buckets))
	p.storeDayPoints(ctx, cacheKey, points)
	return points, nil
}

// TopProducts ranks a vendor's products by combined click volume on one day,
// descending, ties broken by ascending product id. A day with no buckets
// yields an empty list, not an error.
func (p *AnalyticsProcessor) TopProducts(ctx context.Context, vendorID uuid.UUID, date time.Time, limit int) ([]store.ProductTrafficResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "vendor_id", Value: vendorID.String()},
	)

	if limit <= 0 {
		limit = defaultTopProductsLimit
	}

	results, err := p.store.TopProductsByTraffic(ctx, vendorID, truncateDay(date), limit)
	if err != nil {
		p.logger.Error(ctx, "failed to rank top products", err)
		return nil, err
	}
	if results == nil {
		results = []store.ProductTrafficResult{}
	}
	return results, nil
}

// cachedDayPoints returns a cached window roll-up if Redis is enabled and
// holds a fresh entry. Cache failures only cost a store round-trip.
func (p *AnalyticsProcessor) cachedDayPoints(ctx context.Context, key string) ([]DayPoint, bool) {
	if !p.cache.IsEnabled() {
		return nil, false
	}
	payload, err := p.cache.Get(ctx, key)
	if err != nil {
		if !redis.IsNotFound(err) {
			p.logger.Warn(ctx, "failed to read window cache",
				observability.Field{Key: "cache_key", Value: key})
		}
		return nil, false
	}
	var points []DayPoint
	if err := json.Unmarshal([]byte(payload), &points); err != nil {
		p.logger.Warn(ctx, "failed to decode cached window",
			observability.Field{Key: "cache_key", Value: key})
		return nil, false
	}
	return points, true
}

func (p *AnalyticsProcessor) storeDayPoints(ctx context.Context, key string, points []DayPoint) {
	if !p.cache.IsEnabled() {
		return
	}
	payload, err := json.Marshal(points)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, key, payload, windowCacheTTL); err != nil {
		p.logger.Warn(ctx, "failed to write window cache",
			observability.Field{Key: "cache_key", Value: key})
	}
}
