package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ButtonKind identifies which of the five tracked buttons a click hit.
type ButtonKind string

const (
	ButtonShare    ButtonKind = "share"
	ButtonWhatsapp ButtonKind = "whatsapp"
	ButtonCall     ButtonKind = "call"
	ButtonProfile  ButtonKind = "profile"
	ButtonEnquire  ButtonKind = "enquire"
)

// buttonColumns whitelists the counter column per button kind. Column names
// are interpolated into SQL and must never come from request input directly.
var buttonColumns = map[ButtonKind]string{
	ButtonShare:    "share_click",
	ButtonWhatsapp: "whatsapp_click",
	ButtonCall:     "call_click",
	ButtonProfile:  "profile_click",
	ButtonEnquire:  "enquire_click",
}

// ClickBucket is the per-(product, day) counter row. Vendor is denormalized
// from the product at bucket creation and never changes afterwards.
type ClickBucket struct {
	ID            uuid.UUID `db:"id"`
	ProductID     uuid.UUID `db:"product_id"`
	VendorID      uuid.UUID `db:"vendor_id"`
	Day           time.Time `db:"day"`
	ShareClick    int       `db:"share_click"`
	WhatsappClick int       `db:"whatsapp_click"`
	CallClick     int       `db:"call_click"`
	ProfileClick  int       `db:"profile_click"`
	EnquireClick  int       `db:"enquire_click"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// TotalTraffic sums all five counters of the bucket.
func (b ClickBucket) TotalTraffic() int {
	return b.ShareClick + b.WhatsappClick + b.CallClick + b.ProfileClick + b.EnquireClick
}

// ProductTrafficResult represents one entry of the top-products ranking
type ProductTrafficResult struct {
	ProductID    uuid.UUID `db:"product_id" json:"productId"`
	TotalTraffic int       `db:"total_traffic" json:"totalTraffic"`
}

const dayFormat = "2006-01-02"

// IncrementClick applies a single click event to the (product, day) bucket.
// The insert and the increment happen in one statement so concurrent events
// for the same key can never lose an update, and bucket creation is
// idempotent under concurrent first events.
func (s *Store) IncrementClick(ctx context.Context, productID, vendorID uuid.UUID, day time.Time, button ButtonKind) error {
	column, ok := buttonColumns[button]
	if !ok {
		return fmt.Errorf("unknown button kind %q", button)
	}

	query := fmt.Sprintf(`
INSERT INTO product_clicks (product_id, vendor_id, day, %s)
VALUES ($1, $2, $3, 1)
ON CONFLICT (product_id, day) DO UPDATE
SET %s = product_clicks.%s + 1,
    updated_at = now()
`, column, column, column)

	_, err := s.db.ExecContext(ctx, query, productID, vendorID, day.UTC().Format(dayFormat))
	if err != nil {
		s.logger.Error(ctx, "failed to increment click counter", err)
		return fmt.Errorf("failed to increment click counter: %w", err)
	}
	return nil
}

const sqlGetClickBucket = `
SELECT id, product_id, vendor_id, day, share_click, whatsapp_click, call_click, profile_click, enquire_click, created_at, updated_at
FROM product_clicks
WHERE product_id = $1 AND day = $2
`

// GetClickBucket retrieves the bucket for a (product, day) pair
func (s *Store) GetClickBucket(ctx context.Context, productID uuid.UUID, day time.Time) (ClickBucket, error) {
	var bucket ClickBucket
	err := s.db.GetContext(ctx, &bucket, sqlGetClickBucket, productID, day.UTC().Format(dayFormat))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClickBucket{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get click bucket", err)
		return ClickBucket{}, fmt.Errorf("failed to get click bucket: %w", err)
	}
	return bucket, nil
}

const sqlListClickBuckets = `
SELECT id, product_id, vendor_id, day, share_click, whatsapp_click, call_click, profile_click, enquire_click, created_at, updated_at
FROM product_clicks
WHERE vendor_id = $1 AND day >= $2 AND day <= $3
ORDER BY day ASC, product_id ASC
`

// ListClickBuckets retrieves every bucket of a vendor whose day falls in
// [from, to] inclusive. Days with no events simply have no rows.
func (s *Store) ListClickBuckets(ctx context.Context, vendorID uuid.UUID, from, to time.Time) ([]ClickBucket, error) {
	var buckets []ClickBucket
	err := s.db.SelectContext(ctx, &buckets, sqlListClickBuckets, vendorID,
		from.UTC().Format(dayFormat), to.UTC().Format(dayFormat))
	if err != nil {
		s.logger.Error(ctx, "failed to list click buckets", err)
		return nil, fmt.Errorf("failed to list click buckets: %w", err)
	}
	return buckets, nil
}

const sqlTopProductsByTraffic = `
SELECT
    product_id,
    (share_click + whatsapp_click + call_click + profile_click + enquire_click)::int AS total_traffic
FROM product_clicks
WHERE vendor_id = $1 AND day = $2
ORDER BY total_traffic DESC, product_id ASC
LIMIT $3
`

// TopProductsByTraffic ranks a vendor's products by combined click volume
// on a single day. Ties break on ascending product id so the order is
// deterministic.
func (s *Store) TopProductsByTraffic(ctx context.Context, vendorID uuid.UUID, day time.Time, limit int) ([]ProductTrafficResult, error) {
	var results []ProductTrafficResult
	err := s.db.SelectContext(ctx, &results, sqlTopProductsByTraffic, vendorID, day.UTC().Format(dayFormat), limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get top products by traffic", err)
		return nil, fmt.Errorf("failed to get top products by traffic: %w", err)
	}
	return results, nil
}
