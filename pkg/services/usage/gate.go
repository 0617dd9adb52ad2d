package usage

import "context"

// Category labels what kind of work is being reserved against the quota.
type Category string

const (
	CategoryScan  Category = "scan"
	CategoryGroup Category = "group"
)

// Gate is consulted before any scan work starts. A denied reservation is a
// hard stop; the caller must not begin the scan. The counter behind a gate is
// shared system-wide and incremented atomically per accepted scan.
type Gate interface {
	CheckAndReserve(ctx context.Context, accountID string, category Category) error
}
