package usecase

import (
	"context"
	"log/slog"

	"portal-gateway/internal/domain"
	"portal-gateway/internal/soap"
)

// itemElement is the repeated row element inside the ERP's table structures.
const itemElement = "item"

// RecordQuery describes one read capability: the remote operation, the
// parameter carrying the principal, and the table field holding the rows.
type RecordQuery struct {
	Op         domain.Operation
	ParamKey   string
	TableField string
}

// FetchRecords executes a record-collection read for an authenticated
// customer and normalizes the result regardless of how the remote service
// encoded cardinality.
type FetchRecords struct {
	remote domain.RemoteClient
	logger *slog.Logger
}

// NewFetchRecords creates the record-collection usecase.
func NewFetchRecords(remote domain.RemoteClient, logger *slog.Logger) *FetchRecords {
	return &FetchRecords{remote: remote, logger: logger}
}

// Execute calls the remote operation for the customer and returns the
// normalized, order-preserving record sequence. The result is never nil.
func (uc *FetchRecords) Execute(ctx context.Context, q RecordQuery, customerID string) ([]soap.Record, error) {
	resp, err := uc.remote.Call(ctx, q.Op, []soap.Param{
		{Key: q.ParamKey, Value: customerID},
	})
	if err != nil {
		return nil, err
	}

	records := soap.NormalizeField(resp, q.TableField, itemElement)
	uc.logger.Debug("records fetched",
		"operation", q.Op.Name,
		"customer_id", customerID,
		"count", len(records))
	return records, nil
}
