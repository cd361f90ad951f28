package usecase

import (
	"context"
	"log/slog"

	"portal-gateway/internal/domain"
	"portal-gateway/internal/soap"
)

// FetchProfile retrieves the customer's master-data profile as a single flat
// record.
type FetchProfile struct {
	remote domain.RemoteClient
	op     domain.Operation
	logger *slog.Logger
}

// NewFetchProfile creates the profile usecase.
func NewFetchProfile(remote domain.RemoteClient, op domain.Operation, logger *slog.Logger) *FetchProfile {
	return &FetchProfile{remote: remote, op: op, logger: logger}
}

// Execute fetches the profile for the authenticated customer.
func (uc *FetchProfile) Execute(ctx context.Context, customerID string) (soap.Record, error) {
	resp, err := uc.remote.Call(ctx, uc.op, []soap.Param{
		{Key: "USER_ID", Value: customerID},
	})
	if err != nil {
		return nil, err
	}

	profile := resp.Fields()
	uc.logger.Debug("profile fetched", "customer_id", customerID, "fields", len(profile))
	return profile, nil
}
