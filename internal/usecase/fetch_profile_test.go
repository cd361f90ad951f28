package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portal-gateway/internal/domain"
	"portal-gateway/internal/soap"
)

var detailsOp = domain.Operation{Name: "ZFM_CUST_DETAILS", Path: "/sap/bc/srt/scs/sap/zsd_cust_details_psr"}

func TestFetchProfile_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("flattens the response into a single record", func(t *testing.T) {
		envelope := `<Envelope><Body><ZFM_CUST_DETAILSResponse>
			<NAME1>ACME Industries</NAME1>
			<ORT01>Mumbai</ORT01>
			<STRAS>12 Dock Road</STRAS>
		</ZFM_CUST_DETAILSResponse></Body></Envelope>`

		remote := new(MockRemoteClient)
		remote.On("Call", mock.Anything, detailsOp, []soap.Param{{Key: "USER_ID", Value: "K901698"}}).
			Return(responseNode(t, envelope, "ZFM_CUST_DETAILSResponse"), nil)

		uc := NewFetchProfile(remote, detailsOp, slog.Default())
		profile, err := uc.Execute(ctx, "K901698")
		require.NoError(t, err)

		assert.Equal(t, soap.Record{
			"NAME1": "ACME Industries",
			"ORT01": "Mumbai",
			"STRAS": "12 Dock Road",
		}, profile)
		remote.AssertExpectations(t)
	})

	t.Run("empty response yields an empty record", func(t *testing.T) {
		envelope := `<Envelope><Body><ZFM_CUST_DETAILSResponse></ZFM_CUST_DETAILSResponse></Body></Envelope>`
		remote := new(MockRemoteClient)
		remote.On("Call", mock.Anything, detailsOp, mock.Anything).
			Return(responseNode(t, envelope, "ZFM_CUST_DETAILSResponse"), nil)

		uc := NewFetchProfile(remote, detailsOp, slog.Default())
		profile, err := uc.Execute(ctx, "K901698")
		require.NoError(t, err)
		assert.Empty(t, profile)
	})

	t.Run("remote failure propagates unchanged", func(t *testing.T) {
		remote := new(MockRemoteClient)
		remote.On("Call", mock.Anything, detailsOp, mock.Anything).
			Return(nil, domain.ErrRemoteUnreachable)

		uc := NewFetchProfile(remote, detailsOp, slog.Default())
		_, err := uc.Execute(ctx, "K901698")
		assert.ErrorIs(t, err, domain.ErrRemoteUnreachable)
	})
}
