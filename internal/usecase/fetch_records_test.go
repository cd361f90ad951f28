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

var inquiryQuery = RecordQuery{
	Op:         domain.Operation{Name: "ZFM_INQUIRY_PSR", Path: "/sap/bc/srt/scs/sap/zfm_inquiry_psr"},
	ParamKey:   "USER_ID",
	TableField: "USER_INQUIRY_TABLE",
}

func TestFetchRecords_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the principal as the operation parameter", func(t *testing.T) {
		remote := new(MockRemoteClient)
		remote.On("Call", mock.Anything, inquiryQuery.Op,
			[]soap.Param{{Key: "USER_ID", Value: "K901698"}}).
			Return(responseNode(t, `<Envelope><Body><ZFM_INQUIRY_PSRResponse>
				<USER_INQUIRY_TABLE>
					<item><VBELN>10001</VBELN></item>
					<item><VBELN>10002</VBELN></item>
				</USER_INQUIRY_TABLE>
			</ZFM_INQUIRY_PSRResponse></Body></Envelope>`, "ZFM_INQUIRY_PSRResponse"), nil)

		uc := NewFetchRecords(remote, slog.Default())
		records, err := uc.Execute(ctx, inquiryQuery, "K901698")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "10001", records[0]["VBELN"])
		assert.Equal(t, "10002", records[1]["VBELN"])
		remote.AssertExpectations(t)
	})

	t.Run("single collapsed row comes back as a one-element collection", func(t *testing.T) {
		remote := new(MockRemoteClient)
		remote.On("Call", mock.Anything, inquiryQuery.Op, mock.Anything).
			Return(responseNode(t, `<Envelope><Body><ZFM_INQUIRY_PSRResponse>
				<USER_INQUIRY_TABLE>
					<item><VBELN>10001</VBELN></item>
				</USER_INQUIRY_TABLE>
			</ZFM_INQUIRY_PSRResponse></Body></Envelope>`, "ZFM_INQUIRY_PSRResponse"), nil)

		uc := NewFetchRecords(remote, slog.Default())
		records, err := uc.Execute(ctx, inquiryQuery, "K901698")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "10001", records[0]["VBELN"])
	})

	t.Run("table repeated per row keeps every sibling", func(t *testing.T) {
		remote := new(MockRemoteClient)
		remote.On("Call", mock.Anything, inquiryQuery.Op, mock.Anything).
			Return(responseNode(t, `<Envelope><Body><ZFM_INQUIRY_PSRResponse>
				<USER_INQUIRY_TABLE><VBELN>80001</VBELN></USER_INQUIRY_TABLE>
				<USER_INQUIRY_TABLE><VBELN>80002</VBELN></USER_INQUIRY_TABLE>
			</ZFM_INQUIRY_PSRResponse></Body></Envelope>`, "ZFM_INQUIRY_PSRResponse"), nil)

		uc := NewFetchRecords(remote, slog.Default())
		records, err := uc.Execute(ctx, inquiryQuery, "K901698")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "80001", records[0]["VBELN"])
		assert.Equal(t, "80002", records[1]["VBELN"])
	})

	t.Run("item rows without a table wrapper are still collected", func(t *testing.T) {
		remote := new(MockRemoteClient)
		remote.On("Call", mock.Anything, inquiryQuery.Op, mock.Anything).
			Return(responseNode(t, `<Envelope><Body><ZFM_INQUIRY_PSRResponse>
				<item><VBELN>80001</VBELN></item>
				<item><VBELN>80002</VBELN></item>
			</ZFM_INQUIRY_PSRResponse></Body></Envelope>`, "ZFM_INQUIRY_PSRResponse"), nil)

		uc := NewFetchRecords(remote, slog.Default())
		records, err := uc.Execute(ctx, inquiryQuery, "K901698")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "80001", records[0]["VBELN"])
	})

	t.Run("missing table yields an empty, non-nil collection", func(t *testing.T) {
		remote := new(MockRemoteClient)
		remote.On("Call", mock.Anything, inquiryQuery.Op, mock.Anything).
			Return(responseNode(t, `<Envelope><Body><ZFM_INQUIRY_PSRResponse>
				<RETURN_CODE>0</RETURN_CODE>
			</ZFM_INQUIRY_PSRResponse></Body></Envelope>`, "ZFM_INQUIRY_PSRResponse"), nil)

		uc := NewFetchRecords(remote, slog.Default())
		records, err := uc.Execute(ctx, inquiryQuery, "K901698")
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("remote failure propagates", func(t *testing.T) {
		remote := new(MockRemoteClient)
		remote.On("Call", mock.Anything, inquiryQuery.Op, mock.Anything).
			Return(nil, domain.ErrRemoteUnreachable)

		uc := NewFetchRecords(remote, slog.Default())
		_, err := uc.Execute(ctx, inquiryQuery, "K901698")
		assert.ErrorIs(t, err, domain.ErrRemoteUnreachable)
	})
}
