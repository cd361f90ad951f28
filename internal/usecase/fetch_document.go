package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"portal-gateway/internal/domain"
	"portal-gateway/internal/soap"
)

// documentField is the response field carrying the base64-encoded invoice form.
const documentField = "EF_PDF"

// FetchDocument retrieves a customer invoice form and decodes the embedded
// base64 payload into a downloadable file.
type FetchDocument struct {
	remote domain.RemoteClient
	op     domain.Operation
	logger *slog.Logger
}

// NewFetchDocument creates the invoice-document usecase.
func NewFetchDocument(remote domain.RemoteClient, op domain.Operation, logger *slog.Logger) *FetchDocument {
	return &FetchDocument{remote: remote, op: op, logger: logger}
}

// Execute fetches the invoice form identified by customerID and documentID.
// An absent, empty, or undecodable payload field is a terminal fault, never an
// empty document.
func (uc *FetchDocument) Execute(ctx context.Context, customerID, documentID string) (*domain.Document, error) {
	if customerID == "" || documentID == "" {
		return nil, fmt.Errorf("%w: customer ID and document ID are required", domain.ErrInputMissing)
	}

	resp, err := uc.remote.Call(ctx, uc.op, []soap.Param{
		{Key: "IV_KUNNR", Value: customerID},
		{Key: "IV_VBELN", Value: documentID},
	})
	if err != nil {
		return nil, err
	}

	encoded := resp.Path(documentField).Text()
	if encoded == "" {
		return nil, fmt.Errorf("%w: %s field absent or empty", domain.ErrDocumentMissing, documentField)
	}

	// The ERP wraps base64 lines; strip whitespace before decoding.
	encoded = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, encoded)

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 payload: %w", domain.ErrDocumentMissing, err)
	}

	uc.logger.Info("invoice document decoded",
		"customer_id", customerID,
		"document_id", documentID,
		"bytes", len(data))

	return &domain.Document{
		Filename:    fmt.Sprintf("invoice_%s.pdf", documentID),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}
