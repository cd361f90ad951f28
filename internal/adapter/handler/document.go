package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"portal-gateway/internal/domain"
	"portal-gateway/internal/usecase"
)

// Document serves the invoice-document endpoint. Unlike the other protected
// routes, the customer and document identifiers come from the request body —
// the target document belongs to a specific transaction, not to the session.
type Document struct {
	uc *usecase.FetchDocument
}

// NewDocument creates the invoice-document handler.
func NewDocument(uc *usecase.FetchDocument) *Document {
	return &Document{uc: uc}
}

// invoiceDocumentRequest accepts both the REST field names and the raw ERP
// field names used by the original frontend.
type invoiceDocumentRequest struct {
	CustomerID string `json:"customerId"`
	DocumentID string `json:"documentId"`
	KUNNR      string `json:"KUNNR"`
	VBELN      string `json:"VBELN"`
}

func (r *invoiceDocumentRequest) customer() string {
	if r.CustomerID != "" {
		return r.CustomerID
	}
	return r.KUNNR
}

func (r *invoiceDocumentRequest) document() string {
	if r.DocumentID != "" {
		return r.DocumentID
	}
	return r.VBELN
}

// Handle streams the decoded invoice PDF as an attachment.
func (h *Document) Handle(c echo.Context) error {
	var req invoiceDocumentRequest
	if err := c.Bind(&req); err != nil {
		return mapDomainError(fmt.Errorf("%w: invalid request body", domain.ErrInputMissing))
	}

	doc, err := h.uc.Execute(c.Request().Context(), req.customer(), req.document())
	if err != nil {
		return mapDomainError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", doc.Filename))
	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}
