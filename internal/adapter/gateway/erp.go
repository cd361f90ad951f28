// Package gateway contains the outbound adapter for the ERP's XML remote
// procedure protocol. It implements domain.RemoteClient.
package gateway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portal-gateway/internal/domain"
	"portal-gateway/internal/soap"
)

const soapActionPrefix = "urn:sap-com:document:sap:rfc:functions:"

// Config carries the ERP connection settings. Credentials are the fixed
// service user; the end user's identity travels inside the envelope.
type Config struct {
	BaseURL  string
	Client   string // sap-client query parameter
	Username string
	Password string
	Timeout  time.Duration
}

// ERPGateway issues authenticated calls against the ERP service endpoints
// with tuned HTTP transport. Calls are attempted exactly once; retry policy
// belongs to the caller.
type ERPGateway struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewERPGateway creates a new ERP gateway.
func NewERPGateway(cfg Config, logger *slog.Logger) *ERPGateway {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	return &ERPGateway{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// endpointURL builds the full endpoint URL for an operation.
func (g *ERPGateway) endpointURL(op domain.Operation) string {
	u := strings.TrimSuffix(g.cfg.BaseURL, "/") + op.Path
	if g.cfg.Client != "" {
		u += "?sap-client=" + url.QueryEscape(g.cfg.Client)
	}
	return u
}

// Call encodes the envelope, posts it to the operation's endpoint and returns
// the decoded response element. Transport failures, transport-level auth
// failures and undecodable bodies surface as distinct domain errors.
func (g *ERPGateway) Call(ctx context.Context, op domain.Operation, params []soap.Param) (*soap.Node, error) {
	envelope := soap.Encode(op.Name, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpointURL(op), strings.NewReader(envelope))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteUnreachable, err)
	}
	req.Header.Set("Content-Type", "text/xml;charset=UTF-8")
	req.Header.Set("SOAPAction", soapActionPrefix+op.Name)
	req.SetBasicAuth(g.cfg.Username, g.cfg.Password)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("remote call failed", "operation", op.Name, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", domain.ErrRemoteUnreachable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: service credentials rejected", domain.ErrRemoteAuthRejected)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		g.logger.Error("remote returned error status",
			"operation", op.Name,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("%w: remote returned status %d", domain.ErrRemoteProtocolFault, resp.StatusCode)
	}

	bodyNode, err := soap.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteProtocolFault, err)
	}

	result := bodyNode.Child(op.ResponseElement())
	if result == nil {
		return nil, fmt.Errorf("%w: missing %s element", domain.ErrRemoteProtocolFault, op.ResponseElement())
	}
	return result, nil
}
