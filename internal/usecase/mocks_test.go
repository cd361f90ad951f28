package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portal-gateway/internal/domain"
	"portal-gateway/internal/soap"
)

// MockRemoteClient is a testify mock for domain.RemoteClient.
type MockRemoteClient struct {
	mock.Mock
}

func (m *MockRemoteClient) Call(ctx context.Context, op domain.Operation, params []soap.Param) (*soap.Node, error) {
	args := m.Called(ctx, op, params)
	if node := args.Get(0); node != nil {
		return node.(*soap.Node), args.Error(1)
	}
	return nil, args.Error(1)
}

// responseNode decodes a synthetic envelope and returns the named response
// element, mirroring what the gateway hands to the usecases.
func responseNode(t *testing.T, xml, element string) *soap.Node {
	t.Helper()
	body, err := soap.Decode([]byte(xml))
	require.NoError(t, err)
	node := body.Child(element)
	require.NotNil(t, node)
	return node
}
