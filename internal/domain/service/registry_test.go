package service

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/panex/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
	id       string
	category types.Category
}

func newMockProvider(id string) *mockProvider {
	return &mockProvider{id: id, category: types.CategoryFilesystem}
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     m.category,
		Capabilities: []string{"list"},
		Tools: []types.Tool{
			{ID: m.id + ".list", Name: "List", Returns: "array"},
			{ID: m.id + ".stat", Name: "Stat", Returns: "object"},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	return args.Get(0).(*types.Result), args.Error(1)
}

func TestRegister(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(newMockProvider("filesystem")))
	_, ok := r.Get("filesystem")
	assert.True(t, ok)

	assert.Error(t, r.Register(newMockProvider("filesystem")), "duplicate IDs are rejected")
	assert.Error(t, r.Register(newMockProvider("")))
	assert.Error(t, r.Register(newMockProvider("file.system")))
}

func TestListIsSorted(t *testing.T) {
	r := NewRegistry()
	sys := newMockProvider("system")
	sys.category = types.CategorySystem
	require.NoError(t, r.Register(sys))
	require.NoError(t, r.Register(newMockProvider("filesystem")))
	require.NoError(t, r.Register(newMockProvider("archive")))

	services := r.List(nil)
	require.Len(t, services, 3)
	assert.Equal(t, "archive", services[0].ID)
	assert.Equal(t, "filesystem", services[1].ID)
	assert.Equal(t, "system", services[2].ID)

	cat := types.CategorySystem
	filtered := r.List(&cat)
	require.Len(t, filtered, 1)
	assert.Equal(t, "system", filtered[0].ID)
}

func TestTool(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newMockProvider("filesystem")))

	tool, ok := r.Tool("filesystem.stat")
	require.True(t, ok)
	assert.Equal(t, "Stat", tool.Name)

	_, ok = r.Tool("filesystem.missing")
	assert.False(t, ok)
	_, ok = r.Tool("nodot")
	assert.False(t, ok)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	p := newMockProvider("filesystem")
	require.NoError(t, r.Register(p))

	ctx := context.Background()
	appCtx := &types.Context{RequestID: "req_1", Transport: "http"}
	params := map[string]interface{}{"path": "/tmp"}
	p.On("Execute", ctx, "filesystem.list", params, appCtx).
		Return(&types.Result{Success: true, Data: map[string]interface{}{"count": 0}}, nil)

	result, err := r.Execute(ctx, "filesystem.list", params, appCtx)
	require.NoError(t, err)
	assert.True(t, result.Success)
	p.AssertExpectations(t)
}

func TestExecuteNilParams(t *testing.T) {
	r := NewRegistry()
	p := newMockProvider("filesystem")
	require.NoError(t, r.Register(p))

	p.On("Execute", mock.Anything, "filesystem.list", map[string]interface{}{}, (*types.Context)(nil)).
		Return(&types.Result{Success: true}, nil)

	_, err := r.Execute(context.Background(), "filesystem.list", nil, nil)
	require.NoError(t, err)
	p.AssertExpectations(t)
}

func TestExecuteRoutingErrors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newMockProvider("filesystem")))

	tests := []struct {
		name     string
		toolID   string
		wantKind string
	}{
		{"no separator", "filesystem", KindInvalidTool},
		{"empty tool", "filesystem.", KindInvalidTool},
		{"unknown service", "network.ping", KindUnknownService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Execute(context.Background(), tt.toolID, nil, nil)
			require.Error(t, err)
			require.NotNil(t, result)
			assert.False(t, result.Success)
			assert.Equal(t, tt.wantKind, result.ErrorKind)
			require.NotNil(t, result.Error)
		})
	}
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newMockProvider("a")))
	require.NoError(t, r.Register(newMockProvider("b")))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 4, stats["total_tools"])
	assert.Equal(t, map[string]int{"filesystem": 2}, stats["categories"])
}
