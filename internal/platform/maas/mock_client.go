package maas

import "context"

// MockClient is a mock implementation of Client for tests.
type MockClient struct {
	ReadMachineFunc   func(ctx context.Context, systemID string) (Status, error)
	CreateMachineFunc func(ctx context.Context, spec MachineSpec) (string, error)
	UpdateMachineFunc func(ctx context.Context, systemID, userData string) error
	DeployMachineFunc func(ctx context.Context, systemID string) error
}

// Ensure interface compliance.
var _ Client = (*MockClient)(nil)

// ReadMachine mocks a status read.
func (m *MockClient) ReadMachine(ctx context.Context, systemID string) (Status, error) {
	if m.ReadMachineFunc != nil {
		return m.ReadMachineFunc(ctx, systemID)
	}
	return StatusReady, nil
}

// CreateMachine mocks machine registration.
func (m *MockClient) CreateMachine(ctx context.Context, spec MachineSpec) (string, error) {
	if m.CreateMachineFunc != nil {
		return m.CreateMachineFunc(ctx, spec)
	}
	return "mock-id", nil
}

// UpdateMachine mocks a user-data update.
func (m *MockClient) UpdateMachine(ctx context.Context, systemID, userData string) error {
	if m.UpdateMachineFunc != nil {
		return m.UpdateMachineFunc(ctx, systemID, userData)
	}
	return nil
}

// DeployMachine mocks a deployment trigger.
func (m *MockClient) DeployMachine(ctx context.Context, systemID string) error {
	if m.DeployMachineFunc != nil {
		return m.DeployMachineFunc(ctx, systemID)
	}
	return nil
}
