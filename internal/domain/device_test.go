package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-car-care/internal/domain"
)

func TestNewDeviceSuccess(t *testing.T) {
	tests := []struct {
		name      string
		deviceID  string
		pushToken string
	}{
		{
			name:      "valid device",
			deviceID:  "device-123",
			pushToken: "fcm-token-abc",
		},
		{
			name:      "minimal values",
			deviceID:  "a",
			pushToken: "b",
		},
		{
			name:      "token with colons",
			deviceID:  "device_123-abc",
			pushToken: "token:with:colons",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device, err := domain.NewDevice(tt.deviceID, tt.pushToken)

			assert.NoError(t, err)
			assert.Equal(t, tt.deviceID, device.DeviceID())
			assert.Equal(t, tt.pushToken, device.PushToken())
		})
	}
}

func TestNewDeviceError(t *testing.T) {
	tests := []struct {
		name        string
		deviceID    string
		pushToken   string
		expectedErr error
	}{
		{
			name:        "empty device ID",
			deviceID:    "",
			pushToken:   "valid-token",
			expectedErr: domain.ErrEmptyDeviceID,
		},
		{
			name:        "empty push token",
			deviceID:    "valid-device",
			pushToken:   "",
			expectedErr: domain.ErrEmptyPushToken,
		},
		{
			name:        "both empty - device ID checked first",
			deviceID:    "",
			pushToken:   "",
			expectedErr: domain.ErrEmptyDeviceID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewDevice(tt.deviceID, tt.pushToken)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestNewDevicesSuccess(t *testing.T) {
	a, err := domain.NewDevice("device-a", "token-a")
	require.NoError(t, err)
	b, err := domain.NewDevice("device-b", "token-b")
	require.NoError(t, err)

	tests := []struct {
		name           string
		devices        []domain.Device
		expectedTokens []string
	}{
		{
			name:           "no devices",
			devices:        nil,
			expectedTokens: []string{},
		},
		{
			name:           "two devices",
			devices:        []domain.Device{a, b},
			expectedTokens: []string{"token-a", "token-b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			devices, err := domain.NewDevices(tt.devices)

			require.NoError(t, err)
			assert.Equal(t, len(tt.devices), devices.Count())
			assert.Equal(t, tt.expectedTokens, devices.PushTokens())
		})
	}
}

func TestNewDevicesError(t *testing.T) {
	a, err := domain.NewDevice("device-a", "token-a")
	require.NoError(t, err)
	dup, err := domain.NewDevice("device-a", "token-other")
	require.NoError(t, err)

	_, err = domain.NewDevices([]domain.Device{a, dup})

	assert.ErrorIs(t, err, domain.ErrDuplicateDevice)
}
