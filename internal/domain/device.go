package domain

import "errors"

// Device is a push target registered by the mobile client.
type Device struct {
	deviceID  string
	pushToken string
}

var (
	ErrEmptyDeviceID   = errors.New("device ID cannot be empty")
	ErrEmptyPushToken  = errors.New("push token cannot be empty")
	ErrDuplicateDevice = errors.New("device registered more than once")
)

func NewDevice(deviceID, pushToken string) (Device, error) {
	if deviceID == "" {
		return Device{}, ErrEmptyDeviceID
	}

	if pushToken == "" {
		return Device{}, ErrEmptyPushToken
	}

	return Device{
		deviceID:  deviceID,
		pushToken: pushToken,
	}, nil
}

func (d Device) DeviceID() string {
	return d.deviceID
}

func (d Device) PushToken() string {
	return d.pushToken
}

func (d Device) Equals(other Device) bool {
	return d.deviceID == other.deviceID && d.pushToken == other.pushToken
}

// Devices may be empty: a reminder without devices is only visible in-app.
type Devices []Device

func NewDevices(devices []Device) (Devices, error) {
	seen := make(map[string]struct{}, len(devices))
	for _, d := range devices {
		if _, ok := seen[d.deviceID]; ok {
			return nil, ErrDuplicateDevice
		}

		seen[d.deviceID] = struct{}{}
	}

	return Devices(devices), nil
}

func (d Devices) ToSlice() []Device {
	return d
}

func (d Devices) Count() int {
	return len(d)
}

func (d Devices) PushTokens() []string {
	tokens := make([]string, 0, len(d))
	for _, device := range d {
		tokens = append(tokens, device.pushToken)
	}

	return tokens
}

func (d Devices) WithoutPushTokens(tokens []string) Devices {
	if len(tokens) == 0 {
		return d
	}

	drop := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		drop[t] = struct{}{}
	}

	kept := make(Devices, 0, len(d))
	for _, device := range d {
		if _, ok := drop[device.pushToken]; ok {
			continue
		}

		kept = append(kept, device)
	}

	return kept
}
