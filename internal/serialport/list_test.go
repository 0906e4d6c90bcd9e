package serialport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPortsList(t *testing.T, devices []string, err error) {
	t.Helper()
	orig := getPortsList
	getPortsList = func() ([]string, error) { return devices, err }
	t.Cleanup(func() { getPortsList = orig })
}

func TestList_ReturnsSortedNames(t *testing.T) {
	stubPortsList(t, []string{"/dev/ttyUSB1", "/dev/ttyACM0", "/dev/ttyUSB0"}, nil)

	got, err := List()
	require.NoError(t, err)
	assert.Equal(t, []string{"/dev/ttyACM0", "/dev/ttyUSB0", "/dev/ttyUSB1"}, got)
}

func TestList_EmptySystem(t *testing.T) {
	stubPortsList(t, nil, nil)

	got, err := List()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_EnumerationFailureIsDeviceError(t *testing.T) {
	cause := errors.New("udev unavailable")
	stubPortsList(t, nil, cause)

	_, err := List()

	var devErr *DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, "enumerate", devErr.Op)
	assert.ErrorIs(t, err, cause)
}
