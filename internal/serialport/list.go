package serialport

import (
	"sort"

	"go.bug.st/serial"
)

// getPortsList is the device enumerator, swappable for tests.
var getPortsList = serial.GetPortsList

// List returns the names of serial devices present on the system,
// sorted for stable output.
func List() ([]string, error) {
	devices, err := getPortsList()
	if err != nil {
		return nil, &DeviceError{Op: "enumerate", Err: err}
	}
	sort.Strings(devices)
	return devices, nil
}
