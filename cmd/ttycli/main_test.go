package main

import (
	"bytes"
	"errors"
	"testing"
)

func stubListDevices(t *testing.T, devices []string, err error) {
	t.Helper()
	orig := listDevices
	listDevices = func() ([]string, error) { return devices, err }
	t.Cleanup(func() { listDevices = orig })
}

func TestListCmd_PrintsOneDevicePerLine(t *testing.T) {
	stubListDevices(t, []string{"/dev/ttyUSB0", "/dev/ttyUSB1"}, nil)

	var out bytes.Buffer
	listCmd.SetOut(&out)
	t.Cleanup(func() { listCmd.SetOut(nil) })

	if err := listCmd.RunE(listCmd, nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := "/dev/ttyUSB0\n/dev/ttyUSB1\n"
	if got := out.String(); got != want {
		t.Errorf("list output = %q, want %q", got, want)
	}
}

func TestListCmd_EmptySystemPrintsNothing(t *testing.T) {
	stubListDevices(t, nil, nil)

	var out bytes.Buffer
	listCmd.SetOut(&out)
	t.Cleanup(func() { listCmd.SetOut(nil) })

	if err := listCmd.RunE(listCmd, nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("list output = %q, want empty", out.String())
	}
}

func TestListCmd_PropagatesEnumerationFailure(t *testing.T) {
	cause := errors.New("udev unavailable")
	stubListDevices(t, nil, cause)

	if err := listCmd.RunE(listCmd, nil); !errors.Is(err, cause) {
		t.Errorf("list error = %v, want %v", err, cause)
	}
}
