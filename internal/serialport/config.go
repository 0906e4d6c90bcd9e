package serialport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.bug.st/serial"
)

const (
	// pollRateHz is how often the session loop polls the device.
	pollRateHz = 100

	// ReadTimeout is half the poll period, so one read plus one input
	// poll fits inside a single cycle.
	ReadTimeout = time.Second / pollRateHz / 2

	// ReadBufferSize is the chunk size for a single device read.
	ReadBufferSize = 512
)

// Parity is the parity bit setting of the serial line.
type Parity int

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// ParseParity parses a parity name, case-insensitively.
func ParseParity(s string) (Parity, error) {
	switch strings.ToLower(s) {
	case "none":
		return ParityNone, nil
	case "odd":
		return ParityOdd, nil
	case "even":
		return ParityEven, nil
	}
	return ParityNone, &ConfigError{Setting: "parity", Value: s}
}

func (p Parity) String() string {
	switch p {
	case ParityOdd:
		return "odd"
	case ParityEven:
		return "even"
	}
	return "none"
}

// letter is the conventional one-letter form used in "8N1" notation.
func (p Parity) letter() string {
	switch p {
	case ParityOdd:
		return "O"
	case ParityEven:
		return "E"
	}
	return "N"
}

// FlowControl is the flow control setting of the serial line.
type FlowControl int

const (
	FlowNone FlowControl = iota
	FlowSoftware
	FlowHardware
)

// ParseFlowControl parses a flow control name, case-insensitively.
func ParseFlowControl(s string) (FlowControl, error) {
	switch strings.ToLower(s) {
	case "none":
		return FlowNone, nil
	case "software":
		return FlowSoftware, nil
	case "hardware":
		return FlowHardware, nil
	}
	return FlowNone, &ConfigError{Setting: "flow control", Value: s}
}

func (f FlowControl) String() string {
	switch f {
	case FlowSoftware:
		return "software"
	case FlowHardware:
		return "hardware"
	}
	return "none"
}

// Config is the serial line configuration. Stop bits are fixed at one.
type Config struct {
	BaudRate    int
	DataBits    int
	Parity      Parity
	FlowControl FlowControl
}

// DefaultConfig matches the CLI defaults: 115200 8N1, no flow control.
func DefaultConfig() Config {
	return Config{BaudRate: 115200, DataBits: 8}
}

// Validate checks the configuration. It runs before any device I/O,
// so a bad setting never touches the device.
func (c Config) Validate() error {
	switch c.DataBits {
	case 5, 6, 7, 8:
	default:
		return &ConfigError{Setting: "data bits", Value: strconv.Itoa(c.DataBits)}
	}
	if c.BaudRate <= 0 {
		return &ConfigError{Setting: "baud rate", Value: strconv.Itoa(c.BaudRate)}
	}
	return nil
}

// Describe renders the line settings in the conventional short form,
// e.g. "115200 8N1".
func (c Config) Describe() string {
	return fmt.Sprintf("%d %d%s1", c.BaudRate, c.DataBits, c.Parity.letter())
}

func (c Config) mode() *serial.Mode {
	m := &serial.Mode{
		BaudRate: c.BaudRate,
		DataBits: c.DataBits,
		StopBits: serial.OneStopBit,
		Parity:   serial.NoParity,
	}
	switch c.Parity {
	case ParityOdd:
		m.Parity = serial.OddParity
	case ParityEven:
		m.Parity = serial.EvenParity
	}
	return m
}
