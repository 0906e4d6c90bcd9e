// Package serialport wraps serial device access for the session loop:
// validated line configuration, timeout-based polling reads, full
// buffer writes and device enumeration.
package serialport

import (
	"io"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// Transport is the byte pipe the session drives. Read returns (0, nil)
// when the device produced nothing within the poll timeout; an error
// always means a real device fault.
type Transport interface {
	io.ReadWriteCloser
}

// Port is an open serial device.
type Port struct {
	device string
	port   serial.Port
	log    *zap.Logger
}

// Open validates cfg and opens the device. The read timeout is set to
// ReadTimeout so the session loop can poll without blocking forever.
func Open(device string, cfg Config, log *zap.Logger) (*Port, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.FlowControl != FlowNone {
		// go.bug.st/serial cannot express flow control settings.
		log.Warn("flow control not supported by the host driver, using none",
			zap.String("requested", cfg.FlowControl.String()))
	}

	p, err := serial.Open(device, cfg.mode())
	if err != nil {
		return nil, &DeviceError{Device: device, Op: "open", Err: err}
	}
	if err := p.SetReadTimeout(ReadTimeout); err != nil {
		p.Close()
		return nil, &DeviceError{Device: device, Op: "configure", Err: err}
	}

	log.Info("serial device opened",
		zap.String("device", device),
		zap.Int("baud_rate", cfg.BaudRate),
		zap.Int("data_bits", cfg.DataBits),
		zap.String("parity", cfg.Parity.String()))

	return &Port{device: device, port: p, log: log}, nil
}

// Read reads whatever the device produced within the poll timeout.
// A quiet device yields (0, nil).
func (p *Port) Read(buf []byte) (int, error) {
	n, err := p.port.Read(buf)
	if err != nil {
		return n, &DeviceError{Device: p.device, Op: "read", Err: err}
	}
	return n, nil
}

// Write sends the whole buffer, retrying short writes.
func (p *Port) Write(buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := p.port.Write(buf[total:])
		if err != nil {
			return total, &DeviceError{Device: p.device, Op: "write", Err: err}
		}
		total += n
	}
	return total, nil
}

// Close releases the device.
func (p *Port) Close() error {
	if err := p.port.Close(); err != nil {
		return &DeviceError{Device: p.device, Op: "close", Err: err}
	}
	p.log.Debug("serial device closed", zap.String("device", p.device))
	return nil
}
