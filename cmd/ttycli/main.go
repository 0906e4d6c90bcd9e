package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studiowebux/ttycli/internal/logging"
	"github.com/studiowebux/ttycli/internal/serialport"
	"github.com/studiowebux/ttycli/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ttycli",
	Short: "Interactive terminal for serial TTY devices",
	Long: `ttycli is an interactive terminal for serial TTY devices.

Opening a device drops you into a raw session: everything the device
prints appears on screen, and every key you press is sent to it.
Press Ctrl+T to enter command mode, then:

  q   quit the session
  s   send a file (prompts for a path)
  r   receive a file

Examples:
  ttycli list                                  # Show available devices
  ttycli open /dev/ttyUSB0                     # 115200 8N1
  ttycli open /dev/ttyUSB0 -b 9600 -d 7 -p even
  ttycli open /dev/ttyACM0 --log-file tty.log --log-level debug`,
	Version: version,
}

var openCmd = &cobra.Command{
	Use:   "open <device>",
	Short: "Open an interactive session on a serial device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOpen(args[0])
	},
}

// listDevices is the enumerator behind the list command, swappable
// for tests.
var listDevices = serialport.List

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List serial devices present on the system",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := listDevices()
		if err != nil {
			return err
		}
		for _, device := range devices {
			fmt.Fprintln(cmd.OutOrStdout(), device)
		}
		return nil
	},
}

// Flags for the open command
var (
	flagBaudRate    uint32
	flagDataBits    uint8
	flagFlowControl string
	flagParity      string
	flagLogFile     string
	flagLogLevel    string
)

func init() {
	openCmd.Flags().Uint32VarP(&flagBaudRate, "baud-rate", "b", 115200, "Baud rate")
	openCmd.Flags().Uint8VarP(&flagDataBits, "data-bits", "d", 8, "Data bits (5, 6, 7 or 8)")
	openCmd.Flags().StringVarP(&flagFlowControl, "flow-control", "f", "none", "Flow control (none/software/hardware)")
	openCmd.Flags().StringVarP(&flagParity, "parity", "p", "none", "Parity (none/odd/even)")
	openCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
	openCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug/info/warn/error)")

	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(listCmd)
}

// runOpen validates the line configuration, opens the device and hands
// it to the session. Configuration errors are reported before any
// device I/O happens.
func runOpen(device string) error {
	parity, err := serialport.ParseParity(flagParity)
	if err != nil {
		return err
	}
	flow, err := serialport.ParseFlowControl(flagFlowControl)
	if err != nil {
		return err
	}
	cfg := serialport.Config{
		BaudRate:    int(flagBaudRate),
		DataBits:    int(flagDataBits),
		Parity:      parity,
		FlowControl: flow,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	port, err := serialport.Open(device, cfg, log)
	if err != nil {
		return err
	}
	defer port.Close()

	return tui.Run(port, device, cfg, log)
}
