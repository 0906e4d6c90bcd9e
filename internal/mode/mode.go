// Package mode implements the session state machine.
//
// The state machine is pure: transitions take a key event and return
// the next mode plus the bytes (if any) to send to the device. All
// terminal and serial I/O lives in the session driver.
package mode

// Mode identifies the current session state.
type Mode int

const (
	// WaitingInput forwards key presses to the device.
	WaitingInput Mode = iota
	// WaitingCommand is entered by Ctrl+T and interprets the next key.
	WaitingCommand
	// SendingFile prompts for a file to send.
	SendingFile
	// ReceivingFile is the receive-transfer state.
	ReceivingFile
	// Exit terminates the session.
	Exit
)

func (m Mode) String() string {
	switch m {
	case WaitingInput:
		return "input"
	case WaitingCommand:
		return "command"
	case SendingFile:
		return "send-file"
	case ReceivingFile:
		return "receive-file"
	case Exit:
		return "exit"
	}
	return "unknown"
}

// Transition is the result of feeding a key press to the state machine.
// Send holds the bytes to write to the device, nil when nothing is sent.
type Transition struct {
	Next Mode
	Send []byte
}

// HandleInput processes a key press while in WaitingInput.
// Ctrl+T arms the command chord; every other key press is encoded and
// forwarded (keys with no device encoding are dropped).
func HandleInput(ev KeyEvent) Transition {
	if ev.Ctrl && ev.Key == KeyRune && ev.Rune == 't' {
		return Transition{Next: WaitingCommand}
	}
	return Transition{Next: WaitingInput, Send: Encode(ev)}
}

// HandleCommand processes the key press following the Ctrl+T chord.
// The command key is consumed; it is never forwarded to the device.
// Unknown commands and modified keys fall back to WaitingInput.
func HandleCommand(ev KeyEvent) Transition {
	if ev.Ctrl || ev.Key != KeyRune {
		return Transition{Next: WaitingInput}
	}
	switch ev.Rune {
	case 'q':
		return Transition{Next: Exit}
	case 's':
		return Transition{Next: SendingFile}
	case 'r':
		return Transition{Next: ReceivingFile}
	}
	return Transition{Next: WaitingInput}
}
