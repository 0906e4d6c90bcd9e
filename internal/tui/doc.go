/*
Package tui implements the interactive serial session.

# Architecture

The session follows the Bubble Tea framework's Model-Update-View
pattern:
  - Model: session state (mode, received bytes, prompt, transport)
  - Update: processes key presses and serial messages
  - View: renders the output viewport plus a status or prompt line

# Event loop

Bubble Tea owns the terminal: raw mode and the alternate screen are
acquired once when the program starts and restored on every exit path.
Device output arrives through a polling tea.Cmd that reads the
transport with a short timeout and reposts itself; key presses arrive
as tea.KeyMsg and are dispatched by the current mode:

  - input: keys are encoded to device bytes and written to the
    transport; Ctrl+T arms the command chord
  - command: q quits, s opens the send-file prompt, r is the receive
    stub, anything else returns to input
  - send-file: a path prompt with Tab completion; transfers themselves
    are not implemented

The mode transitions and the key-to-byte encoding are pure functions
in the mode package, so they are testable without a terminal.
*/
package tui
