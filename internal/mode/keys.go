package mode

// Key identifies a key on the host keyboard, independent of the
// terminal framework delivering it.
type Key int

const (
	// KeyRune is a printable character carried in KeyEvent.Rune.
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyEnd
	KeyHome
	KeyBackTab
	KeyInsert
	KeyDelete
	KeyPgUp
	KeyPgDown
)

// KeyEvent is a single key press. Ctrl marks the control modifier;
// other modifier combinations are never delivered to the state machine.
type KeyEvent struct {
	Key  Key
	Rune rune
	Ctrl bool
}

// Encode maps a key press to the byte sequence written to the device.
// Printable characters encode as UTF-8, named keys follow the VT
// sequences below. Control-modified keys (other than the Ctrl+T chord,
// which never reaches Encode) and unknown keys encode to nil.
func Encode(ev KeyEvent) []byte {
	if ev.Ctrl {
		return nil
	}
	switch ev.Key {
	case KeyRune:
		return []byte(string(ev.Rune))
	case KeyBackspace:
		return []byte{8}
	case KeyTab:
		return []byte{9}
	case KeyEnter:
		return []byte{10}
	case KeyEsc:
		return []byte{27}
	case KeyUp:
		return []byte{27, 91, 65}
	case KeyDown:
		return []byte{27, 91, 66}
	case KeyRight:
		return []byte{27, 91, 67}
	case KeyLeft:
		return []byte{27, 91, 68}
	case KeyEnd:
		return []byte{27, 91, 70}
	case KeyHome:
		return []byte{27, 91, 72}
	case KeyBackTab:
		return []byte{27, 91, 90}
	case KeyInsert:
		return []byte{27, 91, 50, 126}
	case KeyDelete:
		return []byte{27, 91, 51, 126}
	case KeyPgUp:
		return []byte{27, 91, 53, 126}
	case KeyPgDown:
		return []byte{27, 91, 54, 126}
	}
	return nil
}
