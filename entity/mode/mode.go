package mode

import "fmt"

// Mode selects how much of the determination is echoed in the text report.
type Mode uint8

const (
	Full Mode = iota
	Final
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "full", "":
		return Full, nil
	case "final":
		return Final, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}
