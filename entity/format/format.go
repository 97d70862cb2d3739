package format

import "fmt"

type Format int8

const (
	Text Format = iota
	JSON
	HTML
)

func UnmarshalText(text string) (Format, error) {
	switch text {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	case "html":
		return HTML, nil
	default:
		return 0, fmt.Errorf("invalid format: %q", text)
	}
}

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case HTML:
		return "html"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}
