package domain

// PrintMode selects which table a script prints once its steps are applied.
type PrintMode uint8

const (
	// PrintDefault defers to the caller's choice, which falls back to PrintValues.
	PrintDefault PrintMode = iota
	// PrintValues prints computed values.
	PrintValues
	// PrintTexts prints the raw cell texts.
	PrintTexts
	// PrintBoth prints texts followed by values.
	PrintBoth
	// PrintNone prints nothing.
	PrintNone
)

var printModeNames = map[string]PrintMode{
	"":       PrintDefault,
	"values": PrintValues,
	"texts":  PrintTexts,
	"both":   PrintBoth,
	"none":   PrintNone,
}

// ParsePrintMode maps a mode name to a PrintMode.
func ParsePrintMode(name string) (PrintMode, bool) {
	m, ok := printModeNames[name]
	return m, ok
}

func (m PrintMode) String() string {
	switch m {
	case PrintValues:
		return "values"
	case PrintTexts:
		return "texts"
	case PrintBoth:
		return "both"
	case PrintNone:
		return "none"
	default:
		return ""
	}
}

// Step is a single mutation applied to a sheet.
type Step struct {
	Cell  Position
	Text  string
	Clear bool
}

// Script is an ordered list of steps loaded from a file or the command line.
type Script struct {
	Name string
	Path string
	// Digest fingerprints the script source. It is empty for inline scripts.
	Digest string
	Steps  []Step
	Print  PrintMode
}
