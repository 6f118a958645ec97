package demo

import (
	"fmt"
	"io"

	"github.com/Manu343726/mezcla/pkg/numeric"
	"github.com/fatih/color"
)

// Per kind colors, integral results and floating results get different
// colors so mixed output is easy to scan
var (
	colorIntValue   = color.New(color.FgGreen)
	colorFloatValue = color.New(color.FgCyan)
	colorKind       = color.New(color.FgHiYellow)
)

type ConsoleSinkSettings struct {
	// Annotate every line with the kind of the printed value
	ShowKinds bool
	// Emit ANSI colors. Off also overrides the TTY detection done by the
	// color library, useful for golden transcripts
	Colored bool
}

// A Sink that writes one line per result to an io.Writer
type ConsoleSink struct {
	out      io.Writer
	settings ConsoleSinkSettings
}

func MakeConsoleSink(out io.Writer, settings ConsoleSinkSettings) *ConsoleSink {
	return &ConsoleSink{
		out:      out,
		settings: settings,
	}
}

func (s *ConsoleSink) PrintInt32(value int32) {
	s.print(numeric.Int32(value), colorIntValue)
}

func (s *ConsoleSink) PrintInt64(value int64) {
	s.print(numeric.Int64(value), colorIntValue)
}

func (s *ConsoleSink) PrintFloat32(value float32) {
	s.print(numeric.Float32(value), colorFloatValue)
}

func (s *ConsoleSink) PrintFloat64(value float64) {
	s.print(numeric.Float64(value), colorFloatValue)
}

func (s *ConsoleSink) print(value numeric.Value, valueColor *color.Color) {
	text := value.String()
	kind := value.Kind().String()

	if s.settings.Colored {
		text = valueColor.Sprint(text)
		kind = colorKind.Sprint(kind)
	}

	if s.settings.ShowKinds {
		fmt.Fprintf(s.out, "%s: %s\n", kind, text)
	} else {
		fmt.Fprintln(s.out, text)
	}
}
