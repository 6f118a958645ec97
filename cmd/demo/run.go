package demo

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Manu343726/mezcla/pkg/demo"
	"github.com/Manu343726/mezcla/pkg/numeric"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	runNoColor   bool
	runShowKinds bool
	runVerbose   bool
	runLogFile   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the arithmetic demonstration sequence",
	Long: `Runs the four demonstration routines in fixed order, printing each
result through the console sink matching its kind:

  - 16 bit signed + 16 bit char, narrowed back to 16 bits
  - 32 bit int + 32 bit float
  - 64 bit int - 32 bit int
  - 32 bit int + 64 bit float

The sequence takes no input and always produces the same four lines.

Example:
  mezcla demo run
  mezcla demo run --show-kinds --verbose`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	DemoCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoColor, "no-color", false, "Disable colored output")
	runCmd.Flags().BoolVarP(&runShowKinds, "show-kinds", "k", false, "Annotate each result with its numeric kind")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Log each sink call")
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "Also write logs to a file")

	viper.SetDefault("demo.show-kinds", false)
	viper.SetDefault("demo.no-color", false)
	viper.BindPFlag("demo.show-kinds", runCmd.Flags().Lookup("show-kinds"))
	viper.BindPFlag("demo.no-color", runCmd.Flags().Lookup("no-color"))
}

func runRun(cmd *cobra.Command, args []string) {
	logger, cleanup, err := makeLogger(runVerbose, runLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	settings := demo.ConsoleSinkSettings{
		ShowKinds: viper.GetBool("demo.show-kinds"),
		Colored:   !viper.GetBool("demo.no-color"),
	}

	logger.Debug("console sink configured",
		"showKinds", settings.ShowKinds,
		"colored", settings.Colored)

	var sink demo.Sink = demo.MakeConsoleSink(os.Stdout, settings)
	if runVerbose {
		sink = &loggedSink{next: sink, log: logger}
	}

	demo.Run(sink)
}

// makeLogger builds the slog logger for the command: text handler on
// stderr, fanned out to a log file when one is requested. The returned
// cleanup closes the file.
func makeLogger(verbose bool, logFile string) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	options := &slog.HandlerOptions{Level: level}
	handler := slog.Handler(slog.NewTextHandler(os.Stderr, options))
	cleanup := func() {}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}

		handler = slogmulti.Fanout(handler, slog.NewTextHandler(file, options))
		cleanup = func() { file.Close() }
	}

	return slog.New(handler), cleanup, nil
}

// loggedSink forwards every sink call to the next sink, logging the
// operation, the result kind and the raw bit pattern of the value
type loggedSink struct {
	next demo.Sink
	log  *slog.Logger
}

func (s *loggedSink) PrintInt32(value int32) {
	s.trace(numeric.Int32(value))
	s.next.PrintInt32(value)
}

func (s *loggedSink) PrintInt64(value int64) {
	s.trace(numeric.Int64(value))
	s.next.PrintInt64(value)
}

func (s *loggedSink) PrintFloat32(value float32) {
	s.trace(numeric.Float32(value))
	s.next.PrintFloat32(value)
}

func (s *loggedSink) PrintFloat64(value float64) {
	s.trace(numeric.Float64(value))
	s.next.PrintFloat64(value)
}

func (s *loggedSink) trace(value numeric.Value) {
	s.log.Debug("sink call",
		"kind", value.Kind().String(),
		"value", value.String(),
		"bits", fmt.Sprintf("0x%016X", value.Encode()))
}
