package demo

import (
	"fmt"
	"os"

	"github.com/Manu343726/mezcla/pkg/numeric"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	kindsFormat string
	kindsFilter string
)

var colorTableHeader = color.New(color.FgWhite, color.Bold, color.Underline)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Show the numeric kinds and their promotion table",
	Long: `Prints the primitive numeric kinds known to the demonstrations (width,
signedness, integral vs floating) and the result kind of an arithmetic
operation between every pair of kinds.

Example:
  mezcla demo kinds
  mezcla demo kinds --kind Int16
  mezcla demo kinds --format yaml`,
	Args: cobra.NoArgs,
	Run:  runKinds,
}

func init() {
	DemoCmd.AddCommand(kindsCmd)
	kindsCmd.Flags().StringVarP(&kindsFormat, "format", "f", "table", "Output format (table or yaml)")
	kindsCmd.Flags().StringVar(&kindsFilter, "kind", "", "Only show one kind and its promotions")
}

type kindInfo struct {
	Name    string `yaml:"name"`
	Bits    int    `yaml:"bits"`
	Integer bool   `yaml:"integer"`
	Signed  bool   `yaml:"signed"`
}

type promotionInfo struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Result string `yaml:"result"`
}

type kindsReport struct {
	Kinds      []kindInfo      `yaml:"kinds"`
	Promotions []promotionInfo `yaml:"promotions"`
}

func makeKindsReport(kinds []numeric.Kind) kindsReport {
	report := kindsReport{}

	for _, kind := range kinds {
		report.Kinds = append(report.Kinds, kindInfo{
			Name:    kind.String(),
			Bits:    kind.Bits(),
			Integer: kind.IsInteger(),
			Signed:  kind.IsSigned(),
		})

		for _, other := range numeric.Kinds() {
			report.Promotions = append(report.Promotions, promotionInfo{
				Left:   kind.String(),
				Right:  other.String(),
				Result: numeric.Promote(kind, other).String(),
			})
		}
	}

	return report
}

func runKinds(cmd *cobra.Command, args []string) {
	kinds := numeric.Kinds()

	if kindsFilter != "" {
		kind, err := numeric.ParseKind(kindsFilter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Known kinds: %v\n", kinds)
			os.Exit(1)
		}
		kinds = []numeric.Kind{kind}
	}

	report := makeKindsReport(kinds)

	switch kindsFormat {
	case "table":
		printKindsTable(report)
	case "yaml":
		encoded, err := yaml.Marshal(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			os.Exit(2)
		}
		os.Stdout.Write(encoded)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format '%s'\n", kindsFormat)
		fmt.Fprintln(os.Stderr, "Supported formats: table, yaml")
		os.Exit(1)
	}
}

func printKindsTable(report kindsReport) {
	colorTableHeader.Printf("%-10s %5s %8s %7s\n", "kind", "bits", "integer", "signed")
	for _, kind := range report.Kinds {
		fmt.Printf("%-10s %5d %8v %7v\n", kind.Name, kind.Bits, kind.Integer, kind.Signed)
	}

	fmt.Println()
	colorTableHeader.Printf("%-10s %-10s %s\n", "left", "right", "result")
	for _, promotion := range report.Promotions {
		fmt.Printf("%-10s %-10s %s\n", promotion.Left, promotion.Right, promotion.Result)
	}
}
