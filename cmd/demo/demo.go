package demo

import (
	"github.com/spf13/cobra"
)

// demoCmd represents the demo command
var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Mixed numeric kind arithmetic demonstrations",
}

func init() {
}
