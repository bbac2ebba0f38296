package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rmoore2112/magi-calculator/internal/calculation"
	"github.com/rmoore2112/magi-calculator/internal/config"
	"github.com/rmoore2112/magi-calculator/internal/domain"
	"github.com/rmoore2112/magi-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "magicalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.String())
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "magicalc",
	Short: "MAGI and tax estimation CLI",
	Long:  "Calculates MAGI, federal and state income tax, quarterly estimated payments, and Roth conversion headroom from brokerage exports and declared income.",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run the full MAGI and tax analysis for a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewCalculationEngine()
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			engine.SetLogger(simpleCLILogger{})
		}
		result, err := engine.Calculate(configData)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("Unknown output format: %s (valid: console, json, csv)", outputFormat)
		}
		data, err := f.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		_, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Configuration file %s is valid\n", inputFile)
	},
}

var irmaaCmd = &cobra.Command{
	Use:   "irmaa [magi]",
	Short: "Look up the Medicare IRMAA tier for a MAGI amount",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		magi, err := decimal.NewFromString(args[0])
		if err != nil {
			log.Fatalf("Invalid MAGI amount %q: %v", args[0], err)
		}

		statusStr, _ := cmd.Flags().GetString("status")
		status, err := domain.ParseFilingStatus(statusStr)
		if err != nil {
			log.Fatal(err)
		}

		rules := calculation.NewTaxRules2025()
		tier := rules.IRMAATierFor(magi, status)
		fmt.Printf("Filing Status: %s\n", status.String())
		fmt.Printf("MAGI: %s\n", output.FormatCurrency(magi))
		fmt.Printf("IRMAA Tier: %s\n", tier)
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	irmaaCmd.Flags().StringP("status", "s", "single", "Filing status (single, married_filing_jointly, married_filing_separately, head_of_household, qualifying_widow)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(irmaaCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
