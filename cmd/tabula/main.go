// Command tabula inspects delimited data files using the tabula frame
// loader: schema inference, head previews, and per-column summaries.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabula/pkg/frame"
	"github.com/ajitpratap0/tabula/pkg/logger"
)

var (
	flagDelimiter string
	flagNoHeader  bool
	flagLogLevel  string
)

func main() {
	root := &cobra.Command{
		Use:   "tabula",
		Short: "Typed columnar data inspection",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{
				Level:    viper.GetString("log-level"),
				Encoding: "console",
			})
		},
	}

	root.PersistentFlags().StringVar(&flagDelimiter, "delimiter", ",", "field delimiter")
	root.PersistentFlags().BoolVar(&flagNoHeader, "no-header", false, "treat the first record as data")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	viper.SetEnvPrefix("TABULA")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("delimiter", root.PersistentFlags().Lookup("delimiter"))
	_ = viper.BindPFlag("no-header", root.PersistentFlags().Lookup("no-header"))
	_ = viper.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newDescribeCmd(), newHeadCmd())

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func loadFrame(path string) (*frame.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := []frame.CSVOption{}
	delim := viper.GetString("delimiter")
	if delim != "" {
		opts = append(opts, frame.WithDelimiter([]rune(delim)[0]))
	}
	if viper.GetBool("no-header") {
		opts = append(opts, frame.WithoutHeader())
	}
	return frame.ReadCSV(f, opts...)
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "Print the inferred schema and null counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFrame(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%d rows, %d columns\n", df.Len(), df.NumCols())
			for i := 0; i < df.NumCols(); i++ {
				c := df.ColumnAt(i)
				fmt.Printf("%-24s %-10s nulls=%d\n", c.Name(), c.DataType(), c.NullCount())
			}
			return nil
		},
	}
}

func newHeadCmd() *cobra.Command {
	var rows int
	cmd := &cobra.Command{
		Use:   "head FILE",
		Short: "Print the first rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := loadFrame(args[0])
			if err != nil {
				return err
			}
			fmt.Print(df.Head(rows))
			return nil
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "number of rows to print")
	return cmd
}
