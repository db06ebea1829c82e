// Package dumpcli implements the hiddump command line tool.
package dumpcli

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sstallion/go-hid"
	"go.uber.org/zap"

	"github.com/hidtools/usbhid/hidparse"
	"github.com/hidtools/usbhid/hidusage"
)

func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	var debug bool
	log := zap.NewNop()
	rootCmd := &cobra.Command{
		Use:   "hiddump",
		Short: "Inspect USB HID report descriptors",
		Long:  `hiddump decodes HID report descriptors into their flat item table, from a file or straight from a hidraw device.`,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if debug {
			var err error
			log, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
		}
		return nil
	}
	logProvider := func() *zap.Logger {
		return log
	}
	rootCmd.AddCommand(newDumpCmd(logProvider))
	rootCmd.AddCommand(newDeviceCmd(logProvider))
	rootCmd.AddCommand(newLengthCmd(logProvider))
	return rootCmd
}

func newDumpCmd(log func() *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Decode a report descriptor file",
		Long:  `Decode a report descriptor from a binary or hex-text file and print its item table.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDescriptorFile(args[0])
			if err != nil {
				return err
			}
			return dumpDescriptor(cmd.OutOrStdout(), log(), data)
		},
	}
}

func newDeviceCmd(log func() *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "device <path>",
		Short: "Decode the report descriptor of a hidraw device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := hid.Init(); err != nil {
				return err
			}
			defer hid.Exit()
			dev, err := hid.OpenPath(args[0])
			if err != nil {
				return fmt.Errorf("failed to open device: %w", err)
			}
			defer dev.Close()
			buf := make([]byte, 4096)
			n, err := dev.GetReportDescriptor(buf)
			if err != nil {
				return fmt.Errorf("failed to fetch report descriptor: %w", err)
			}
			return dumpDescriptor(cmd.OutOrStdout(), log(), buf[:n])
		},
	}
}

func newLengthCmd(log func() *zap.Logger) *cobra.Command {
	var reportID uint8
	var typeName string
	cmd := &cobra.Command{
		Use:   "length <file>",
		Short: "Print the byte length of one report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: length <file>")
			}
			typ, err := parseReportType(typeName)
			if err != nil {
				return err
			}
			data, err := readDescriptorFile(args[0])
			if err != nil {
				return err
			}
			parser := hidparse.NewParser(hidparse.WithLogger(log()))
			if err := parser.Parse(data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), parser.ReportLength(reportID, typ))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&reportID, "report-id", 0, "report ID, 0 when the device uses none")
	cmd.Flags().StringVar(&typeName, "type", "input", "report type: input, output or feature")
	return cmd
}

func parseReportType(name string) (hidparse.ReportType, error) {
	switch name {
	case "input":
		return hidparse.ReportTypeInput, nil
	case "output":
		return hidparse.ReportTypeOutput, nil
	case "feature":
		return hidparse.ReportTypeFeature, nil
	}
	return 0, fmt.Errorf("invalid report type: %s", name)
}

type itemRow struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	ReportID   uint8  `json:"reportId"`
	BitOffset  uint32 `json:"bitOffset"`
	BitSize    uint8  `json:"bitSize"`
	Usage      string `json:"usage"`
	LogicalMin int32  `json:"logicalMin"`
	LogicalMax int32  `json:"logicalMax"`
	Constant   bool   `json:"constant"`
	Relative   bool   `json:"relative"`
	Array      bool   `json:"array"`
	Collection string `json:"collection,omitempty"`
}

func dumpDescriptor(out io.Writer, log *zap.Logger, data []byte) error {
	parser := hidparse.NewParser(hidparse.WithLogger(log))
	if err := parser.Parse(data); err != nil {
		return err
	}
	items := parser.Items()
	rows := make([]itemRow, len(items))
	for i := range items {
		item := &items[i]
		rows[i] = itemRow{
			Index:      i,
			Type:       item.Type.String(),
			ReportID:   item.ReportID,
			BitOffset:  item.BitOffset,
			BitSize:    item.BitSize,
			Usage:      item.Usage.String(),
			LogicalMin: item.Logical.Minimum,
			LogicalMax: item.Logical.Maximum,
			Constant:   item.Flags.IsConstant(),
			Relative:   item.Flags.IsRelative(),
			Array:      item.Flags.IsArray(),
			Collection: collectionChain(parser, item.Collection),
		}
	}
	jsonB, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(jsonB))
	return nil
}

// collectionChain renders the collection path from the root down to
// the item's enclosing collection.
func collectionChain(parser *hidparse.Parser, index int32) string {
	var usages []hidusage.Usage
	for node := parser.CollectionPath(index); node != nil; node = parser.CollectionPath(node.Parent) {
		usages = append(usages, node.Usage)
	}
	if len(usages) == 0 {
		return ""
	}
	parts := make([]string, len(usages))
	for i, usage := range usages {
		parts[len(usages)-1-i] = usage.String()
	}
	return strings.Join(parts, " > ")
}

// readDescriptorFile loads a descriptor stored either as raw bytes or
// as whitespace-separated hex text.
func readDescriptorFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if decoded, ok := decodeHexText(data); ok {
		return decoded, nil
	}
	return data, nil
}

func decodeHexText(data []byte) ([]byte, bool) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return nil, false
	}
	var sb strings.Builder
	for _, field := range fields {
		field = strings.TrimPrefix(field, "0x")
		if len(field)%2 != 0 {
			field = "0" + field
		}
		sb.WriteString(field)
	}
	decoded, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, false
	}
	return decoded, true
}
