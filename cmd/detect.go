package cmd

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svgies/svgie/chain"
	"github.com/svgies/svgie/ui"
)

type detectRow struct {
	Chain   string        `json:"chain"`
	Matches ui.StyledText `json:"matches"`
	Used    bool          `json:"used"`
}

type detectReport struct {
	Address  string      `json:"address"`
	Detected string      `json:"detected"`
	Chains   []detectRow `json:"chains"`
}

func newDetectCmd(u ui.UI) *cobra.Command {
	asJSON := false
	detectCmd := &cobra.Command{
		Use:   "detect <address>",
		Short: "Show which chain an address is detected as",
		Long: `Checks the address against every chain format in detection order. An address
can fit more than one format, e.g. a legacy bitcoin address is also valid
base58 for solana; the first match is the chain svgie uses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := strings.TrimSpace(args[0])
			detected, found := chain.Detect(address)
			if !found {
				reportInvalidAddress(u, address, chain.Unknown)
				return errInvalidAddress
			}

			report := detectReport{Address: address, Detected: detected.String()}
			for _, t := range chain.DetectionOrder {
				matches := ui.StyledText{Text: "no", Severity: ui.SeverityError}
				if t.Valid(address) {
					matches = ui.StyledText{Text: "yes", Severity: ui.SeveritySuccess}
				}
				report.Chains = append(report.Chains, detectRow{Chain: t.String(), Matches: matches, Used: t == detected})
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			u.KeyValue([][2]string{
				{"Address", report.Address},
				{"Detected", report.Detected},
			})
			rows := make([][]string, 0, len(report.Chains))
			for _, r := range report.Chains {
				used := ""
				if r.Used {
					used = "<="
				}
				rows = append(rows, []string{r.Chain, u.Style(r.Matches), used})
			}
			u.Table([]string{"Chain", "Matches", "Used"}, rows)
			return nil
		},
	}
	detectCmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON on stdout")
	return detectCmd
}
