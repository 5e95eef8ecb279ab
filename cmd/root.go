// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/svgies/svgie/chain"
	"github.com/svgies/svgie/config"
	"github.com/svgies/svgie/svgie"
	"github.com/svgies/svgie/ui"
)

var logger = zap.NewNop()

// NewRootCmd builds the svgie command tree. Status output goes through u,
// the identicon itself to the command's stdout.
func NewRootCmd(u ui.UI) *cobra.Command {
	// flags typed on the command line, before the environment fills the rest
	typed := 0
	rootCmd := &cobra.Command{
		Use:   "svgie <address>",
		Short: "Generate SVG identicons from blockchain addresses",
		Long: `svgie turns a blockchain address into a deterministic SVG identicon.

Supported address types (auto-detected in this order):
  - EVM addresses (0x + 40 hex characters)
  - Arweave addresses (43 characters, base64url)
  - Bitcoin addresses (26-62 characters, base58/bech32)
  - Solana addresses (32-44 characters, base58)

Generation flags can also be set with SVGIE_SIZE, SVGIE_CHAIN, SVGIE_SEED,
SVGIE_DATA_URI and SVGIE_LEGACY. Flags win over the environment.`,
		Example: `  svgie E_pOZW6MDRtcTraQlIEM0p4l_AedIadAO9j-RzuPol8 --size 64 --legacy
  svgie bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh --chain bitcoin
  svgie 0xA3Ca2a4BFb8Af380cf2D42e40A832E7a205db08e --data-uri -o icon.txt
  svgie DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK --seed my-seed`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			typed = cmd.Flags().NFlag()
			return config.BindEnv(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && typed == 0 {
				return cmd.Help()
			}
			address := config.Address
			if len(args) == 1 {
				address = args[0]
			}
			if address == "" {
				return errAddressRequired
			}
			return generate(cmd, u, address)
		},
	}

	rootCmd.Flags().StringVarP(&config.Address, "address", "a", "", "Blockchain address (auto-detected)")
	rootCmd.Flags().IntVarP(&config.Size, "size", "s", svgie.DefaultSize, "SVG size in pixels")
	rootCmd.Flags().StringVarP(&config.Chain, "chain", "c", "", "Force chain type: arweave, evm, solana, bitcoin")
	rootCmd.Flags().StringVar(&config.Seed, "seed", "", "Seed for color randomization (not available for EVM)")
	rootCmd.Flags().BoolVarP(&config.AsDataURI, "data-uri", "d", false, "Output as data URI instead of raw SVG")
	rootCmd.Flags().StringVarP(&config.Output, "output", "o", "", "Write to file instead of stdout")
	rootCmd.Flags().BoolVarP(&config.Force, "force", "f", false, "Overwrite the output file without asking")
	rootCmd.Flags().BoolVarP(&config.Legacy, "legacy", "l", false, "Use legacy color calculation (Arweave only)")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Print debug logs to stderr")

	rootCmd.AddCommand(
		newDetectCmd(u),
		newBenchCmd(u),
		newVersionCmd(),
	)
	return rootCmd
}

func generate(cmd *cobra.Command, u ui.UI, address string) error {
	opts := []svgie.Option{
		svgie.WithSize(config.Size),
		svgie.WithSeed(config.Seed),
		svgie.WithLegacy(config.Legacy),
		svgie.WithDataURI(config.AsDataURI),
	}
	forced := chain.Unknown
	if config.Chain != "" {
		t, err := chain.Parse(config.Chain)
		if err != nil {
			return err
		}
		forced = t
		opts = append(opts, svgie.WithChain(t))
	}

	logger.Debug("generating identicon",
		zap.String("address", address),
		zap.Stringer("chain", forced),
		zap.Int("size", config.Size),
		zap.Bool("legacy", config.Legacy),
		zap.Bool("data_uri", config.AsDataURI),
	)

	result, ok := svgie.Generate(address, opts...)
	if !ok {
		reportInvalidAddress(u, address, forced)
		return errInvalidAddress
	}

	if config.Output == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
		return err
	}
	if err := writeOutput(u, config.Output, result, config.Force); err != nil {
		return err
	}
	u.Success("SVG written to %s", config.Output)
	return nil
}

// Execute runs the CLI against the terminal and exits non-zero on failure.
func Execute() {
	u := ui.NewTerminalUI(os.Stderr, os.Stdin)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCmd(u).ExecuteContext(ctx)
	_ = logger.Sync()
	if err != nil {
		if !errors.Is(err, errInvalidAddress) {
			u.Error("Error: %s", err)
		}
		if errors.Is(err, errAddressRequired) {
			u.Info("Use --help for usage information")
		}
		stop()
		os.Exit(1)
	}
}
