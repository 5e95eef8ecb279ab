package cmd

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/svgies/svgie/chain"
	"github.com/svgies/svgie/config"
	"github.com/svgies/svgie/ui"
)

var (
	errAddressRequired = errors.New("address is required")
	// errInvalidAddress is reported to the user before it is returned.
	errInvalidAddress = errors.New("invalid address format")
	errNotOverwritten = errors.New("output file exists, not overwritten")
)

var supportedFormats = [][2]string{
	{"Arweave:", "43 characters (base64url)"},
	{"Bitcoin:", "26-62 characters (base58/bech32)"},
	{"EVM:", "0x + 40 hex characters"},
	{"Solana:", "32-44 characters (base58)"},
}

func setupLogger() error {
	if !config.Verbose {
		logger = zap.NewNop()
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("couldn't create logger: %w", err)
	}
	logger = l
	return nil
}

func reportInvalidAddress(u ui.UI, address string, forced chain.Type) {
	if forced != chain.Unknown {
		u.Error("Error: %q is not a valid %s address.", address, forced)
	} else {
		u.Error("Error: Invalid address format.")
	}
	u.Info("Supported formats:")
	w := u.Indent().Writer()
	for _, f := range supportedFormats {
		fmt.Fprintf(w, "%-8s %s\n", f[0], f[1])
	}
}

// writeOutput writes content to path. An existing file is only replaced with
// force or after the user confirms.
func writeOutput(u ui.UI, path, content string, force bool) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%s is a directory", path)
	case err == nil && !force:
		if !u.Confirm(fmt.Sprintf("%s already exists. Overwrite it?", path), false) {
			u.Warn("Keeping the existing %s", path)
			return errNotOverwritten
		}
	case err != nil && !os.IsNotExist(err):
		return err
	}
	logger.Debug("writing identicon", zap.String("path", path), zap.Int("bytes", len(content)))
	return os.WriteFile(path, []byte(content), 0644)
}
