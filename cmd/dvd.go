package cmd

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"dvdio/dvd/css"
)

var dvdCmd = &cobra.Command{
	Use:   "dvd",
	Short: "DVD-Video commands",
	Long:  `Commands for working with DVD-Video copy protection dumps.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(dvdCmd)
}

// parseKey decodes a 10-digit hex string to 5 key bytes.
func parseKey(value string) ([]byte, error) {
	key, err := hex.DecodeString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid key '%s'", value)
	}
	if len(key) != css.KeySize {
		return nil, errors.Errorf("invalid key '%s': expected %d bytes, got %d", value, css.KeySize, len(key))
	}
	return key, nil
}

// parseRegionByte decodes a 2-digit hex string to a region byte.
func parseRegionByte(value string) (byte, error) {
	data, err := hex.DecodeString(value)
	if err != nil || len(data) != 1 {
		return 0, errors.Errorf("invalid region byte '%s'", value)
	}
	return data[0], nil
}
