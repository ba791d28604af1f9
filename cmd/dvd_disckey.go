package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dvdio/dvd"
	"dvdio/dvd/css"
	"dvdio/storage"
)

var discKeyBusKey string

var dvdDiscKeyCmd = &cobra.Command{
	Use:   "disckey FILE",
	Short: "Recover the disc key from a dumped key block",
	Long: `Recover the disc key from a dumped CSS disc key block.

FILE is either a raw 2048-byte key block, or a full 2052-byte READ DISC
KEY response when --bus-key is given, in which case the bus obfuscation
is stripped first. The block is trial-decrypted against all known player
keys.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		f, err := os.Open(filename)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer f.Close()
		reader := storage.NewReader(f)

		var block []byte
		if discKeyBusKey != "" {
			busKey, err := parseKey(discKeyBusKey)
			if err != nil {
				fmt.Println(err)
				return
			}
			response, err := dvd.ReadDiscKeyResponse(reader, busKey)
			if err != nil {
				fmt.Println("Dump read error!")
				fmt.Println(err)
				os.Exit(1)
			}
			block = response.Key[:]
		} else {
			block, err = dvd.ReadDiscKeyBlock(reader)
			if err != nil {
				fmt.Println("Dump read error!")
				fmt.Println(err)
				os.Exit(1)
			}
		}

		discKey, err := css.DecryptDiscKey(block)
		if err != nil {
			fmt.Println("No player key decrypts this disc.")
			os.Exit(1)
		}

		fmt.Printf("Disc key: %02x%02x%02x%02x%02x\n",
			discKey[0], discKey[1], discKey[2], discKey[3], discKey[4])
	},
}

func init() {
	dvdDiscKeyCmd.Flags().StringVar(&discKeyBusKey, "bus-key", "", `Session bus key (10 hex digits), for raw 2052-byte responses`)
	dvdCmd.AddCommand(dvdDiscKeyCmd)
}
