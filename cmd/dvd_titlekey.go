package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dvdio/dvd"
	"dvdio/dvd/css"
	"dvdio/storage"
)

var (
	titleKeyBusKey  string
	titleKeyDiscKey string
)

var dvdTitleKeyCmd = &cobra.Command{
	Use:   "titlekey FILE",
	Short: "Decrypt a title key from a dumped REPORT KEY response",
	Long: `Decrypt a title key from a dumped 12-byte REPORT KEY response.

The bus obfuscation is stripped with --bus-key, then the key is decrypted
with the disc key given by --disc-key.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		busKey, err := parseKey(titleKeyBusKey)
		if err != nil {
			fmt.Println(err)
			return
		}
		discKey, err := parseKey(titleKeyDiscKey)
		if err != nil {
			fmt.Println(err)
			return
		}

		f, err := os.Open(filename)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer f.Close()
		reader := storage.NewReader(f)

		record, err := dvd.ReadTitleKeyResponse(reader, busKey)
		if err != nil {
			fmt.Println("Dump read error!")
			fmt.Println(err)
			os.Exit(1)
		}

		titleKey := css.DecryptTitleKey(0xff, discKey, record.Key[:])

		fmt.Printf("CMI:       0x%02x\n", record.CMI)
		fmt.Printf("Title key: %02x%02x%02x%02x%02x\n",
			titleKey[0], titleKey[1], titleKey[2], titleKey[3], titleKey[4])
	},
}

func init() {
	dvdTitleKeyCmd.Flags().StringVar(&titleKeyBusKey, "bus-key", "", `Session bus key (10 hex digits)`)
	dvdTitleKeyCmd.Flags().StringVar(&titleKeyDiscKey, "disc-key", "", `Disc key (10 hex digits)`)
	dvdCmd.AddCommand(dvdTitleKeyCmd)
}
