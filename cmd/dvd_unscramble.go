package cmd

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"dvdio/dvd/css"
)

var (
	unscrambleKey    string
	unscrambleCMI    uint8
	unscrambleOutput string
)

var dvdUnscrambleCmd = &cobra.Command{
	Use:   "unscramble FILE",
	Short: "Unscramble dumped DVD-Video sectors",
	Long: `Unscramble a dump of 2048-byte DVD-Video sectors with a title key.

Every sector in the file is descrambled with the same key and copyright
management byte. Sectors whose MPEG-PS scrambling control bits are clear
pass through unchanged.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		key, err := parseKey(unscrambleKey)
		if err != nil {
			fmt.Println(err)
			return
		}

		sectors, err := ioutil.ReadFile(filename)
		if err != nil {
			fmt.Println(err)
			return
		}
		if len(sectors) == 0 || len(sectors)%css.SectorSize != 0 {
			fmt.Printf("File size %d is not a multiple of the sector size\n", len(sectors))
			os.Exit(1)
		}

		blocks := len(sectors) / css.SectorSize
		cmi := bytes.Repeat([]byte{unscrambleCMI}, blocks)
		keys := bytes.Repeat(key, blocks)

		if err := css.DecryptSectors(sectors, cmi, keys, blocks, css.SectorSize); err != nil {
			fmt.Println("Unscramble error!")
			fmt.Println(err)
			os.Exit(1)
		}

		output := unscrambleOutput
		if output == "" {
			output = filename + ".dec"
		}
		if err := ioutil.WriteFile(output, sectors, 0644); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Printf("Unscrambled %d sectors to %s\n", blocks, output)
	},
}

func init() {
	dvdUnscrambleCmd.Flags().StringVar(&unscrambleKey, "key", "", `Title key (10 hex digits)`)
	dvdUnscrambleCmd.Flags().Uint8Var(&unscrambleCMI, "cmi", 0x80, `Copyright management byte applied to every sector`)
	dvdUnscrambleCmd.Flags().StringVarP(&unscrambleOutput, "output", "o", "", `Output file, default: FILE.dec`)
	dvdCmd.AddCommand(dvdUnscrambleCmd)
}
