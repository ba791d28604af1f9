package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dvdio/dvd"
)

var (
	regionDriveMask string
	regionDiscInfo  string
)

var dvdRegionCmd = &cobra.Command{
	Use:   "region",
	Short: "Check disc/drive region compatibility",
	Long: `Check whether a disc's region coding permits playback on a drive.

--drive takes the drive's RPC region mask and --disc the disc's region
management byte, both as 2-digit hex.`,
	Args:                  cobra.NoArgs,
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		driveMask, err := parseRegionByte(regionDriveMask)
		if err != nil {
			fmt.Println(err)
			return
		}
		discInfo, err := parseRegionByte(regionDiscInfo)
		if err != nil {
			fmt.Println(err)
			return
		}

		disc := dvd.LeadInCopyright{RegionInformation: discInfo}
		drive := dvd.RPCState{RegionMask: driveMask}

		fmt.Println("DISC:")
		fmt.Print(disc)
		fmt.Println("DRIVE:")
		fmt.Print(drive)

		if dvd.RegionCompatible(disc, drive) {
			fmt.Println("Region check: compatible")
		} else {
			fmt.Println("Region check: blocked")
		}
	},
}

func init() {
	dvdRegionCmd.Flags().StringVar(&regionDriveMask, "drive", "00", `Drive RPC region mask (2 hex digits)`)
	dvdRegionCmd.Flags().StringVar(&regionDiscInfo, "disc", "00", `Disc region information byte (2 hex digits)`)
	dvdCmd.AddCommand(dvdRegionCmd)
}
