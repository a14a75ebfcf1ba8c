//go:build !libretro && !ios

package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/user-none/eblitui/standalone"
	"github.com/user-none/x68pad/adapter"
	"github.com/user-none/x68pad/emu"
)

func main() {
	diskPath := flag.String("disk", "", "path to disk image (opens UI if not provided)")
	regionFlag := flag.String("region", "auto", "region: auto, ntsc, or pal")
	joy1 := flag.String("joy1", "2 Buttons", "port 1 joypad type: \"2 Buttons\", CPSF-MD or CPSF-SFC")
	joy2 := flag.String("joy2", "2 Buttons", "port 2 joypad type: \"2 Buttons\", CPSF-MD or CPSF-SFC")
	swap := flag.Bool("swap", false, "swap TRG1/TRG2 on 2-button joypads")
	selectMapped := flag.Bool("select-mapped", false, "don't report Select as Left+Right")
	turboToggle := flag.Bool("turbo-toggle", false, "R2 toggles turbo instead of holding it")
	turboDelay := flag.Int("turbo-delay", 2, "frames a turbo button stays released")
	flag.Parse()

	factory := &adapter.Factory{}

	if *diskPath != "" {
		options := map[string]string{
			emu.OptionJoyType1:      *joy1,
			emu.OptionJoyType2:      *joy2,
			emu.OptionButtonSwap:    strconv.FormatBool(*swap),
			emu.OptionSelectMapping: strconv.FormatBool(*selectMapped),
			emu.OptionTurboToggle:   strconv.FormatBool(*turboToggle),
			emu.OptionTurboDelay:    strconv.Itoa(*turboDelay),
		}
		if err := standalone.RunDirect(factory, *diskPath, *regionFlag, options); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := standalone.Run(factory); err != nil {
		log.Fatal(err)
	}
}
