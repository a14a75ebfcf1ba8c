package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	emubridge "github.com/user-none/x68pad/bridge/ebiten"
	"github.com/user-none/x68pad/cli"
	"github.com/user-none/x68pad/emu"
)

func main() {
	diskPath := flag.String("disk", "", "path to disk image (required)")
	regionFlag := flag.String("region", "auto", "region: auto, ntsc, or pal")
	joy1 := flag.String("joy1", "2 Buttons", "port 1 joypad type: \"2 Buttons\", CPSF-MD or CPSF-SFC")
	joy2 := flag.String("joy2", "2 Buttons", "port 2 joypad type: \"2 Buttons\", CPSF-MD or CPSF-SFC")
	swap := flag.Bool("swap", false, "swap TRG1/TRG2 on 2-button joypads")
	selectMapped := flag.Bool("select-mapped", false, "don't report Select as Left+Right")
	turboToggle := flag.Bool("turbo-toggle", false, "R2 toggles turbo instead of holding it")
	turboDelay := flag.Int("turbo-delay", 2, "frames a turbo button stays released (1-30)")
	flag.Parse()

	if *diskPath == "" {
		log.Fatal("Disk image path is required. Usage: x68pad -disk <path>")
	}

	image, err := os.ReadFile(*diskPath)
	if err != nil {
		log.Fatalf("Failed to load disk image: %v", err)
	}

	// Determine region
	var region emu.Region
	switch strings.ToLower(*regionFlag) {
	case "auto":
		region = emu.DetectRegion(image)
	case "ntsc":
		region = emu.RegionNTSC
	case "pal":
		region = emu.RegionPAL
	default:
		log.Fatalf("Invalid region: %s (use auto, ntsc, or pal)", *regionFlag)
	}

	e, err := emubridge.NewEmulator(image, region)
	if err != nil {
		log.Fatalf("Failed to initialize emulator: %v", err)
	}

	e.SetOption(emu.OptionJoyType1, *joy1)
	e.SetOption(emu.OptionJoyType2, *joy2)
	e.SetOption(emu.OptionButtonSwap, strconv.FormatBool(*swap))
	e.SetOption(emu.OptionSelectMapping, strconv.FormatBool(*selectMapped))
	e.SetOption(emu.OptionTurboToggle, strconv.FormatBool(*turboToggle))
	e.SetOption(emu.OptionTurboDelay, strconv.Itoa(*turboDelay))

	statePath := strings.TrimSuffix(*diskPath, filepath.Ext(*diskPath)) + ".state"

	ebiten.SetWindowSize(emu.ScreenWidth*2, emu.MaxScreenHeight*2)
	ebiten.SetWindowTitle(emu.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(emu.ScreenWidth, emu.MaxScreenHeight, -1, -1)
	ebiten.SetTPS(60)

	runner := cli.NewRunner(e, statePath)
	defer e.Close()
	defer runner.Close()

	if err := ebiten.RunGame(runner); err != nil {
		log.Fatal(err)
	}
}
