package main

import (
	"fmt"

	"github.com/fatih/color"
)

const usageString = `Usage: topos [OPTION]... FILE`

const helpString = `Play the video stream of a media file

` + usageString + `

Playback:
  -q, --queue-size=NUM   Packet queue capacity (default: 64)
  -c, --concurrent       Demux on a separate goroutine
  -o, --output=FILE      Write frames as YUV4MPEG2 to FILE ("-" for stdout)
                         instead of opening a window

Miscellaneous:
  -h, --help             Prints this help message and exits
  -v, --version          Prints version information and exits

Press Escape or close the window to quit. Set LOGLEVEL=debug for more output,
or LOGLEVEL=player=debug,media=info to set levels per package.

Please report bugs to: aloha@lanikailabs.com`

func usage() {
	fmt.Println(usageString)
	fmt.Println("Try 'topos --help' for more information.")
}

// Help information is printed and program exits
func help() {
	r := color.New(color.FgRed)
	y := color.New(color.FgYellow)
	b := color.New(color.FgCyan)

	//  _
	// | |_  ___   _ __   ___   ___
	// | __|/ _ \ | '_ \ / _ \ / __|
	// | |_| (_) || |_) | (_) |\__ \
	//  \__|\___/ | .__/ \___/ |___/
	//            |_|

	// Line 1
	r.Println(" _                          ")

	// Line 2
	r.Printf("| |_ ")
	y.Printf(" ___  ")
	b.Printf(" _ __  ")
	y.Printf(" ___  ")
	r.Println(" ___ ")

	// Line 3
	r.Printf("| __|")
	y.Printf("/ _ \\ ")
	b.Printf("| '_ \\ ")
	y.Printf("/ _ \\ ")
	r.Println("/ __|")

	// Line 4
	r.Printf("| |_")
	y.Printf("| (_) |")
	b.Printf("| |_) |")
	y.Printf(" (_) |")
	r.Println("\\__ \\")

	// Line 5
	r.Printf(" \\__|")
	y.Printf("\\___/ ")
	b.Printf("| .__/ ")
	y.Printf("\\___/ ")
	r.Println("|___/")

	// Line 6
	r.Printf("     ")
	y.Printf("      ")
	b.Println("|_|    ")

	fmt.Println()
	fmt.Println(helpString)
}
