//////////////////////////////////////////////////////////////////////////////
//
// topos: play the video stream of a media file
//
// Copyright 2019 Lanikai Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/lanikai/topos/internal/display"
	"github.com/lanikai/topos/internal/logging"
	"github.com/lanikai/topos/internal/player"
)

// Populated via -ldflags="-X ...". See Makefile.
var GitRevisionId string

var log = logging.DefaultLogger.WithTag("topos")

var (
	flagQueueSize  int
	flagConcurrent bool
	flagOutput     string
	flagHelp       bool
	flagVersion    bool
)

func init() {
	// SDL must be driven from the main OS thread, and the player presents on
	// the goroutine that calls Run.
	runtime.LockOSThread()

	flag.IntVarP(&flagQueueSize, "queue-size", "q", player.DefaultQueueCapacity, "Packet queue capacity")
	flag.BoolVarP(&flagConcurrent, "concurrent", "c", false, "Demux on a separate goroutine")
	flag.StringVarP(&flagOutput, "output", "o", "", "Write YUV4MPEG2 to FILE instead of opening a window")

	flag.BoolVarP(&flagHelp, "help", "h", false, "Print usage information and exit")
	flag.BoolVarP(&flagVersion, "version", "v", false, "Print version information and exit")
	flag.Usage = usage
}

// version displays information and exits successfully (GNU convention)
func version() {
	fmt.Println("topos", GitRevisionId)
	fmt.Println("Copyright 2019 Lanikai Labs LLC. All rights reserved.")
}

func main() {
	flag.Parse()

	if flagHelp {
		help()
		os.Exit(0)
	}
	if flagVersion {
		version()
		os.Exit(0)
	}

	// Nothing to play is not an error.
	if flag.NArg() < 1 {
		usage()
		os.Exit(0)
	}

	os.Exit(play(flag.Arg(0)))
}

func play(input string) int {
	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	p, err := player.Open(player.Config{
		Input:         input,
		QueueCapacity: flagQueueSize,
		Concurrent:    flagConcurrent,
		CreateSink:    createSink(input),
	})
	if err != nil {
		var initErr *player.InitError
		if errors.As(err, &initErr) {
			log.Error("%s: %v", input, initErr)
		} else {
			log.Error("%v", err)
		}
		return 1
	}

	if err := p.Run(ctx); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

func createSink(input string) func(width, height int) (player.Sink, error) {
	if flagOutput != "" {
		return func(width, height int) (player.Sink, error) {
			return openFileSink(flagOutput, width, height)
		}
	}
	return func(width, height int) (player.Sink, error) {
		w, err := display.NewWindow("topos: "+input, width, height)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
}

func openFileSink(path string, width, height int) (player.Sink, error) {
	f := os.Stdout
	if path != "-" {
		var err error
		if f, err = os.Create(path); err != nil {
			return nil, errors.Wrap(err, "create output")
		}
	}
	s, err := display.NewFileSink(f, width, height)
	if err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}
