// Command rtoscdemo drives the codec, ports, and threadlink packages
// end to end without any network I/O: it builds a small Ports table,
// encodes a batch of synthetic messages across a ThreadLink, and logs
// each dispatch. It exists to give a reader something runnable.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/curlymorphic/rtosc/codec"
	"github.com/curlymorphic/rtosc/oscutil"
	"github.com/curlymorphic/rtosc/ports"
	"github.com/curlymorphic/rtosc/threadlink"
)

func main() {
	app := &cli.App{
		Name:                   "rtoscdemo",
		Usage:                  "drive rtosc's codec/ports/threadlink packages with synthetic messages",
		Action:                 runDemo,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of synthetic messages to push through the link",
				Value:   8,
			},
			&cli.IntFlag{
				Name:  "ring-size",
				Usage: "byte capacity of each ThreadLink ring",
				Value: 4096,
			},
			&cli.IntFlag{
				Name:  "max-msg",
				Usage: "largest single message the ring will accept, in bytes",
				Value: 256,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runDemo(c *cli.Context) error {
	count := c.Int("count")
	link, err := threadlink.New(c.Int("ring-size"), c.Int("max-msg"))
	if err != nil {
		return err
	}

	table, err := buildDemoTable()
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		pushDemoMessage(link, i)
	}
	log.Printf("pushed %d messages, dropped %d", link.Up.Stats().Written, link.Up.Stats().Dropped)

	var trace oscutil.Trace
	root := &demoContext{out: os.Stdout, module: "root"}
	for link.Up.HasNext() {
		msg, ok := link.Up.Read()
		if !ok {
			break
		}
		trace.Record(msg)
		if !ports.Dispatch(table, msg, root) {
			log.Printf("unhandled message: %x", msg)
		}
	}

	fixture, err := trace.Marshal()
	if err != nil {
		return err
	}
	log.Printf("recorded %d frames, %d bytes of CBOR", len(trace.Frames()), len(fixture))
	return nil
}

func pushDemoMessage(link *threadlink.ThreadLink, i int) {
	switch i % 3 {
	case 0:
		link.Up.Write("/synth/1/freq", "f", float32(220.0+float32(i)))
	case 1:
		link.Up.Write("/synth/1/gate", "i", int32(i%2))
	default:
		link.Up.Write("/mixer/main/level", "f", float32(i)/10)
	}
}

// demoContext is threaded through Dispatch, narrowed as it descends
// into each module's subtree so a leaf handler's log line carries the
// module it belongs to without needing to re-derive it from the
// address.
type demoContext struct {
	out    io.Writer
	module string
}

func buildDemoTable() (*ports.Table, error) {
	synthLeaves, err := ports.Build(
		ports.Port{Pattern: "freq:f", Handler: logHandler},
		ports.Port{Pattern: "gate:i", Handler: logHandler},
	)
	if err != nil {
		return nil, err
	}
	synthIndex, err := ports.Build(
		ports.Port{Pattern: "*/", Table: synthLeaves},
	)
	if err != nil {
		return nil, err
	}
	mainChannel, err := ports.Build(
		ports.Port{Pattern: "level:f", Handler: logHandler},
	)
	if err != nil {
		return nil, err
	}
	mixerIndex, err := ports.Build(
		ports.Port{Pattern: "main/", Table: mainChannel},
	)
	if err != nil {
		return nil, err
	}
	return ports.Build(
		ports.Port{Pattern: "synth/", Recurse: ports.Descend(synthIndex, narrowModule("synth"))},
		ports.Port{Pattern: "mixer/", Recurse: ports.Descend(mixerIndex, narrowModule("mixer"))},
	)
}

// narrowModule returns a Descend narrow function that relabels the
// context with the module being entered, leaving the rest of it
// (where leaf handlers write their log lines) untouched.
func narrowModule(module string) func(ctx interface{}) interface{} {
	return func(ctx interface{}) interface{} {
		dc := ctx.(*demoContext)
		return &demoContext{out: dc.out, module: module}
	}
}

func logHandler(msg []byte, ctx interface{}) {
	dc := ctx.(*demoContext)
	args, _ := oscutil.Arguments(msg)
	address, _ := codec.Address(msg)
	fmt.Fprintf(dc.out, "[%s] %s: %v\n", dc.module, address, args)
}
