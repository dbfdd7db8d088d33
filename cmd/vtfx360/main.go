// vtfx360 converts Xbox 360 Valve Texture Files into PC VTF 7.1 files.
//
// Usage:
//
//	vtfx360 input.vtf output.vtf              # convert
//	vtfx360 convert --compress zstd in out    # convert, wrap output in a ZSTD archive
//	vtfx360 info input.vtf                    # show header, resources and derived mips
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	s := &settings{}

	return &cli.Command{
		Name:      "vtfx360",
		Usage:     "Convert Xbox 360 VTF textures to PC VTF 7.1",
		ArgsUsage: "<input> <output>",
		Flags:     append(globalFlags(s), convertFlags(s, true)...),
		Action:    convertAction(s),
		Commands: []*cli.Command{
			convertCmd(s),
			infoCmd(s),
		},
	}
}

// ArgumentError reports missing or extra positional arguments.
type ArgumentError struct {
	Want string
	Got  int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("expected %s, got %d argument(s)", e.Want, e.Got)
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
