// Command s57decode decodes a single IHO S-57 ENC cell into a GeoJSON
// feature collection, an optional sector-light sidecar, and a one-line
// metadata summary on stdout.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/encharts/s57decode/internal/decode"
	"github.com/encharts/s57decode/internal/output"
)

func run(inputCell, outputDir string) error {
	cell, err := decode.DecodeFile(inputCell)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", inputCell)
	}

	if cell.Stats.DanglingSpatialRef > 0 || cell.Stats.NonClosingRing > 0 || cell.Stats.UnparseableAttribute > 0 || cell.Stats.DiscontinuousLine > 0 {
		sigolo.Warnf("decoded %s with recoverable errors: dangling=%d non-closing=%d unparseable-attr=%d discontinuous-line=%d",
			inputCell, cell.Stats.DanglingSpatialRef, cell.Stats.NonClosingRing, cell.Stats.UnparseableAttribute, cell.Stats.DiscontinuousLine)
	}

	meta, err := output.WriteCell(cell, outputDir)
	if err != nil {
		return errors.Wrap(err, "writing output")
	}

	line, err := json.Marshal(meta)
	if err != nil {
		return errors.Wrap(err, "marshaling metadata")
	}
	fmt.Println(string(line))
	return nil
}

func main() {
	app := &cli.App{
		Name:      "s57decode",
		Usage:     "decode one IHO S-57 ENC cell into GeoJSON",
		ArgsUsage: "<input-cell> <output-dir>",
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 2 {
				return cli.Exit("expected exactly two arguments: <input-cell> <output-dir>", 1)
			}
			return run(cCtx.Args().Get(0), cCtx.Args().Get(1))
		},
	}

	if err := app.Run(os.Args); err != nil {
		sigolo.Error(err.Error())
		os.Exit(1)
	}
}
