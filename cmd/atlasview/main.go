// atlasview previews the procedural sprite atlas.
//
// Usage:
//
//	atlasview --actor slime         - Animate one actor's frames in a window
//	atlasview --png sheet.png       - Write every palette frame to a PNG
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/purplenight/assets"
	"github.com/milk9111/purplenight/prefabs"
)

const (
	viewSize  = 128
	viewScale = 4
	sheetCols = 16
)

var (
	flagActor string
	flagFPS   int
	flagPNG   string
)

type previewGame struct {
	atlas       *assets.Atlas
	first, last int
	current     int
	tick        int
	ticksPerFrm int
}

func (g *previewGame) Update() error {
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current++
		if g.current > g.last {
			g.current = g.first
		}
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.atlas.Sky())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(viewScale, viewScale)
	off := float64(viewSize-assets.FrameSize*viewScale) / 2
	op.GeoM.Translate(off, off)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.atlas.Frame(g.current*4), op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// contactSheet lays every palette frame out in rows of sheetCols.
func contactSheet(p prefabs.PaletteSpec) *image.NRGBA {
	last := 0
	for _, a := range p.Actors {
		last = max(last, a.Last)
	}
	rows := last/sheetCols + 1
	sheet := image.NewNRGBA(image.Rect(0, 0, sheetCols*assets.FrameSize, rows*assets.FrameSize))
	if p.Sky.Color != nil {
		draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: p.Sky.Color}, image.Point{}, draw.Src)
	} else {
		draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)
	}
	for frame := 0; frame <= last; frame++ {
		x := (frame % sheetCols) * assets.FrameSize
		y := (frame / sheetCols) * assets.FrameSize
		r := image.Rect(x, y, x+assets.FrameSize, y+assets.FrameSize)
		draw.Draw(sheet, r, assets.DrawFrame(p, frame), image.Point{}, draw.Over)
	}
	return sheet
}

func writeSheet(path string, p prefabs.PaletteSpec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, contactSheet(p)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

var rootCmd = &cobra.Command{
	Use:          "atlasview",
	Short:        "Preview the procedural sprite atlas",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		palette, err := prefabs.LoadPalette()
		if err != nil {
			return err
		}
		if flagPNG != "" {
			return writeSheet(flagPNG, palette)
		}

		var actor *prefabs.ActorPaletteSpec
		for i := range palette.Actors {
			if palette.Actors[i].Name == flagActor {
				actor = &palette.Actors[i]
			}
		}
		if actor == nil {
			return fmt.Errorf("unknown actor %q", flagActor)
		}

		ticks := 1
		if flagFPS > 0 {
			ticks = max(60/flagFPS, 1)
		}
		g := &previewGame{
			atlas:       assets.NewAtlas(palette),
			first:       actor.First,
			last:        actor.Last,
			current:     actor.First,
			ticksPerFrm: ticks,
		}
		ebiten.SetWindowSize(viewSize*viewScale, viewSize*viewScale)
		ebiten.SetWindowTitle("atlas: " + actor.Name)
		return ebiten.RunGame(g)
	},
}

func main() {
	rootCmd.Flags().StringVar(&flagActor, "actor", "player_long", "Palette actor to animate")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 8, "Animation frames per second")
	rootCmd.Flags().StringVar(&flagPNG, "png", "", "Write a contact sheet of every frame and exit")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
