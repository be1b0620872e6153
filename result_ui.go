package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/purplenight/common"
	"github.com/milk9111/purplenight/obj"
	"github.com/milk9111/purplenight/records"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	lilac = color.NRGBA{R: 0xc9, G: 0xb8, B: 0xe8, A: 0xff}
)

// NewResultUI builds the end-of-run panel with Retry and Quit buttons.
// summary is the level's run history including this run.
func NewResultUI(g *Game, status obj.Status, stats obj.Stats, summary records.Summary) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x08, B: 0x20, A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x3b, G: 0x2c, B: 0x5c, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x6a, G: 0x3d, B: 0x9a, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	heading := "The night claims you"
	if status == obj.StatusWon {
		heading = "Dawn breaks"
	}
	title := widget.NewText(
		widget.TextOpts.Text(heading, &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	lines := fmt.Sprintf("%.1fs  slimes %d  bats %d",
		float64(stats.Frames)/60, stats.SlimesKilled, stats.BatsKilled)
	if summary.Runs > 0 {
		lines += fmt.Sprintf("\nwins %d/%d", summary.Wins, summary.Runs)
		if summary.BestWin > 0 {
			lines += fmt.Sprintf("  best %.1fs", float64(summary.BestWin)/60)
		}
	}
	body := widget.NewText(
		widget.TextOpts.Text(lines, &face, lilac),
		widget.TextOpts.WidgetOpts(center),
	)

	retryBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
		widget.ButtonOpts.Text("Retry", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.retry()
		}),
	)
	quitBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
		widget.ButtonOpts.Text("Quit", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.quit = true
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.ScreenWidth*3/4, common.ScreenHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(body)
	panel.AddChild(retryBtn)
	panel.AddChild(quitBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
