package gui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/vovakirdan/brickfall/internal/games/breakout"
)

// toolbarHeight is the strip above the canvas that holds the Rules button.
const toolbarHeight = 36

var (
	buttonColor = color.NRGBA{R: 0x00, G: 0x95, B: 0xdd, A: 0xff}
	panelColor  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 235}
	white       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// newButton builds a flat colored button with a text label.
func newButton(label string, layout any, onClick func()) *widget.Button {
	img := imageui.NewNineSliceColor(buttonColor)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Pressed: img}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 26),
			widget.WidgetOpts.LayoutData(layout),
		),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// newToolbarUI builds the always-visible strip with the Rules button.
func newToolbarUI(onRules func()) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Left: border}),
		)),
	)
	root.AddChild(newButton("Rules", widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}, onRules))
	return &ebitenui.UI{Container: root}
}

// newRulesUI builds the centered rules panel with its Close button.
func newRulesUI(onClose func()) *ebitenui.UI {
	center := widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	for i, line := range breakout.RulesLines {
		clr := color.Color(white)
		if i == 0 {
			clr = buttonColor
		}
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, clr),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		))
	}
	panel.AddChild(newButton("Close", center, onClose))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
