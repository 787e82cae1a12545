package arena

import (
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/natac13/top-down-cartoon-game/internal/application/battle"
	"github.com/natac13/top-down-cartoon-game/internal/application/system"
	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/render"
)

const panelHeight = 140

// View is the battle interface the arena drives each frame
type View interface {
	battle.UI
	Update()
	Draw(screen *ebiten.Image)
}

// uiView is the ebitenui battle interface: a grid of attack buttons, a box
// with the hovered attack's type, and a dialog that covers both. Clicks only
// push intents; the arena applies them.
type uiView struct {
	ui      *ebitenui.UI
	attacks *widget.Container
	dialog  *widget.Button
	intents *system.IntentQueue

	screenW int
	screenH int

	visible    bool
	dialogText string
	dialogOpen bool
	hovered    *entity.Attack
	buttons    int
}

func newUIView(intents *system.IntentQueue, screenW, screenH int) *uiView {
	v := &uiView{intents: intents, screenW: screenW, screenH: screenH}

	panelImg := imageui.NewNineSliceColor(colornames.White)
	attackW := screenW * 2 / 3

	v.attacks = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, true}, []bool{true, true}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(attackW, panelHeight)),
	)
	typeBox := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(screenW-attackW, panelHeight)),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	bar.AddChild(v.attacks)
	bar.AddChild(typeBox)

	v.dialog = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: panelImg, Hover: panelImg, Pressed: panelImg}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenW, panelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			v.intents.Push(system.DismissIntent{})
		}),
	)
	v.dialog.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(bar)
	root.AddChild(v.dialog)
	v.ui = &ebitenui.UI{Container: root}

	return v
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(colornames.White),
		Hover:   imageui.NewNineSliceColor(colornames.Whitesmoke),
		Pressed: imageui.NewNineSliceColor(colornames.Lightgray),
	}
}

// ShowAttacks replaces the attack buttons, one per attack
func (v *uiView) ShowAttacks(attacks []entity.Attack) {
	v.attacks.RemoveChildren()
	v.hovered = nil

	for _, a := range attacks {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(a.Name, render.Face(), &widget.ButtonTextColor{Idle: colornames.Black}),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.CursorEnterHandler(func(args *widget.WidgetCursorEnterEventArgs) {
					v.hovered = &a
				}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				v.intents.Push(system.SelectAttackIntent{AttackID: a.ID})
			}),
		)
		v.attacks.AddChild(btn)
	}
	v.buttons = len(attacks)
}

func (v *uiView) ShowDialog(text string) {
	v.dialogText = text
	v.dialogOpen = true
	v.dialog.GetWidget().Visibility = widget.Visibility_Show
}

func (v *uiView) HideDialog() {
	v.dialogOpen = false
	v.dialog.GetWidget().Visibility = widget.Visibility_Hide
}

func (v *uiView) Show() { v.visible = true }

func (v *uiView) Hide() {
	v.visible = false
	v.HideDialog()
}

func (v *uiView) Update() {
	if v.visible {
		v.ui.Update()
	}
}

func (v *uiView) Draw(screen *ebiten.Image) {
	if !v.visible {
		return
	}
	v.ui.Draw(screen)

	top := float64(v.screenH - panelHeight)
	if v.dialogOpen {
		render.Text(screen, v.dialogText, 12, top+12, render.ColorText)
		return
	}
	if v.hovered != nil {
		x := float64(v.screenW*2/3) + 20
		render.Text(screen, v.hovered.Label(), x, top+panelHeight/2-6, v.hovered.Color)
	}
}
