package ui

import (
	stdimage "image"
	"image/color"

	cfg "github.com/automoto/folio/config"
	"github.com/automoto/folio/content"
	"github.com/automoto/folio/fonts"
	"github.com/automoto/folio/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// Overlay is the ebitenui layer drawn over the world: the sidebar, the
// topic dialogue and the startup language choice.
type Overlay struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Sidebar
	sidebar         *widget.Container
	titleLabel      *widget.Label
	toggleButton    *widget.Button
	topicButtons    []*widget.Button
	downloadHeading *widget.Label
	downloadText    *widget.Text
	downloadButton  *widget.Button

	// Dialogue window
	dialogue      *widget.Window
	dialogueBody  *widget.Container
	dialogueTitle *widget.Text
	closeButton   *widget.Button

	// Language window
	Selector       *widget.Window
	selectorBody   *widget.Container
	welcomeText    *widget.Text
	englishButton  *widget.Button
	japaneseButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace   text.Face
	headingFace text.Face
	bodyFace    text.Face
	buttonFace  text.Face
	smallFace   text.Face

	width, height int
}

// NewOverlay builds the overlay for the scene's world. Fonts must be loaded.
func NewOverlay(e *ecs.ECS) *Overlay {
	o := &Overlay{
		ecs:    e,
		width:  int(cfg.Screen.DefaultWidth),
		height: int(cfg.Screen.DefaultHeight),
	}

	o.loadFonts()
	o.buildUI()
	o.buildDialogue()
	o.buildSelector()

	return o
}

func (o *Overlay) loadFonts() {
	o.titleFace = fonts.Title.Face()
	o.headingFace = fonts.Heading.Face()
	o.bodyFace = fonts.Body.Face()
	o.buttonFace = fonts.Button.Face()
	o.smallFace = fonts.ButtonSmall.Face()
}

func (o *Overlay) buildUI() {
	// Root container stays transparent so the world shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	o.sidebar = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Sidebar.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Sidebar.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.Sidebar.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				Padding:            widget.NewInsetsSimple(cfg.Sidebar.Margin),
			}),
		),
	)

	o.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &o.headingFace, &widget.LabelColor{
			Idle: cfg.Sidebar.TitleColor,
		}),
	)
	o.sidebar.AddChild(o.titleLabel)

	o.toggleButton = o.newButton(&o.smallFace, o.buttonImage(), func() {
		systems.ToggleLanguage(o.ecs)
	})
	o.sidebar.AddChild(o.toggleButton)

	for _, topic := range content.Topics {
		o.topicButtons = append(o.topicButtons, o.newButton(&o.smallFace, o.linkImage(), func() {
			systems.ShowDialogue(o.ecs, topic)
		}))
		o.sidebar.AddChild(o.topicButtons[len(o.topicButtons)-1])
	}

	o.downloadHeading = widget.NewLabel(
		widget.LabelOpts.Text("", &o.headingFace, &widget.LabelColor{
			Idle: cfg.Sidebar.TitleColor,
		}),
	)
	o.sidebar.AddChild(o.downloadHeading)

	o.downloadText = widget.NewText(
		widget.TextOpts.Text("", &o.bodyFace, cfg.Sidebar.TextColor),
		widget.TextOpts.MaxWidth(float64(cfg.Sidebar.TextWidth)),
	)
	o.sidebar.AddChild(o.downloadText)

	o.downloadButton = o.newButton(&o.buttonFace, o.accentImage(cfg.Dialogue.CloseButton), func() {
		systems.OpenDownload(o.ecs)
	})
	o.sidebar.AddChild(o.downloadButton)

	rootContainer.AddChild(o.sidebar)

	o.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (o *Overlay) buildDialogue() {
	o.dialogueBody = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewBorderedNineSliceColor(cfg.Dialogue.Background, cfg.Dialogue.Border, cfg.Dialogue.BorderWidth)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Dialogue.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.Dialogue.Spacing),
		)),
	)

	o.dialogueTitle = widget.NewText(
		widget.TextOpts.Text("", &o.titleFace, cfg.Dialogue.TextColor),
	)
	o.closeButton = o.newButton(&o.buttonFace, o.accentImage(cfg.Dialogue.CloseButton), func() {
		systems.CloseDialogue(o.ecs)
	})

	o.dialogue = widget.NewWindow(
		widget.WindowOpts.Contents(o.dialogueBody),
		widget.WindowOpts.Modal(),
		widget.WindowOpts.CloseMode(widget.CLICK_OUT),
		// Click-out closes the window itself; the state follows
		widget.WindowOpts.ClosedHandler(func(args *widget.WindowClosedEventArgs) {
			systems.CloseDialogue(o.ecs)
		}),
	)
}

func (o *Overlay) buildSelector() {
	o.selectorBody = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewBorderedNineSliceColor(cfg.Dialogue.Background, cfg.Dialogue.Border, cfg.Dialogue.BorderWidth)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Dialogue.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.Dialogue.Spacing),
		)),
	)

	o.welcomeText = widget.NewText(
		widget.TextOpts.Text("", &o.titleFace, cfg.Dialogue.TextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
	o.selectorBody.AddChild(o.welcomeText)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(cfg.Dialogue.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
	o.englishButton = o.newButton(&o.buttonFace, o.accentImage(cfg.Dialogue.EnglishFill), func() {
		systems.SetLanguage(o.ecs, cfg.English)
	})
	o.japaneseButton = o.newButton(&o.buttonFace, o.accentImage(cfg.Dialogue.JapanFill), func() {
		systems.SetLanguage(o.ecs, cfg.Japanese)
	})
	buttons.AddChild(o.englishButton)
	buttons.AddChild(o.japaneseButton)
	o.selectorBody.AddChild(buttons)

	// No close mode: a language has to be picked
	o.Selector = widget.NewWindow(
		widget.WindowOpts.Contents(o.selectorBody),
		widget.WindowOpts.Modal(),
	)
}

func (o *Overlay) newButton(face *text.Face, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text("", face, &widget.ButtonTextColor{
			Idle: cfg.White,
		}),
		widget.ButtonOpts.TextPadding(&widget.Insets{
			Left:   12,
			Right:  12,
			Top:    6,
			Bottom: 6,
		}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Stretch: true,
		})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (o *Overlay) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.Sidebar.Button),
		Hover:   image.NewNineSliceColor(cfg.Sidebar.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.Sidebar.ButtonPressed),
	}
}

func (o *Overlay) linkImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.Transparent),
		Hover:   image.NewNineSliceColor(cfg.Sidebar.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.Sidebar.ButtonPressed),
	}
}

func (o *Overlay) accentImage(c color.RGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(c),
		Hover:   image.NewNineSliceColor(lighten(c)),
		Pressed: image.NewNineSliceColor(cfg.Dialogue.CloseShadow),
	}
}

func lighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 { return v + (255-v)/4 }
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}

// Localize sets every sidebar and window string for lang.
func (o *Overlay) Localize(lang cfg.Language) {
	feed := systems.Feed(o.ecs)

	o.titleLabel.Label = feed.String(lang, content.Title)
	o.toggleButton.SetText(feed.String(lang, content.Toggle))
	for i, topic := range content.Topics {
		o.topicButtons[i].SetText(feed.Label(lang, topic))
	}
	o.downloadHeading.Label = feed.String(lang, content.DownloadHeading)
	o.downloadText.Label = feed.String(lang, content.DownloadText)
	o.downloadButton.SetText(feed.String(lang, content.DownloadButton))

	o.closeButton.SetText(feed.String(lang, content.Close))

	// The choice is offered before a language is set; show both greetings
	o.welcomeText.Label = feed.String(cfg.English, content.Welcome) + "\n" + feed.String(cfg.Japanese, content.Welcome)
	o.englishButton.SetText(feed.String(cfg.English, content.LanguageName))
	o.japaneseButton.SetText(feed.String(cfg.Japanese, content.LanguageName))

	o.sidebar.RequestRelayout()
}

// ShowDialogue fills the dialogue with section and opens it. Called again
// while open it replaces the text in place.
func (o *Overlay) ShowDialogue(section content.Section, lang cfg.Language) {
	rect := dialogueRect(o.width, o.height, 0)
	maxWidth := float64(rect.Dx() - 2*cfg.Dialogue.Padding)

	o.dialogueTitle.Label = section.Title
	o.dialogueTitle.MaxWidth = maxWidth
	o.closeButton.SetText(systems.Feed(o.ecs).String(lang, content.Close))

	o.dialogueBody.RemoveChildren()
	o.dialogueBody.AddChild(o.dialogueTitle)
	for _, line := range section.Lines {
		o.dialogueBody.AddChild(widget.NewText(
			widget.TextOpts.Text(cfg.Dialogue.Bullet+line, &o.bodyFace, cfg.Dialogue.TextColor),
			widget.TextOpts.MaxWidth(maxWidth),
		))
	}
	o.dialogueBody.AddChild(o.closeButton)

	if !o.UI.IsWindowOpen(o.dialogue) {
		o.UI.AddWindow(o.dialogue)
	}
	o.placeDialogue()
}

// HideDialogue closes the dialogue window if it is showing.
func (o *Overlay) HideDialogue() {
	if o.UI.IsWindowOpen(o.dialogue) {
		o.dialogue.Close()
	}
}

func (o *Overlay) ShowLanguageSelect() {
	if !o.UI.IsWindowOpen(o.Selector) {
		o.UI.AddWindow(o.Selector)
	}
	o.placeSelector()
}

func (o *Overlay) HideLanguageSelect() {
	if o.UI.IsWindowOpen(o.Selector) {
		o.Selector.Close()
	}
}

// Resize moves the open windows to fit a new viewport.
func (o *Overlay) Resize(width, height int) {
	if width == o.width && height == o.height {
		return
	}
	o.width, o.height = width, height
	if o.UI.IsWindowOpen(o.dialogue) {
		o.placeDialogue()
	}
	if o.UI.IsWindowOpen(o.Selector) {
		o.placeSelector()
	}
}

func (o *Overlay) placeDialogue() {
	o.dialogueBody.RequestRelayout()
	_, h := o.dialogueBody.PreferredSize()
	o.dialogue.SetLocation(dialogueRect(o.width, o.height, h))
}

func (o *Overlay) placeSelector() {
	o.selectorBody.RequestRelayout()
	_, h := o.selectorBody.PreferredSize()
	o.Selector.SetLocation(selectorRect(o.width, o.height, h))
}

// Update runs the ebitenui input handling for the overlay.
func (o *Overlay) Update() {
	o.UI.Update()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.UI.Draw(screen)
}

// dialogueRect places the dialogue: min(80% of the width, 600) wide,
// centred, its top at 20% of the height. The height follows the content and
// stops at the bottom margin.
func dialogueRect(width, height, contentHeight int) stdimage.Rectangle {
	w := min(int(float64(width)*cfg.Dialogue.WidthFraction), cfg.Dialogue.MaxWidth)
	x := (width - w) / 2
	y := int(float64(height) * cfg.Dialogue.TopFraction)
	h := min(contentHeight, height-y-cfg.Dialogue.BottomMargin)
	return stdimage.Rect(x, y, x+w, y+max(h, 0))
}

// selectorRect centres the language choice on both axes.
func selectorRect(width, height, contentHeight int) stdimage.Rectangle {
	w := min(int(float64(width)*cfg.Dialogue.WidthFraction), cfg.Dialogue.SelectorWidth)
	h := min(contentHeight, height)
	x := (width - w) / 2
	y := (height - h) / 2
	return stdimage.Rect(x, y, x+w, y+h)
}
