package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"LayerBoard/internal/state"
)

func RunApp(session *state.Session) {
	myApp := app.New()
	myWindow := myApp.NewWindow("LayerBoard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	// Create the interactive board widget
	board := NewBoardWidget(session)

	// Layer panel and toolbar both drive the same session
	panel := NewLayerPanel(session)
	board.OnCommitted = panel.Rebuild
	toolbar := NewToolbar(session, board, myWindow)

	// Set up the main layout
	content := container.NewBorder(toolbar, nil, nil, panel.Container(), board)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
