// Jigsaw Puzzle Workbench
//
// A cross-platform desktop application that cuts a source image into
// interlocking jigsaw pieces, lets you assemble them by dragging, and
// exports the piece outlines for fabrication.
//
// Build:
//   go build -o jigsaw ./cmd/jigsaw
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o jigsaw.exe ./cmd/jigsaw
//   GOOS=darwin  GOARCH=amd64 go build -o jigsaw-darwin ./cmd/jigsaw

package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pieceworks/jigsaw/internal/model"
	"github.com/pieceworks/jigsaw/internal/project"
	"github.com/pieceworks/jigsaw/internal/ui"
)

func main() {
	application := app.NewWithID("com.pieceworks.jigsaw")

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("cannot read config, using defaults: %v", err)
		config = model.DefaultAppConfig()
	}

	window := application.NewWindow("Jigsaw Puzzle Workbench")

	appUI := ui.NewApp(application, window, config)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	window.CenterOnScreen()

	window.Show()
	application.Run()
}
