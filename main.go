package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/morsekit/morse-translator/internal/audio"
	"github.com/morsekit/morse-translator/internal/config"
	"github.com/morsekit/morse-translator/internal/platform"
	"github.com/morsekit/morse-translator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.morsekit.morse-translator"
	AppName = "Morse Translator"

	WindowWidth  = 640
	WindowHeight = 320
)

func main() {
	// Log version information
	fmt.Printf("Morse Translator v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		fmt.Printf("failed to ensure output dir: %v\n", err)
	}

	audioSvc := audio.NewService(outputDir, audio.Params{
		ToneHz:     settings.GetToneHz(),
		Volume:     settings.GetVolume(),
		SampleRate: settings.GetSampleRate(),
		WPM:        settings.GetWPM(),
	})

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, audioSvc)

	// Watch the output directory so externally removed files are noticed
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watcher, err := platform.NewOutputWatcher(outputDir, rootUI.OutputDirChanged); err != nil {
		fmt.Printf("failed to watch output dir: %v\n", err)
	} else {
		go watcher.Run(ctx)
	}

	// Show and run
	myWindow.ShowAndRun()
}
