package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"neonicons/internal/config"
)

// SettingsDialog edits output paths and writes the icon sets
type SettingsDialog struct {
	app        fyne.App
	config     *config.Config
	configPath string
	generation *Generation

	window        fyne.Window
	androidEntry  *widget.Entry
	iosEntry      *widget.Entry
	manifestEntry *widget.Entry
	icoEntry      *widget.Entry
	status        *widget.Label
	generateBtn   *widget.Button
}

// NewSettingsDialog creates a settings dialog editing cfg. Save writes to
// configPath; an empty configPath disables Save.
func NewSettingsDialog(app fyne.App, cfg *config.Config, configPath string) *SettingsDialog {
	return &SettingsDialog{
		app:        app,
		config:     cfg,
		configPath: configPath,
	}
}

// SetGeneration sets the runner used by the Generate button
func (s *SettingsDialog) SetGeneration(g *Generation) {
	s.generation = g
}

// apply copies the entry values into the config
func (s *SettingsDialog) apply() error {
	if s.androidEntry.Text == "" || s.iosEntry.Text == "" {
		return errors.New("android and iOS output directories are required")
	}
	s.config.AndroidResDir = s.androidEntry.Text
	s.config.IOSAppIconSetDir = s.iosEntry.Text
	s.config.ManifestPath = s.manifestEntry.Text
	s.config.ICOPath = s.icoEntry.Text
	return nil
}

func newPathEntry(value, placeholder string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	e.SetText(value)
	return e
}

// Show displays the settings dialog
func (s *SettingsDialog) Show() {
	s.window = s.app.NewWindow("Icon Output")
	s.window.Resize(fyne.NewSize(520, 360))

	pathsLabel := widget.NewLabel("Output")
	pathsLabel.TextStyle = fyne.TextStyle{Bold: true}

	s.androidEntry = newPathEntry(s.config.AndroidResDir, "../android/app/src/main/res")
	s.iosEntry = newPathEntry(s.config.IOSAppIconSetDir, "../ios/Runner/Assets.xcassets/AppIcon.appiconset")
	s.manifestEntry = newPathEntry(s.config.ManifestPath, "optional, e.g. icons.db")
	s.icoEntry = newPathEntry(s.config.ICOPath, "optional, e.g. build/app.ico")

	form := widget.NewForm(
		widget.NewFormItem("Android res", s.androidEntry),
		widget.NewFormItem("iOS appiconset", s.iosEntry),
		widget.NewFormItem("Manifest", s.manifestEntry),
		widget.NewFormItem("Windows icon", s.icoEntry),
	)

	s.status = widget.NewLabel("")

	s.generateBtn = widget.NewButton("Generate", s.generate)
	s.generateBtn.Importance = widget.HighImportance

	saveBtn := widget.NewButton("Save", func() {
		if err := s.apply(); err != nil {
			dialog.ShowError(err, s.window)
			return
		}
		if err := s.config.Save(s.configPath); err != nil {
			dialog.ShowError(err, s.window)
			return
		}
		dialog.ShowInformation("Saved", fmt.Sprintf("Settings saved to %s", s.configPath), s.window)
	})
	if s.configPath == "" {
		saveBtn.Disable()
	}

	closeBtn := widget.NewButton("Close", func() {
		s.window.Close()
	})

	buttons := container.NewHBox(layout.NewSpacer(), s.generateBtn, saveBtn, closeBtn, layout.NewSpacer())

	content := container.NewVBox(
		pathsLabel,
		form,
		widget.NewSeparator(),
		s.status,
		buttons,
	)

	s.window.SetContent(container.NewPadded(content))
	s.window.Show()
}

// generate starts a background run and reports the outcome. It refuses to
// start while another run (from the tray, say) is in flight.
func (s *SettingsDialog) generate() {
	if s.generation == nil {
		return
	}
	if err := s.apply(); err != nil {
		dialog.ShowError(err, s.window)
		return
	}

	s.generateBtn.Disable()
	s.status.SetText("Generating...")
	err := s.generation.Start(s.config, func(err error) {
		s.generateBtn.Enable()
		if err != nil {
			s.status.SetText("Failed")
			dialog.ShowError(err, s.window)
			return
		}
		s.status.SetText("All icons generated")
	})
	if err != nil {
		s.generateBtn.Enable()
		s.status.SetText("Already generating")
	}
}
