package iconset

// Density is an Android launcher density bucket
type Density struct {
	Name string
	Size int
}

// Slot is one entry of the iOS appiconset
type Slot struct {
	Filename string
	Size     int
}

var androidDensities = []Density{
	{"mdpi", 48},
	{"hdpi", 72},
	{"xhdpi", 96},
	{"xxhdpi", 144},
	{"xxxhdpi", 192},
}

var iosSlots = []Slot{
	{"Icon-App-20x20@1x.png", 20},
	{"Icon-App-20x20@2x.png", 40},
	{"Icon-App-20x20@3x.png", 60},
	{"Icon-App-29x29@1x.png", 29},
	{"Icon-App-29x29@2x.png", 58},
	{"Icon-App-29x29@3x.png", 87},
	{"Icon-App-40x40@1x.png", 40},
	{"Icon-App-40x40@2x.png", 80},
	{"Icon-App-40x40@3x.png", 120},
	{"Icon-App-60x60@2x.png", 120},
	{"Icon-App-60x60@3x.png", 180},
	{"Icon-App-76x76@1x.png", 76},
	{"Icon-App-76x76@2x.png", 152},
	{"Icon-App-83.5x83.5@2x.png", 167},
	{"Icon-App-1024x1024@1x.png", 1024},
}

// Android file names written into every mipmap directory
const (
	LauncherFile   = "ic_launcher.png"
	BackgroundFile = "ic_launcher_background.png"
	ForegroundFile = "ic_launcher_foreground.png"
)

// ICOSize is the edge length of the optional Windows icon
const ICOSize = 256

// AndroidDensities returns the Android density table in generation order
func AndroidDensities() []Density {
	return append([]Density(nil), androidDensities...)
}

// IOSSlots returns the iOS appiconset table in generation order
func IOSSlots() []Slot {
	return append([]Slot(nil), iosSlots...)
}

// MipmapDir returns the directory name for a density bucket
func (d Density) MipmapDir() string {
	return "mipmap-" + d.Name
}

// slot names an Android file for the manifest, e.g. "mipmap-hdpi/ic_launcher.png"
func (d Density) slot(file string) string {
	return d.MipmapDir() + "/" + file
}
