package pksm

import (
	"io/fs"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/hid"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/router"
)

const (
	fileRowHeight = 25
	fileTitleBar  = 20
	filePageSize  = 9
	stripeTile    = 7
)

// FileChooseOverlay browses a filesystem from its root and hands the
// chosen file path to OnChoose. Paths are absolute within the filesystem
// and directories end in "/".
type FileChooseOverlay struct {
	handle *router.Overlay
	loc    *Localizer
	fsys   fs.FS
	cursor *hid.Cursor

	dir     string
	entries []DirEntry
	// missing is set when dir could not be listed; entries then holds the
	// placeholder row only.
	missing bool

	OnChoose func(path string)
}

// ShowFileChooser pushes a file chooser onto screen, starting at "/".
func ShowFileChooser(screen *router.Screen, loc *Localizer, fsys fs.FS, onChoose func(path string)) *FileChooseOverlay {
	var f *FileChooseOverlay
	screen.PushOverlay(func(o *router.Overlay) router.Layer {
		f = &FileChooseOverlay{
			handle:   o,
			loc:      loc,
			fsys:     fsys,
			cursor:   hid.NewCursor(filePageSize, 1),
			dir:      "/",
			OnChoose: onChoose,
		}
		f.updateEntries()
		return f
	})
	return f
}

// Dir returns the directory being shown.
func (f *FileChooseOverlay) Dir() string {
	return f.dir
}

// Entries returns the rows being shown.
func (f *FileChooseOverlay) Entries() []DirEntry {
	return append([]DirEntry(nil), f.entries...)
}

// Cursor returns the selection cursor.
func (f *FileChooseOverlay) Cursor() *hid.Cursor {
	return f.cursor
}

func (f *FileChooseOverlay) updateEntries() {
	f.cursor.Select(0)

	entries, err := ListDir(f.fsys, f.dir)
	if err != nil {
		GetLogger().Warn("Unable to list folder", "dir", f.dir, "error", err)
		f.entries = []DirEntry{{Name: f.loc.T("FOLDER_DOESNT_EXIST")}}
		f.missing = true
		return
	}
	f.entries = entries
	f.missing = false
}

func (f *FileChooseOverlay) Update(in *input.Snapshot) {
	f.cursor.Navigate(in, len(f.entries))

	switch {
	case in.Pressed(constants.KeyB):
		if f.dir == "/" {
			f.handle.Remove()
			return
		}
		f.dir = parentDir(f.dir)
		f.updateEntries()

	case in.Pressed(constants.KeyA):
		if f.missing || len(f.entries) == 0 {
			return
		}
		entry := f.entries[f.cursor.FullIndex()]
		if entry.Folder {
			f.dir += entry.Name + "/"
			f.updateEntries()
			return
		}

		path := f.dir + entry.Name
		ShowChoice(f.handle.Screen(), f.loc, ChoiceSettings{
			Lines: [2]string{f.loc.T("FILE_CONFIRM_CHOICE"), "'" + entry.Name + "'"},
			OnChoice: func(action ChoiceAction) {
				if action != ChoiceConfirmed {
					return
				}
				GetLogger().Info("File chosen", "path", path)
				if f.OnChoose != nil {
					f.OnChoose(path)
				}
				f.handle.Remove()
			},
		})
	}
}

func (f *FileChooseOverlay) DrawTop(g *gui.Gui) {
	g.TileSprite(constants.SpriteBgStripeTop, stripeTile)
	g.SolidRect(0, 0, constants.TopWidth, fileTitleBar, constants.ColorDarkBlue)
	g.Text(f.dir, 15, 2, constants.FontSize11, constants.ColorYellow, constants.TextPosLeft, constants.TextPosTop)

	index := f.cursor.Index()
	g.SolidRect(0, fileTitleBar+index*fileRowHeight, constants.TopWidth, fileRowHeight, constants.ColorGrey)
	g.SolidRect(1, fileTitleBar+1+index*fileRowHeight, constants.TopWidth-2, fileRowHeight-2, constants.ColorMaskBlack)

	start := f.cursor.PageStart()
	for i := 0; i < f.cursor.PageSize() && start+i < len(f.entries); i++ {
		entry := f.entries[start+i]
		icon := constants.SpriteIconScript
		if entry.Folder {
			icon = constants.SpriteIconFolder
		}
		g.Sprite(icon, 3, 23+i*fileRowHeight)
		g.Text(g.Ellipsize(entry.Name, constants.FontSize11, constants.TopWidth-40), 30, 24+i*fileRowHeight, constants.FontSize11, constants.ColorWhite, constants.TextPosLeft, constants.TextPosTop)
	}
}

func (f *FileChooseOverlay) DrawBottom(g *gui.Gui) {
	g.Dim()
	g.Text(f.loc.T("A_SELECT")+"\n"+f.loc.T("B_BACK"), constants.BottomWidth/2, constants.ScreenHeight/2, constants.FontSize18, constants.ColorWhite, constants.TextPosCenter, constants.TextPosMiddle)
}
