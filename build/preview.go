package build

import (
	_ "embed"
	"os"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"spritec/sprite"
)

//go:embed preview.html.tmpl
var previewTmpl string

type previewBlock struct {
	Class string
	File  string
	X     int
	Y     int
	W     int
	H     int
}

type previewData struct {
	Sheet   string
	BuildID string
	Blocks  []previewBlock
}

// writePreview renders an HTML page showing every block cut out of the
// generated sheet, one element per registered reference.
func writePreview(path, sheet string, blocks []*sprite.Block, buildID string) error {
	tmpl, err := template.New("preview").Funcs(sprig.FuncMap()).Parse(previewTmpl)
	if err != nil {
		return err
	}

	data := previewData{Sheet: sheet, BuildID: buildID}
	for _, b := range blocks {
		data.Blocks = append(data.Blocks, previewBlock{
			Class: className(b.Filename),
			File:  b.Filename,
			X:     b.X,
			Y:     b.Y,
			W:     b.Width,
			H:     b.Height,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}
