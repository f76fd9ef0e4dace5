package build

import (
	"strconv"

	"github.com/beevik/etree"

	"spritec/sprite"
)

// writeManifest produces the XML atlas manifest: per-block file name and
// geometry on the sheet, for consumers that cut the sheet up outside CSS.
func writeManifest(path, sheet string, blocks []*sprite.Block) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	atlas := doc.CreateElement("atlas")
	atlas.CreateAttr("sheet", sheet)

	for _, b := range blocks {
		e := atlas.CreateElement("block")
		e.CreateAttr("id", strconv.Itoa(b.ID))
		e.CreateAttr("file", b.Filename)
		e.CreateAttr("x", strconv.Itoa(b.X))
		e.CreateAttr("y", strconv.Itoa(b.Y))
		e.CreateAttr("width", strconv.Itoa(b.Width))
		e.CreateAttr("height", strconv.Itoa(b.Height))
	}

	doc.Indent(2)
	return doc.WriteToFile(path)
}
