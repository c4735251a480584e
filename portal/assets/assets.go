// Package assets holds the files the device reads from storage: the
// credentials file and the bitmap fonts.
package assets

import "embed"

// FS is rooted at this directory, so paths look like "fonts/DejaVuSansMono-24.bdf".
//
//go:embed secrets.json fonts/*.bdf
var FS embed.FS

// LabelFont is the font used for the centered message.
const LabelFont = "fonts/DejaVuSansMono-24.bdf"
