/*
Package tile implements the repacking of legacy tile sheets into the padded
layout used by the StorageHub tile textures.

A tile sheet holds four frames of 16 by 16 pixels arranged in a 2 by 2 grid.
Legacy sheets are 32 by 32 pixels with the frames packed edge to edge. The
padded layout adds a 2 pixel transparent gutter after every frame so the
frames sit on an 18 pixel pitch in a 36 by 36 sheet.
*/
package tile

const (
	frameWidth  = 16
	frameHeight = frameWidth
	gutter      = 2
	pitchX      = frameWidth + gutter
	pitchY      = frameHeight + gutter
	framesX     = 2
	framesY     = 2

	// LegacySize is the width and height of an unpadded sheet
	LegacySize = frameWidth * framesX

	// PaddedSize is the width and height of a padded sheet
	PaddedSize = pitchX * framesX
)
