package core

// SpriteKind identifies which element of the sprite sheet a draw call uses.
type SpriteKind int

const (
	SpriteTrex SpriteKind = iota
	SpriteCactusSmall
	SpriteCactusLarge
	SpritePterodactyl
	SpriteHorizon
	SpriteCloud
	SpriteMoon
	SpriteStar
	SpriteText
	SpriteRestart
)

// String returns the sprite name.
func (k SpriteKind) String() string {
	switch k {
	case SpriteTrex:
		return "trex"
	case SpriteCactusSmall:
		return "cactus-small"
	case SpriteCactusLarge:
		return "cactus-large"
	case SpritePterodactyl:
		return "pterodactyl"
	case SpriteHorizon:
		return "horizon"
	case SpriteCloud:
		return "cloud"
	case SpriteMoon:
		return "moon"
	case SpriteStar:
		return "star"
	case SpriteText:
		return "text"
	case SpriteRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Sprite tags a draw call with what is being drawn.
// Index is element specific: the frame x offset for the T-rex, a glyph index
// for text (-1 for the game-over caption), the group size of a cactus, the
// animation frame of a pterodactyl, the moon phase, the star number, and 1
// for a bumpy horizon segment.
type Sprite struct {
	Kind  SpriteKind
	Index int
}

// Canvas is the drawing surface a game renders into.
// Coordinates are logical pixels; Src addresses the sprite sheet.
type Canvas interface {
	// Clear wipes the surface before a frame.
	Clear()
	// DrawSprite copies the src region of the sprite sheet into dst.
	// Alpha is 1 for opaque draws and lower for fading night elements.
	DrawSprite(sp Sprite, src, dst Rect, alpha float64)
	// StrokeRect outlines r, used for the collision box overlay.
	StrokeRect(r Rect, c Color)
	// SetInverted switches the surface to night colours.
	SetInverted(on bool)
}
