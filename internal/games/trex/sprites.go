package trex

// spritePos is the top-left corner of an element in the sprite sheet.
type spritePos struct {
	X, Y int
}

// SpriteDefinition locates every element in one sprite sheet resolution.
type SpriteDefinition struct {
	CactusLarge spritePos
	CactusSmall spritePos
	Cloud       spritePos
	Horizon     spritePos
	Moon        spritePos
	Pterodactyl spritePos
	Restart     spritePos
	TextSprite  spritePos
	Trex        spritePos
	Star        spritePos
}

// LDPI is the 1x sprite sheet layout.
var LDPI = SpriteDefinition{
	CactusLarge: spritePos{332, 2},
	CactusSmall: spritePos{228, 2},
	Cloud:       spritePos{86, 2},
	Horizon:     spritePos{2, 54},
	Moon:        spritePos{484, 2},
	Pterodactyl: spritePos{134, 2},
	Restart:     spritePos{2, 2},
	TextSprite:  spritePos{655, 2},
	Trex:        spritePos{848, 2},
	Star:        spritePos{645, 2},
}

// HDPI is the 2x sprite sheet layout. Source sizes double on this sheet.
var HDPI = SpriteDefinition{
	CactusLarge: spritePos{652, 2},
	CactusSmall: spritePos{446, 2},
	Cloud:       spritePos{166, 2},
	Horizon:     spritePos{2, 104},
	Moon:        spritePos{954, 2},
	Pterodactyl: spritePos{260, 2},
	Restart:     spritePos{2, 2},
	TextSprite:  spritePos{1294, 2},
	Trex:        spritePos{1678, 2},
	Star:        spritePos{1276, 2},
}

// spriteSheet pairs a layout with its source scale.
type spriteSheet struct {
	def   SpriteDefinition
	scale int
}

func newSpriteSheet(hidpi bool) spriteSheet {
	if hidpi {
		return spriteSheet{def: HDPI, scale: 2}
	}
	return spriteSheet{def: LDPI, scale: 1}
}

// obstacleSprite returns the sheet position for an obstacle type name.
func (s spriteSheet) obstacleSprite(typ string) spritePos {
	switch typ {
	case "CACTUS_LARGE":
		return s.def.CactusLarge
	case "PTERODACTYL":
		return s.def.Pterodactyl
	default:
		return s.def.CactusSmall
	}
}
