package render

// Palette
var (
	RgbBackground = RGB{18, 8, 8}
	RgbGround     = RGB{120, 92, 60}
	RgbGroundTop  = RGB{86, 160, 64}

	RgbEntity     = RGB{230, 230, 240}
	RgbWalking    = RGB{200, 220, 255}
	RgbPlasmaBolt = RGB{120, 200, 255}
	RgbPlasmaPop  = RGB{255, 180, 80}
	RgbGun        = RGB{160, 160, 170}

	RgbDebug   = RGB{255, 0, 0}
	RgbHitbox  = RGB{255, 0, 0}
	RgbTexbox  = RGB{0, 255, 0}
	RgbTracked = RGB{255, 255, 0}
	RgbPopup   = RGB{255, 255, 255}
	RgbMinimap = RGB{200, 200, 200}
)
