package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solar-winds/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(5, 6, 16)
	RgbStarDim    = tcell.NewRGBColor(70, 70, 90)
	RgbStarBright = tcell.NewRGBColor(200, 200, 230)

	RgbPlayer           = tcell.NewRGBColor(0, 255, 255)
	RgbPlayerProjectile = tcell.NewRGBColor(120, 255, 120)
	RgbEnemyProjectile  = tcell.NewRGBColor(255, 90, 60)
	RgbTargetLock       = tcell.NewRGBColor(255, 215, 0)
	RgbExplosion        = tcell.NewRGBColor(255, 160, 40)

	RgbStation     = tcell.NewRGBColor(150, 170, 200)
	RgbStationName = tcell.NewRGBColor(180, 180, 180)
	RgbWaypoint    = tcell.NewRGBColor(255, 0, 255)

	RgbHull     = tcell.NewRGBColor(80, 220, 80)
	RgbShields  = tcell.NewRGBColor(80, 160, 255)
	RgbEnergy   = tcell.NewRGBColor(255, 220, 80)
	RgbBarEmpty = tcell.NewRGBColor(40, 40, 50)
	RgbHUDText  = tcell.NewRGBColor(220, 220, 220)
	RgbHUDDim   = tcell.NewRGBColor(120, 120, 130)
	RgbHUDBg    = tcell.NewRGBColor(18, 18, 30)
	RgbCredits  = tcell.NewRGBColor(255, 215, 0)
	RgbSelected = tcell.NewRGBColor(135, 206, 250)
	RgbMessage  = tcell.NewRGBColor(255, 255, 255)
	RgbWarning  = tcell.NewRGBColor(255, 80, 80)
	RgbPanelBg  = tcell.NewRGBColor(20, 24, 40)
)

// enemyColors is indexed by core.EnemyType
var enemyColors = [core.EnemyTypeCount]tcell.Color{
	core.EnemyScout:   tcell.NewRGBColor(255, 255, 100),
	core.EnemyFighter: tcell.NewRGBColor(255, 80, 80),
	core.EnemyHeavy:   tcell.NewRGBColor(200, 90, 255),
}

// EnemyColor returns the hull color for an enemy type
func EnemyColor(t core.EnemyType) tcell.Color {
	if t < 0 || t >= core.EnemyTypeCount {
		return RgbHUDText
	}
	return enemyColors[t]
}

// gaugeColor shades a resource bar toward red as it empties
func gaugeColor(base tcell.Color, pct float64) tcell.Color {
	if pct < 25 {
		return RgbWarning
	}
	return base
}
