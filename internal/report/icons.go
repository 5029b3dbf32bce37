package report

import (
	"fmt"

	"github.com/jonathan/survey-profiler/internal/types"
)

// IconPNGSize is the square raster size for embedded icons.
const IconPNGSize = 1000

const (
	shieldSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
		`<path d="M50 6 L86 20 V50 C86 72 70 88 50 95 C30 88 14 72 14 50 V20 Z" fill="#0099CC" stroke="#006688" stroke-width="3"/>` +
		`<path d="M33 50 L45 62 L69 36" fill="none" stroke="#ffffff" stroke-width="7" stroke-linecap="round" stroke-linejoin="round"/>` +
		`</svg>`

	seedlingSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
		`<path d="M50 90 V52" stroke="#5a8f3c" stroke-width="6" stroke-linecap="round"/>` +
		`<path d="M50 56 C50 38 36 28 18 28 C18 46 32 56 50 56 Z" fill="#6fbf4a" stroke="#4a7a33" stroke-width="3"/>` +
		`<path d="M50 48 C50 32 62 22 80 22 C80 38 68 48 50 48 Z" fill="#8fd468" stroke="#4a7a33" stroke-width="3"/>` +
		`</svg>`

	toolsSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
		`<path d="M24 14 L24 34 L32 42 L40 34 L40 14" fill="none" stroke="#7a7f87" stroke-width="6" stroke-linecap="round"/>` +
		`<path d="M32 42 V86" stroke="#7a7f87" stroke-width="8" stroke-linecap="round"/>` +
		`<path d="M78 16 C66 16 58 26 62 38 L24 76 L34 86 L72 48 C84 52 94 44 94 32 L82 44 L70 38 L76 26 Z" fill="#b37e2e" stroke="#8a5f1e" stroke-width="2" transform="translate(-6,0) scale(0.92)"/>` +
		`</svg>`

	recommendationSVGTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
		`<circle cx="50" cy="50" r="42" fill="#2e8b57" stroke="#1e5f3b" stroke-width="4"/>` +
		`<text x="50" y="50" text-anchor="middle" dominant-baseline="central" font-family="Arial, sans-serif" font-size="30" font-weight="700" fill="#ffffff">%s</text>` +
		`</svg>`
)

// IconSVG returns the SVG asset for an icon. Recommendation icons are the
// green per-dimension badges; IconNone has no asset.
func IconSVG(icon types.Icon) (string, bool) {
	switch icon.Kind {
	case types.IconShield:
		return shieldSVG, true
	case types.IconSeedling:
		return seedlingSVG, true
	case types.IconTools:
		return toolsSVG, true
	case types.IconRecommendation:
		return fmt.Sprintf(recommendationSVGTemplate, string(icon.Dim)), true
	default:
		return "", false
	}
}
