// Package report renders the participant report workbook: the locked
// 42-column sheet, the radar chart, and the embedded icons.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/survey-profiler/internal/types"
)

// Radar chart target output size in pixels.
const (
	RadarPNGWidth  = 2160
	RadarPNGHeight = 1680
)

// radarAngles are the pentagon vertex angles in degrees, clockwise from the
// top, in fixed dimension order DT, TR, CO, CA, EP.
var radarAngles = [5]float64{-90, -18, 54, 126, 198}

// Radar geometry and typography, expressed at the 540x420 base size and
// scaled to the target.
const (
	radarBaseWidth  = 540.0
	radarBaseHeight = 420.0

	radarGridRadius  = 120.0
	radarLabelFont   = 10.5
	radarTickFont    = 8.5
	radarLabelOffset = 28.0
	radarBasePadding = 24.0
	radarMinTopPad   = 140.0

	radarGridStroke  = 1.6
	radarAxisStroke  = 1.6
	radarDataStroke  = 3.0
	radarPointStroke = 1.8
	radarPointRadius = 5.0
)

// Radar colors.
const (
	radarTextColor   = "#1f2937"
	radarGridFill    = "#c6c6c6"
	radarGridStroke2 = "#9ea3a8"
	radarDataFill    = "#0099CC"
)

// RadarSVG renders the pentagon radar chart for one participant. Absent
// dimensions plot at zero; present scores are clamped to [0, 5]. The
// viewBox grows to fit the dimension labels so none are clipped.
func RadarSVG(scores types.DimensionScores) string {
	values := make([]float64, len(types.DimensionOrder))
	for i, dim := range types.DimensionOrder {
		if v, ok := scores.Get(dim); ok {
			values[i] = math.Max(0, math.Min(5, v))
		}
	}
	return radarSVG(values, RadarPNGWidth, RadarPNGHeight)
}

func radarSVG(values []float64, targetW, targetH int) string {
	scale := math.Min(float64(targetW)/radarBaseWidth, float64(targetH)/radarBaseHeight)

	gridRadius := radarGridRadius * scale
	labelFont := radarLabelFont * scale
	tickFont := radarTickFont * scale

	angles := make([]float64, len(radarAngles))
	for i, deg := range radarAngles {
		angles[i] = deg * math.Pi / 180
	}

	polar := func(r, angle float64) (float64, float64) {
		return r * math.Cos(angle), r * math.Sin(angle)
	}

	// Label anchors and bounding boxes, used to size the viewBox.
	type labelPos struct {
		x, y   float64
		anchor string
	}
	labelOffset := radarLabelOffset * scale
	positions := make([]labelPos, len(types.DimensionOrder))
	contentLeft, contentTop := -gridRadius, -gridRadius
	contentRight, contentBottom := gridRadius, gridRadius

	for i, dim := range types.DimensionOrder {
		label := dim.Label()
		lx, ly := polar(gridRadius+labelOffset, angles[i])

		textWidth := float64(len(label)) * labelFont * 0.58
		textHeight := labelFont * 1.2

		var anchor string
		var left, right float64
		cos := math.Cos(angles[i])
		switch {
		case math.Abs(cos) < 0.25:
			anchor = "middle"
			left, right = lx-textWidth/2, lx+textWidth/2
		case cos > 0:
			anchor = "start"
			left, right = lx, lx+textWidth
		default:
			anchor = "end"
			left, right = lx-textWidth, lx
		}

		positions[i] = labelPos{x: lx, y: ly, anchor: anchor}
		contentLeft = math.Min(contentLeft, left)
		contentRight = math.Max(contentRight, right)
		contentTop = math.Min(contentTop, ly-textHeight/2)
		contentBottom = math.Max(contentBottom, ly+textHeight/2)
	}

	basePadding := radarBasePadding * scale
	padLeft := math.Max(basePadding, -contentLeft)
	padRight := math.Max(basePadding, contentRight)
	padTop := math.Max(math.Max(basePadding, -contentTop), radarMinTopPad*scale)
	padBottom := math.Max(basePadding, contentBottom)

	ringPoints := func(radius float64) string {
		pts := make([]string, len(angles))
		for i, angle := range angles {
			x, y := polar(radius, angle)
			pts[i] = fmt.Sprintf("%.2f,%.2f", x, y)
		}
		return strings.Join(pts, " ")
	}

	var body strings.Builder

	// Filled rings stack from the outside in.
	for level := 5; level >= 1; level-- {
		body.WriteString(fmt.Sprintf(
			`<polygon points="%s" fill="%s" fill-opacity="0.15" stroke="none"/>`,
			ringPoints(float64(level)/5*gridRadius), radarGridFill))
	}
	for level := 1; level <= 5; level++ {
		body.WriteString(fmt.Sprintf(
			`<polygon points="%s" fill="none" stroke="%s" stroke-width="%.2f"/>`,
			ringPoints(float64(level)/5*gridRadius), radarGridStroke2, radarGridStroke*scale))
	}
	for _, angle := range angles {
		x, y := polar(gridRadius, angle)
		body.WriteString(fmt.Sprintf(
			`<line x1="0" y1="0" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`,
			x, y, radarGridStroke2, radarAxisStroke*scale))
	}

	dataPts := make([]string, len(values))
	var circles strings.Builder
	for i, v := range values {
		x, y := polar(v/5*gridRadius, angles[i])
		dataPts[i] = fmt.Sprintf("%.2f,%.2f", x, y)
		circles.WriteString(fmt.Sprintf(
			`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="#ffffff" stroke-width="%.2f"/>`,
			x, y, radarPointRadius*scale, radarDataFill, radarPointStroke*scale))
	}
	body.WriteString(fmt.Sprintf(
		`<polygon points="%s" fill="%s" fill-opacity="0.32" stroke="%s" stroke-width="%.2f"/>`,
		strings.Join(dataPts, " "), radarDataFill, radarDataFill, radarDataStroke*scale))
	body.WriteString(circles.String())

	var text strings.Builder

	// Tick labels ride the vertical axis only.
	for level := 1; level <= 5; level++ {
		tx, ty := polar(float64(level)/5*gridRadius, angles[0])
		text.WriteString(fmt.Sprintf(
			`<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.2f" font-weight="700" fill="%s">%d</text>`,
			tx, ty, tickFont, radarTextColor, level))
	}
	for i, dim := range types.DimensionOrder {
		pos := positions[i]
		text.WriteString(fmt.Sprintf(
			`<text x="%.2f" y="%.2f" text-anchor="%s" dominant-baseline="central" font-size="%.2f" fill="%s">%s</text>`,
			pos.x, pos.y, pos.anchor, labelFont, radarTextColor, escapeXML(dim.Label())))
	}

	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%.2f %.2f %.2f %.2f">`+
			`<rect width="100%%" height="100%%" fill="white"/>`+
			`<g>%s</g>`+
			`<g font-family="Arial, sans-serif">%s</g>`+
			`</svg>`,
		targetW, targetH, -padLeft, -padTop, padLeft+padRight, padTop+padBottom,
		body.String(), text.String())
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
