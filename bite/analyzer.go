package bite

import (
	"image"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/denguetect/denguetect-api/schema"
)

const (
	gridX = 16
	gridY = 12

	// DefaultROIRadius is the ROI half width, as a fraction of the shorter
	// side, used when the caller gives a centre only. An explicit radius of
	// zero or less gives the minimum half width.
	DefaultROIRadius = 0.25

	minROIHalfWidth = 8
)

// label thresholds, with and without a caller supplied ROI
type thresholds struct {
	minFracGlobal  float64
	minFracROI     float64
	minTileDensity float64
}

var (
	roiThresholds     = thresholds{minFracGlobal: 0.008, minFracROI: 0.015, minTileDensity: 0.05}
	defaultThresholds = thresholds{minFracGlobal: 0.02, minFracROI: 0.05, minTileDensity: 0.10}
)

// box is an inclusive pixel rectangle.
type box struct {
	x0, y0, x1, y1 int
}

func (b box) contains(x, y int) bool {
	return x >= b.x0 && x <= b.x1 && y >= b.y0 && y <= b.y1
}

// centerBox is the ROI square, clamped to the image, or the central 60% of
// each axis when there is no ROI.
func centerBox(w, h int, roi *schema.ROI) box {
	if roi == nil {
		return box{
			x0: int(float64(w) * 0.20), x1: int(float64(w) * 0.80),
			y0: int(float64(h) * 0.20), y1: int(float64(h) * 0.80),
		}
	}

	rc := int(float64(minInt(w, h)) * roi.R)
	if rc < minROIHalfWidth {
		rc = minROIHalfWidth
	}

	cx := int(roi.CX * float64(w))
	cy := int(roi.CY * float64(h))
	return box{
		x0: maxInt(0, cx-rc), x1: minInt(w-1, cx+rc),
		y0: maxInt(0, cy-rc), y1: minInt(h-1, cy+rc),
	}
}

// Analyze decodes an image and labels its dominant discoloration. It also
// returns the decoded full size image. A decode failure, or an image over
// maxPixels, returns an *ImageDecodeError and no analysis.
func Analyze(data []byte, roi *schema.ROI, maxPixels int) (*schema.BiteAnalysis, *image.NRGBA, error) {
	if len(data) == 0 {
		return nil, nil, ErrNoImage
	}

	img, format, err := Decode(data, maxPixels)
	if err != nil {
		return nil, nil, err
	}

	a := AnalyzeImage(img, roi)
	log.WithField("prefix", "bite").Debugf("format: %s, size: %dx%d, label: %s, stats: %+v",
		format, a.Width, a.Height, a.LabelCls, a.Stats)
	return a, img, nil
}

// AnalyzeImage runs the classifier over an already decoded image.
func AnalyzeImage(src *image.NRGBA, roi *schema.ROI) *schema.BiteAnalysis {
	img := downscale(src)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	stats := collectStats(img, centerBox(w, h, roi))
	cls := decideLabel(stats, roi != nil)

	return &schema.BiteAnalysis{
		LabelText: labelText(cls),
		LabelCls:  cls,
		Stats:     stats,
		ROI:       roi,
		Width:     w,
		Height:    h,
	}
}

func collectStats(img *image.NRGBA, center box) schema.BiteAnalysisStats {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	cellW := maxInt(1, w/gridX)
	cellH := maxInt(1, h/gridY)

	var (
		stats schema.BiteAnalysisStats
		tileT [gridX * gridY]int
		tileR [gridX * gridY]int
		tileY [gridX * gridY]int
	)

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+3]
			c := classifyPixel(p[0], p[1], p[2])
			if c.skip {
				continue
			}

			if c.red {
				stats.Red++
			} else if c.yellow {
				stats.Yellow++
			}
			stats.Total++

			if center.contains(x, y) {
				stats.CenterTotal++
				if c.red {
					stats.RedC++
					if c.strongRed {
						stats.StrongRedC++
					}
				} else if c.yellow {
					stats.YellowC++
				}
			}

			ti := minInt(gridY-1, y/cellH)*gridX + minInt(gridX-1, x/cellW)
			tileT[ti]++
			if c.red {
				tileR[ti]++
			} else if c.yellow {
				tileY[ti]++
			}
			if c.strongRed {
				stats.StrongRed++
			}
		}
	}

	for i, t := range tileT {
		if t == 0 {
			continue
		}
		stats.TileMaxRedDensity = math.Max(stats.TileMaxRedDensity, float64(tileR[i])/float64(t))
		stats.TileMaxYellowDensity = math.Max(stats.TileMaxYellowDensity, float64(tileY[i])/float64(t))
	}

	return stats
}

func fraction(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func decideLabel(s schema.BiteAnalysisStats, roiPresent bool) schema.BiteLabelClass {
	t := defaultThresholds
	if roiPresent {
		t = roiThresholds
	}

	rFrac := fraction(s.Red, s.Total)
	yFrac := fraction(s.Yellow, s.Total)
	rFracC := fraction(s.RedC, s.CenterTotal)
	yFracC := fraction(s.YellowC, s.CenterTotal)

	strongRedOK := roiPresent &&
		float64(s.StrongRedC) >= math.Max(8, float64(s.CenterTotal)*0.005)
	strongRedGlobalOK := !roiPresent &&
		float64(s.StrongRed) >= math.Max(20, float64(s.Total)*0.0025) &&
		s.TileMaxRedDensity >= 0.06

	redOK := strongRedOK || strongRedGlobalOK ||
		((rFrac >= t.minFracGlobal || rFracC >= t.minFracROI) &&
			s.TileMaxRedDensity >= t.minTileDensity &&
			rFrac >= yFrac*1.05)
	if redOK {
		return schema.BiteLabelRed
	}

	if (yFrac >= t.minFracGlobal || yFracC >= t.minFracROI) && s.TileMaxYellowDensity >= t.minTileDensity {
		return schema.BiteLabelYellow
	}
	return schema.BiteLabelMuted
}

func labelText(cls schema.BiteLabelClass) string {
	switch cls {
	case schema.BiteLabelRed:
		return schema.BiteLabelTextRed
	case schema.BiteLabelYellow:
		return schema.BiteLabelTextYellow
	default:
		return schema.BiteLabelTextMuted
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
