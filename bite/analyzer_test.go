package bite

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denguetect/denguetect-api/schema"
)

var (
	biteRed    = color.RGBA{200, 30, 30, 255}
	biteYellow = color.RGBA{230, 210, 40, 255}
	midGray    = color.RGBA{128, 128, 128, 255}
	skinTone   = color.RGBA{200, 170, 150, 255}
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestAnalyzeSolidRed(t *testing.T) {
	a, _, err := Analyze(encodePNG(t, solidImage(100, 80, biteRed)), nil, 0)
	assert.NoError(t, err)

	assert.Equal(t, schema.BiteLabelRed, a.LabelCls)
	assert.Equal(t, schema.BiteLabelTextRed, a.LabelText)
	assert.Equal(t, 8000, a.Stats.Total)
	assert.Equal(t, 8000, a.Stats.Red)
	assert.Equal(t, 8000, a.Stats.StrongRed)
	assert.Equal(t, a.Stats.CenterTotal, a.Stats.RedC)
	assert.Equal(t, 1.0, a.Stats.TileMaxRedDensity)
	assert.Equal(t, 0.0, a.Stats.TileMaxYellowDensity)
	assert.Equal(t, 100, a.Width)
	assert.Equal(t, 80, a.Height)
}

func TestAnalyzeMidGray(t *testing.T) {
	a, _, err := Analyze(encodePNG(t, solidImage(64, 64, midGray)), nil, 0)
	assert.NoError(t, err)

	assert.Equal(t, schema.BiteLabelMuted, a.LabelCls)
	assert.Equal(t, schema.BiteLabelTextMuted, a.LabelText)
	assert.Equal(t, schema.BiteAnalysisStats{}, a.Stats)
}

func TestAnalyzeSolidYellow(t *testing.T) {
	a, _, err := Analyze(encodePNG(t, solidImage(120, 90, biteYellow)), nil, 0)
	assert.NoError(t, err)

	assert.Equal(t, schema.BiteLabelYellow, a.LabelCls)
	assert.Equal(t, schema.BiteLabelTextYellow, a.LabelText)
	assert.Equal(t, 0, a.Stats.Red)
	assert.Equal(t, a.Stats.Total, a.Stats.Yellow)
	assert.Equal(t, 1.0, a.Stats.TileMaxYellowDensity)
}

func TestAnalyzeSkinIsCountedButUnlabelled(t *testing.T) {
	a, _, err := Analyze(encodePNG(t, solidImage(50, 50, skinTone)), nil, 0)
	assert.NoError(t, err)

	assert.Equal(t, schema.BiteLabelMuted, a.LabelCls)
	assert.Equal(t, 2500, a.Stats.Total)
	assert.Equal(t, 0, a.Stats.Red)
	assert.Equal(t, 0, a.Stats.Yellow)
}

// a small red spot off centre on skin is only found when the ROI points at it
func TestAnalyzeSmallSpotNeedsROI(t *testing.T) {
	img := solidImage(200, 200, skinTone)
	for y := 150; y < 158; y++ {
		for x := 150; x < 158; x++ {
			img.Set(x, y, biteRed)
		}
	}
	data := encodePNG(t, img)

	plain, _, err := Analyze(data, nil, 0)
	assert.NoError(t, err)
	assert.Equal(t, schema.BiteLabelMuted, plain.LabelCls)
	assert.Equal(t, 64, plain.Stats.StrongRed)

	roi := &schema.ROI{CX: 0.77, CY: 0.77, R: 0.05}
	focused, _, err := Analyze(data, roi, 0)
	assert.NoError(t, err)
	assert.Equal(t, schema.BiteLabelRed, focused.LabelCls)
	assert.Equal(t, 64, focused.Stats.StrongRedC)
	assert.Equal(t, 441, focused.Stats.CenterTotal)
	assert.Equal(t, roi, focused.ROI)
}

func TestAnalyzeDownscalesWideImages(t *testing.T) {
	a, _, err := Analyze(encodePNG(t, solidImage(400, 300, biteRed)), nil, 0)
	assert.NoError(t, err)

	assert.Equal(t, MaxWidth, a.Width)
	assert.Equal(t, 150, a.Height)
	assert.Equal(t, 200*150, a.Stats.Total)
	assert.Equal(t, schema.BiteLabelRed, a.LabelCls)
}

func TestAnalyzeKeepsAtLeastOneRow(t *testing.T) {
	a, _, err := Analyze(encodePNG(t, solidImage(1000, 2, biteRed)), nil, 0)
	assert.NoError(t, err)

	assert.Equal(t, MaxWidth, a.Width)
	assert.Equal(t, 1, a.Height)
}

func TestAnalyzeErrors(t *testing.T) {
	_, _, err := Analyze(nil, nil, 0)
	assert.Equal(t, ErrNoImage, err)

	a, _, err := Analyze([]byte("definitely not an image"), nil, 0)
	assert.Nil(t, a)
	assert.Error(t, err)
	assert.True(t, IsImageDecodeError(err))

	truncated := encodePNG(t, solidImage(20, 20, biteRed))
	_, _, err = Analyze(truncated[:len(truncated)/2], nil, 0)
	assert.True(t, IsImageDecodeError(err))
}

// hugePNG is a valid 1x1 png whose header declares w x h pixels.
func hugePNG(t *testing.T, w, h uint32) []byte {
	data := encodePNG(t, solidImage(1, 1, biteRed))
	// signature(8) length(4) "IHDR"(4) width(4) height(4) ... crc at 29
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestAnalyzeRejectsOversizedDimensions(t *testing.T) {
	data := hugePNG(t, 60000, 60000)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 60000, cfg.Width)

	a, img, err := Analyze(data, nil, 0)
	assert.Nil(t, a)
	assert.Nil(t, img)
	assert.True(t, IsImageDecodeError(err))
	assert.True(t, IsImageTooLarge(err))

	// the limit is inclusive and configurable
	small := encodePNG(t, solidImage(20, 10, biteRed))
	_, _, err = Decode(small, 200)
	assert.NoError(t, err)
	_, _, err = Decode(small, 199)
	assert.True(t, IsImageTooLarge(err))

	// ordinary decode failures are not size failures
	_, _, err = Decode([]byte("definitely not an image"), 0)
	assert.True(t, IsImageDecodeError(err))
	assert.False(t, IsImageTooLarge(err))
}

func TestAnalyzeReturnsFullSizeImage(t *testing.T) {
	a, img, err := Analyze(encodePNG(t, solidImage(400, 300, biteRed)), nil, 0)
	assert.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())
	assert.Equal(t, MaxWidth, a.Width)
}

func TestCenterBox(t *testing.T) {
	assert.Equal(t, box{x0: 20, y0: 10, x1: 80, y1: 40}, centerBox(100, 50, nil))

	assert.Equal(t, box{x0: 38, y0: 13, x1: 62, y1: 37},
		centerBox(100, 50, &schema.ROI{CX: 0.5, CY: 0.5, R: 0.25}))

	// a zero or negative radius gives the minimum half width
	assert.Equal(t, box{x0: 42, y0: 17, x1: 58, y1: 33},
		centerBox(100, 50, &schema.ROI{CX: 0.5, CY: 0.5}))
	assert.Equal(t, box{x0: 42, y0: 17, x1: 58, y1: 33},
		centerBox(100, 50, &schema.ROI{CX: 0.5, CY: 0.5, R: -1}))

	// clamped to the image and never narrower than 8 pixels each way
	assert.Equal(t, box{x0: 0, y0: 0, x1: 8, y1: 8},
		centerBox(100, 50, &schema.ROI{CX: 0, CY: 0, R: 0.01}))
	assert.Equal(t, box{x0: 91, y0: 41, x1: 99, y1: 49},
		centerBox(100, 50, &schema.ROI{CX: 0.995, CY: 0.995, R: 0.01}))
}

func TestDecideLabel(t *testing.T) {
	// red needs to beat yellow by 5%
	s := schema.BiteAnalysisStats{
		Red: 100, Yellow: 100, Total: 1000,
		TileMaxRedDensity: 0.5, TileMaxYellowDensity: 0.5,
	}
	assert.Equal(t, schema.BiteLabelYellow, decideLabel(s, false))

	s.Red = 106
	assert.Equal(t, schema.BiteLabelRed, decideLabel(s, false))

	// low tile density blocks the fraction rule
	s.TileMaxRedDensity = 0.09
	assert.Equal(t, schema.BiteLabelYellow, decideLabel(s, false))
	assert.Equal(t, schema.BiteLabelRed, decideLabel(s, true))

	// strong red in the ROI is enough on its own
	roi := schema.BiteAnalysisStats{Total: 5000, CenterTotal: 2000, StrongRedC: 10, StrongRed: 10}
	assert.Equal(t, schema.BiteLabelRed, decideLabel(roi, true))
	roi.StrongRedC = 9
	assert.Equal(t, schema.BiteLabelMuted, decideLabel(roi, true))
	roi.CenterTotal = 1000
	assert.Equal(t, schema.BiteLabelRed, decideLabel(roi, true))
	roi.StrongRedC = 7
	assert.Equal(t, schema.BiteLabelMuted, decideLabel(roi, true))

	// without an ROI strong red must be widespread and locally dense
	global := schema.BiteAnalysisStats{Total: 40000, StrongRed: 100, TileMaxRedDensity: 0.06}
	assert.Equal(t, schema.BiteLabelRed, decideLabel(global, false))
	global.TileMaxRedDensity = 0.05
	assert.Equal(t, schema.BiteLabelMuted, decideLabel(global, false))

	assert.Equal(t, schema.BiteLabelMuted, decideLabel(schema.BiteAnalysisStats{}, false))
	assert.Equal(t, schema.BiteLabelMuted, decideLabel(schema.BiteAnalysisStats{}, true))
}
