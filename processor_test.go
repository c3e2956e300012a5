package seamcarver

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_ShouldRemoveTheRequestedSeams(t *testing.T) {
	img := newNoiseImage(imgWidth, imgHeight, 1)

	p := &Processor{Seams: 5, Workers: 2}
	res, err := p.Carve(img)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 5, imgHeight), res.Image.Bounds())
	assert.Len(t, res.SeamEnergies, 5)
	assert.Nil(t, res.SeamMap)
}

func TestProcessor_ShouldNeverEmptyTheImage(t *testing.T) {
	img := newNoiseImage(imgWidth, imgHeight, 2)

	p := &Processor{Seams: 100}
	res, err := p.Carve(img)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Image.Bounds().Dx())
	assert.Equal(t, imgHeight, res.Image.Bounds().Dy())
	assert.Len(t, res.SeamEnergies, imgWidth-1)
}

func TestProcessor_SeamCount(t *testing.T) {
	testCases := []struct {
		name string
		proc Processor
		want int
	}{
		{"seams", Processor{Seams: 3}, 3},
		{"seams over width", Processor{Seams: 30}, 9},
		{"seams precede the new width", Processor{Seams: 2, NewWidth: 5}, 2},
		{"new width", Processor{NewWidth: 7}, 3},
		{"new width equals image width", Processor{NewWidth: 10}, 0},
		{"percentage", Processor{NewWidth: 20, Percentage: true}, 2},
		{"full percentage", Processor{NewWidth: 100, Percentage: true}, 9},
		{"nothing to do", Processor{}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.proc.seamCount(imgWidth)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestProcessor_ShouldRejectInvalidOptions(t *testing.T) {
	img := newNoiseImage(imgWidth, imgHeight, 3)

	for _, p := range []*Processor{
		{Seams: -1},
		{NewWidth: -4},
		{NewWidth: imgWidth + 1},
		{NewWidth: 120, Percentage: true},
		{Seams: 2, SeamMapPath: "seams.png", SeamColor: "not a color"},
	} {
		_, err := p.Carve(img)
		assert.ErrorIs(t, err, ErrInvalidOptions, "%+v", p)
	}
}

func TestProcessor_ShouldRejectEmptyImages(t *testing.T) {
	p := &Processor{Seams: 1}

	_, err := p.Carve(nil)
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = p.Carve(image.NewNRGBA(image.Rect(0, 0, 0, 5)))
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = p.Carve(image.NewNRGBA(image.Rect(0, 0, 5, 0)))
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestProcessor_ZeroSeamsShouldKeepTheImage(t *testing.T) {
	img := newNoiseImage(imgWidth, imgHeight, 4)

	res, err := (&Processor{}).Carve(img)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, res.Image.Pix)
	assert.Empty(t, res.SeamEnergies)
	assert.NotNil(t, res.Energy)
}

func TestProcessor_SingleColumnImage(t *testing.T) {
	img := newNoiseImage(1, imgHeight, 5)

	res, err := (&Processor{Seams: 3}).Carve(img)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, res.Image.Pix)
	assert.Empty(t, res.SeamEnergies)
}

func TestProcessor_EnergyShouldDescribeTheSourceImage(t *testing.T) {
	img := newNoiseImage(imgWidth, imgHeight, 6)

	res, err := (&Processor{Seams: 4}).Carve(img)
	require.NoError(t, err)

	want := ComputeEnergy(img, 1).Normalize()
	assert.Equal(t, want.Bounds(), res.Energy.Bounds())
	if diff := cmp.Diff(want.Pix, res.Energy.Pix); diff != "" {
		t.Errorf("energy map mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessor_ParallelMatchesSequential(t *testing.T) {
	img := newNoiseImage(41, 27, 7)

	want, err := (&Processor{Seams: 12, Workers: 1}).Carve(img)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 16} {
		got, err := (&Processor{Seams: 12, Workers: workers}).Carve(img)
		require.NoError(t, err)

		if diff := cmp.Diff(want.Image.Pix, got.Image.Pix); diff != "" {
			t.Errorf("workers=%d: carved image mismatch (-want +got):\n%s", workers, diff)
		}
		assert.Equal(t, want.SeamEnergies, got.SeamEnergies)
	}
}

func TestProcessor_SubImage(t *testing.T) {
	img := newNoiseImage(20, 20, 8)
	sub := img.SubImage(image.Rect(3, 4, 15, 14)).(*image.NRGBA)

	got, err := (&Processor{Seams: 4}).Carve(sub)
	require.NoError(t, err)
	want, err := (&Processor{Seams: 4}).Carve(copyNRGBA(sub))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 8, 10), got.Image.Bounds())
	assert.Equal(t, want.Image.Pix, got.Image.Pix)
}

func TestProcessor_SeamMapShouldPaintEveryRemovedPixel(t *testing.T) {
	const n = 6
	img := newGrayNoiseImage(imgWidth*2, imgHeight, 9)

	res, err := (&Processor{Seams: n, SeamMapPath: "unused.png"}).Carve(img)
	require.NoError(t, err)
	require.NotNil(t, res.SeamMap)
	assert.Equal(t, img.Bounds(), res.SeamMap.Bounds())

	red := color.NRGBA{R: 0xff, A: 0xff}
	for y := 0; y < imgHeight; y++ {
		var count int
		for x := 0; x < imgWidth*2; x++ {
			if res.SeamMap.NRGBAAt(x, y) == red {
				count++
			}
		}
		assert.Equal(t, n, count, "row %d", y)
	}
}

func TestProcessor_SeamMapColor(t *testing.T) {
	img := newGrayNoiseImage(imgWidth, imgHeight, 10)

	res, err := (&Processor{Seams: 1, SeamMapPath: "seams.png", SeamColor: "#00ff00"}).Carve(img)
	require.NoError(t, err)
	require.NotNil(t, res.SeamMap)

	green := color.NRGBA{G: 0xff, A: 0xff}
	for y := 0; y < imgHeight; y++ {
		var found bool
		for x := 0; x < imgWidth; x++ {
			found = found || res.SeamMap.NRGBAAt(x, y) == green
		}
		assert.True(t, found, "row %d should contain a seam pixel", y)
	}
}

func TestProcessor_DebugShouldLogEverySeam(t *testing.T) {
	orig := Logf
	defer func() { Logf = orig }()

	var lines []string
	SetLogger(func(format string, v ...any) {
		lines = append(lines, format)
	})

	res, err := (&Processor{Seams: 3, Debug: true}).Carve(newNoiseImage(imgWidth, imgHeight, 11))
	require.NoError(t, err)
	assert.Len(t, lines, 3)
	// Debug mode alone does not track the removed seams.
	assert.Nil(t, res.SeamMap)

	SetLogger(nil)
	assert.NotPanics(t, func() { Logf("muted %d", 1) })
}

func TestProcessor_BlurShouldNotAffectTheOutputSize(t *testing.T) {
	img := newNoiseImage(imgWidth, imgHeight, 12)

	res, err := (&Processor{NewWidth: 6, BlurRadius: 2}).Carve(img)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Image.Bounds().Dx())

	// The carved pixels are taken from the original image, not from the blurred one.
	src := make(map[color.NRGBA]bool)
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			src[img.NRGBAAt(x, y)] = true
		}
	}
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < 6; x++ {
			assert.True(t, src[res.Image.NRGBAAt(x, y)], "pixel (%d, %d)", x, y)
		}
	}
}

func TestProcessor_ErrorsShouldWrap(t *testing.T) {
	_, err := (&Processor{Percentage: true, NewWidth: 101}).Carve(newNoiseImage(4, 4, 13))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOptions))
	assert.Contains(t, err.Error(), "percentage")
}
