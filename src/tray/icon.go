package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

var iconOnce struct {
	sync.Once
	data []byte
}

// iconPNG renders the status icon at runtime so no binary asset needs to
// ship with the source. A 16x16 dashed capture frame around a text line.
func iconPNG() []byte {
	iconOnce.Do(func() {
		const size = 16
		img := image.NewNRGBA(image.Rect(0, 0, size, size))

		frame := color.NRGBA{R: 0x00, G: 0x78, B: 0xd4, A: 0xff}
		text := color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

		// Dashed border: every other pixel along the frame edges.
		for i := 2; i < size-2; i++ {
			if i%2 == 0 {
				img.SetNRGBA(i, 2, frame)
				img.SetNRGBA(i, size-3, frame)
				img.SetNRGBA(2, i, frame)
				img.SetNRGBA(size-3, i, frame)
			}
		}

		// Two "text" bars inside the frame.
		for x := 5; x <= 10; x++ {
			img.SetNRGBA(x, 6, text)
			img.SetNRGBA(x, 9, text)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return
		}
		iconOnce.data = buf.Bytes()
	})
	return iconOnce.data
}
