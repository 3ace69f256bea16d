package display

import (
	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/pkg/errors"
)

// Device renders framebuffer contents through OpenGL.
//
// The framebuffer bits are expanded into a single-channel texture once
// per frame and drawn as a screen-filling quad. Set pixels render as
// foreground, unset pixels as background; magnification is whatever
// the window size dictates.
type Device struct {
	fb          *Framebuffer
	pixels      [Width * Height]byte
	shader      uint32
	vao         uint32
	vbo         uint32
	tex         uint32
	initialized bool
}

// NewDevice creates a renderer for the given framebuffer.
func NewDevice(fb *Framebuffer) *Device {
	return &Device{fb: fb}
}

// Startup initializes device resources.
// It requires a current OpenGL context.
func (d *Device) Startup() error {
	var err error

	d.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(d.shader)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	d.tex = makeTexture()
	d.initialized = true
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	d.initialized = false
	gl.DeleteTextures(1, &d.tex)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.shader)
	return nil
}

// Draw reads the framebuffer and renders its contents.
func (d *Device) Draw() {
	if !d.initialized {
		return
	}

	d.blit()
	uploadTexture(d.tex, gl.RED, Width, Height, gl.RED, gl.UNSIGNED_BYTE, d.pixels[:])

	gl.UseProgram(d.shader)
	gl.BindVertexArray(d.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.tex)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// blit expands the framebuffer bit rows into the pixel byte buffer.
func (d *Device) blit() {
	for y := 0; y < Height; y++ {
		row := d.fb.Row(y)
		for x := 0; x < Width; x++ {
			var v byte
			if row>>uint(x)&1 == 1 {
				v = 0xff
			}
			d.pixels[y*Width+x] = v
		}
	}
}
