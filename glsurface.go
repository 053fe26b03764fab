package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		in vec4 vc;
		uniform mat4 mvp;
		out vec4 colour;
		void main() {
			colour = vc;
			gl_Position = mvp * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec4 colour;
		out vec4 frag_colour;
		void main() {
			frag_colour = colour;
		}
	` + "\x00"
)

// x, y, r, g, b, a
const floatsPerVertex = 6

// glSurface batches the frame's draw calls in screen coordinates and
// draws them in Flush. Rectangles become triangles, strokes become GL_LINES.
type glSurface struct {
	program    uint32
	mvpUniform int32
	vao, vbo   uint32
	mvp        mgl32.Mat4

	clearColor [4]float32
	tris       []float32
	lines      []float32

	path   [][4]float32
	pen    [2]float32
	start  [2]float32
	hasPen bool
}

func newGLSurface(width, height int) (*glSurface, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	gl.UseProgram(program)

	s := &glSurface{
		program:    program,
		mvpUniform: gl.GetUniformLocation(program, gl.Str("mvp\x00")),
		// top-left origin, y down
		mvp: mgl32.Ortho2D(0, float32(width), float32(height), 0),
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	stride := int32(floatsPerVertex * 4)
	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	colAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return s, nil
}

func rgbaf(c color.Color) [4]float32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]float32{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

func appendVertex(buf []float32, x, y float32, c [4]float32) []float32 {
	return append(buf, x, y, c[0], c[1], c[2], c[3])
}

// Clear discards everything batched so far
func (s *glSurface) Clear(c color.Color) {
	s.clearColor = rgbaf(c)
	s.tris = s.tris[:0]
	s.lines = s.lines[:0]
}

func (s *glSurface) FillRect(x, y, w, h float64, c color.Color) {
	col := rgbaf(c)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	s.tris = appendVertex(s.tris, x0, y0, col)
	s.tris = appendVertex(s.tris, x1, y0, col)
	s.tris = appendVertex(s.tris, x1, y1, col)
	s.tris = appendVertex(s.tris, x0, y0, col)
	s.tris = appendVertex(s.tris, x1, y1, col)
	s.tris = appendVertex(s.tris, x0, y1, col)
}

func (s *glSurface) BeginPath() {
	s.path = s.path[:0]
	s.hasPen = false
}

func (s *glSurface) MoveTo(x, y float64) {
	s.pen = [2]float32{float32(x), float32(y)}
	s.start = s.pen
	s.hasPen = true
}

func (s *glSurface) LineTo(x, y float64) {
	if !s.hasPen {
		s.MoveTo(x, y)
		return
	}
	next := [2]float32{float32(x), float32(y)}
	s.path = append(s.path, [4]float32{s.pen[0], s.pen[1], next[0], next[1]})
	s.pen = next
}

func (s *glSurface) ClosePath() {
	if !s.hasPen || s.pen == s.start {
		return
	}
	s.path = append(s.path, [4]float32{s.pen[0], s.pen[1], s.start[0], s.start[1]})
	s.pen = s.start
}

func (s *glSurface) Stroke(c color.Color) {
	col := rgbaf(c)
	for _, seg := range s.path {
		s.lines = appendVertex(s.lines, seg[0], seg[1], col)
		s.lines = appendVertex(s.lines, seg[2], seg[3], col)
	}
}

// Flush clears the framebuffer and draws the batched frame
func (s *glSurface) Flush() {
	c := s.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.mvpUniform, 1, false, &s.mvp[0])
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	s.draw(gl.TRIANGLES, s.tris)
	s.draw(gl.LINES, s.lines)
}

func (s *glSurface) draw(mode uint32, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
	gl.DrawArrays(mode, 0, int32(len(data)/floatsPerVertex))
}

func (s *glSurface) Delete() {
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteProgram(s.program)
}

// newProgram compiles and links the two shaders. The shader objects are
// released once linked; on failure every GL object created here is deleted.
func newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link shader program: %s", msg)
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %s", shaderKind(shaderType), msg)
	}

	return shader, nil
}

func shaderKind(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}

// infoLog reads the compile or link log of a shader or program
func infoLog(object uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var logLength int32
	getiv(object, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return "no info log"
	}
	buf := make([]uint8, logLength+1)
	getLog(object, logLength, nil, &buf[0])
	return strings.TrimSpace(gl.GoStr(&buf[0]))
}
