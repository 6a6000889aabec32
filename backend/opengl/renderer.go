// Package opengl provides the OpenGL 3.3 core backend for depthcube.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/depthcube"
)

// Renderer implements depthcube.Renderer using OpenGL.
type Renderer struct {
	cubeShader uint32
	textShader uint32
	mvpLoc     int32

	cubeVAO, cubeVBO uint32
	cubeEBO          uint32

	clear depthcube.Color
}

// Cube vertex shader source
const cubeVertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 mvp;

out vec3 color;

void main() {
    color = aColor;
    gl_Position = mvp * vec4(aPos, 1.0);
}
` + "\x00"

const cubeFragmentShaderSource = `
#version 330 core
in vec3 color;

out vec4 FragColor;

void main() {
    FragColor = vec4(color, 1.0);
}
` + "\x00"

// Text quads arrive already in clip space.
const textVertexShaderSource = `
#version 330 core
layout (location = 0) in vec2 aPos;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const textFragmentShaderSource = `
#version 330 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0, 1.0, 0.0, 1.0);
}
` + "\x00"

// NewRenderer compiles both programs and uploads the cube mesh.
// A GL context must be current.
func NewRenderer(cfg depthcube.Config) (*Renderer, error) {
	r := &Renderer{clear: cfg.ClearColor}

	var err error
	r.cubeShader, err = createShaderProgram(cubeVertexShaderSource, cubeFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("cube shader: %w", err)
	}
	r.textShader, err = createShaderProgram(textVertexShaderSource, textFragmentShaderSource)
	if err != nil {
		r.Delete()
		return nil, fmt.Errorf("text shader: %w", err)
	}

	r.mvpLoc = gl.GetUniformLocation(r.cubeShader, gl.Str("mvp\x00"))

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(depthcube.CubeVertices)*int(depthcube.MeshStride),
		gl.Ptr(&depthcube.CubeVertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.cubeEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.cubeEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(depthcube.CubeIndices)*4,
		gl.Ptr(&depthcube.CubeIndices[0]), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, depthcube.MeshStride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, depthcube.MeshStride, depthcube.MeshColorOffset)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)

	return r, nil
}

// BeginFrame clears colour and depth.
func (r *Renderer) BeginFrame() {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawCube draws all cube indices with one indexed call.
func (r *Renderer) DrawCube(mvp mgl32.Mat4) {
	gl.UseProgram(r.cubeShader)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])
	gl.BindVertexArray(r.cubeVAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(depthcube.CubeIndices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReadDepth reads a single depth value. Read errors are not checked.
func (r *Renderer) ReadDepth(x, y int) float32 {
	var depth float32
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.DEPTH_COMPONENT, gl.FLOAT, gl.Ptr(&depth))
	return depth
}

// DrawText draws each quad of dl with its own vertex array and buffer,
// released before the next quad is drawn.
func (r *Renderer) DrawText(dl *depthcube.DrawList) error {
	if dl == nil || dl.Len() == 0 {
		return nil
	}

	gl.UseProgram(r.textShader)
	for i := 0; i < dl.Len(); i++ {
		drawQuad(dl.Quad(i))
	}
	gl.BindVertexArray(0)
	return nil
}

// drawQuad uploads verts into fresh objects, draws them as a fan and
// deletes the objects.
func drawQuad(verts []depthcube.Vertex) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	defer func() {
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteVertexArrays(1, &vao)
	}()

	stride := int32(unsafe.Sizeof(depthcube.Vertex{}))

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(stride), gl.Ptr(verts), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, int32(len(verts)))
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.cubeEBO != 0 {
		gl.DeleteBuffers(1, &r.cubeEBO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.textShader != 0 {
		gl.DeleteProgram(r.textShader)
	}
	if r.cubeShader != 0 {
		gl.DeleteProgram(r.cubeShader)
	}
}

// compileShader compiles one shader stage.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s compilation failed: %s", stageName(shaderType), strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
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
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	default:
		return fmt.Sprintf("shader 0x%x", shaderType)
	}
}
