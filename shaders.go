package tme

// Attribute slots shared by every program.
const (
	slotPosition = 0
	slotColor    = 1
	slotUV       = 2
)

// Uniform names.
const (
	uniformColor        = "u_color"
	uniformMatrix       = "u_matrix"
	uniformRotateMatrix = "u_rotate_matrix"
	uniformMoveMatrix   = "u_move_matrix"
	uniformTexture      = "s_texture"
)

// Flat color: position only, color from a uniform.
const (
	flatVertexShader = `
#version 410 core
in vec2 a_position;

void main() {
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

	flatFragmentShader = `
#version 410 core
uniform vec4 u_color;

out vec4 FragColor;

void main() {
    FragColor = u_color;
}
`
)

// Per-vertex color.
const (
	colorVertexShader = `
#version 410 core
in vec2 a_position;
in vec4 a_color;

out vec4 v_color;

void main() {
    v_color = a_color;
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

	colorFragmentShader = `
#version 410 core
in vec4 v_color;

out vec4 FragColor;

void main() {
    FragColor = v_color;
}
`
)

// Textured with a single transform. Positions are row vectors, so the
// matrix multiplies from the right.
const (
	matrixVertexShader = `
#version 410 core
uniform mat3 u_matrix;

in vec2 a_position;
in vec2 a_tex_coord;
in vec4 a_color;

out vec4 v_color;
out vec2 v_tex_coord;

void main() {
    vec3 p = vec3(a_position, 1.0) * u_matrix;
    v_tex_coord = a_tex_coord;
    v_color = a_color;
    gl_Position = vec4(p.xy, 0.0, 1.0);
}
`

	// rotate is applied first, then move.
	rotateMoveVertexShader = `
#version 410 core
uniform mat3 u_rotate_matrix;
uniform mat3 u_move_matrix;

in vec2 a_position;
in vec2 a_tex_coord;
in vec4 a_color;

out vec4 v_color;
out vec2 v_tex_coord;

void main() {
    vec3 p = vec3(a_position, 1.0) * u_rotate_matrix * u_move_matrix;
    v_tex_coord = a_tex_coord;
    v_color = a_color;
    gl_Position = vec4(p.xy, 0.0, 1.0);
}
`

	textureFragmentShader = `
#version 410 core
in vec2 v_tex_coord;
in vec4 v_color;

uniform sampler2D s_texture;

out vec4 FragColor;

void main() {
    FragColor = texture(s_texture, v_tex_coord) * v_color;
}
`
)

var (
	flatAttribs = []AttribBinding{
		{Slot: slotPosition, Name: "a_position"},
	}
	colorAttribs = []AttribBinding{
		{Slot: slotPosition, Name: "a_position"},
		{Slot: slotColor, Name: "a_color"},
	}
	textureAttribs = []AttribBinding{
		{Slot: slotPosition, Name: "a_position"},
		{Slot: slotColor, Name: "a_color"},
		{Slot: slotUV, Name: "a_tex_coord"},
	}
)
