package shader

// DefaultVertexSource transforms the interleaved position+color stream
// by a single model-view-projection matrix and forwards the color.
const DefaultVertexSource = `#version 330 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uMVP;

out vec3 vColor;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vColor = aColor;
}
`

// DefaultFragmentSource writes the interpolated vertex color.
const DefaultFragmentSource = `#version 330 core

in vec3 vColor;

out vec4 fragColor;

void main() {
	fragColor = vec4(vColor, 1.0);
}
`
