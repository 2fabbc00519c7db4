package renderer

import (
	"DodgeBall3D/internal/logger"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	Name           string
	vertexSource   string
	fragmentSource string
	program        uint32
	uniforms       *UniformCache
}

func NewShader(name, vertexSource, fragmentSource string) *Shader {
	return &Shader{Name: name, vertexSource: vertexSource, fragmentSource: fragmentSource}
}

// Compile builds the program. It returns an error if either stage or the link fails.
func (shader *Shader) Compile() error {
	vertex, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("%s vertex shader: %w", shader.Name, err)
	}
	fragment, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return fmt.Errorf("%s fragment shader: %w", shader.Name, err)
	}
	program, err := GenShaderProgram(vertex, fragment)
	if err != nil {
		return fmt.Errorf("%s program: %w", shader.Name, err)
	}
	shader.program = program
	shader.uniforms = NewUniformCache(program)
	return nil
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Uniforms() *UniformCache {
	return shader.uniforms
}

func (shader *Shader) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
	}
}

func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, cSources, nil)
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

		logger.Log.Error("Failed to compile", zap.Uint32("shaderType", shaderType), zap.String("log", log))
		return 0, fmt.Errorf("compile failed: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("link failed: %s", strings.TrimRight(log, "\x00"))
	}
	logger.Log.Debug("Shader program linked", zap.Uint32("program", program))
	return program, nil
}

// Depth only pass rendered from the light.
var shadowVertexShaderSource = `#version 410 core
layout(location = 0) in vec3 inPosition;

uniform mat4 lightSpace;
uniform mat4 model;

void main() {
    gl_Position = lightSpace * model * vec4(inPosition, 1.0);
}
`

var shadowFragmentShaderSource = `#version 410 core
void main() {
}
`

var litVertexShaderSource = `#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;
layout(location = 2) in vec3 inNormal;
layout(location = 3) in vec3 inColor;

uniform mat4 model;
uniform mat4 viewProjection;
uniform mat4 lightSpace;

out vec3 FragPos;
out vec3 Normal;
out vec3 VertexColor;
out vec4 FragPosLightSpace;

void main() {
    vec4 world = model * vec4(inPosition, 1.0);
    FragPos = world.xyz;
    Normal = mat3(transpose(inverse(model))) * inNormal;
    VertexColor = inColor;
    FragPosLightSpace = lightSpace * world;
    gl_Position = viewProjection * world;
}
`

var litFragmentShaderSource = `#version 410 core
in vec3 FragPos;
in vec3 Normal;
in vec3 VertexColor;
in vec4 FragPosLightSpace;

uniform sampler2D shadowMap;
uniform struct Light {
    vec3 direction;
    vec3 color;
    float intensity;
    float ambientStrength;
} light;
uniform vec3 viewPos;
uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float shininess;
uniform float alpha;

out vec4 FragColor;

float shadowFactor(vec3 norm, vec3 lightDir) {
    vec3 proj = FragPosLightSpace.xyz / FragPosLightSpace.w;
    proj = proj * 0.5 + 0.5;
    if (proj.z > 1.0) {
        return 0.0;
    }
    float bias = max(0.005 * (1.0 - dot(norm, lightDir)), 0.0005);
    float shadow = 0.0;
    vec2 texel = 1.0 / textureSize(shadowMap, 0);
    for (int x = -1; x <= 1; ++x) {
        for (int y = -1; y <= 1; ++y) {
            float depth = texture(shadowMap, proj.xy + vec2(x, y) * texel).r;
            shadow += proj.z - bias > depth ? 1.0 : 0.0;
        }
    }
    return shadow / 9.0;
}

void main() {
    vec3 base = diffuseColor * VertexColor;
    vec3 norm = normalize(Normal);
    vec3 lightDir = normalize(-light.direction);

    vec3 ambient = light.ambientStrength * light.color * base;
    float diff = max(dot(norm, lightDir), 0.0);
    vec3 diffuse = diff * light.color * base;

    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 halfway = normalize(lightDir + viewDir);
    float spec = pow(max(dot(norm, halfway), 0.0), shininess);
    vec3 specular = spec * light.color * specularColor;

    float shadow = shadowFactor(norm, lightDir);
    vec3 result = (ambient + (1.0 - shadow) * (diffuse + specular)) * light.intensity;
    FragColor = vec4(result, alpha);
}
`

// Screen space colored rectangle. rect is (x, y, w, h) in normalized device coordinates.
var panelVertexShaderSource = `#version 410 core
layout(location = 0) in vec2 inCorner;

uniform vec4 rect;

void main() {
    gl_Position = vec4(rect.xy + inCorner * rect.zw, 0.0, 1.0);
}
`

var panelFragmentShaderSource = `#version 410 core
uniform vec4 color;
out vec4 FragColor;

void main() {
    FragColor = color;
}
`
