package renderer

import (
	"DodgeBall3D/internal/logger"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const DefaultShadowMapSize int32 = 2048

// OpenGLRenderer draws through an OpenGL 4.1 core context. The context must be
// current on the calling thread before Init.
type OpenGLRenderer struct {
	ShadowMapSize int32
	// PixelScale is framebuffer pixels per window unit, above 1 on HiDPI screens.
	// Sizes passed to Init and UpdateViewport are in window units.
	PixelScale float32

	width, height int32
	shadowShader  *Shader
	litShader     *Shader
	panelShader   *Shader

	shadowFBO     uint32
	shadowTexture uint32
	panelVAO      uint32
	panelVBO      uint32

	meshes     []*Mesh // uploaded meshes, released in Cleanup
	lightSpace mgl32.Mat4
}

func NewOpenGLRenderer(shadowMapSize int32) *OpenGLRenderer {
	if shadowMapSize <= 0 {
		shadowMapSize = DefaultShadowMapSize
	}
	return &OpenGLRenderer{ShadowMapSize: shadowMapSize, PixelScale: 1}
}

func (rend *OpenGLRenderer) SetPixelScale(scale float32) {
	rend.PixelScale = scale
}

func (rend *OpenGLRenderer) viewport() {
	scale := rend.PixelScale
	if scale <= 0 {
		scale = 1
	}
	gl.Viewport(0, 0, int32(float32(rend.width)*scale), int32(float32(rend.height)*scale))
}

func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("opengl init: %w", err)
	}
	rend.width, rend.height = width, height

	var unwind Unwind
	defer unwind.Unwind()

	rend.shadowShader = NewShader("shadow", shadowVertexShaderSource, shadowFragmentShaderSource)
	rend.litShader = NewShader("lit", litVertexShaderSource, litFragmentShaderSource)
	rend.panelShader = NewShader("panel", panelVertexShaderSource, panelFragmentShaderSource)
	for _, shader := range []*Shader{rend.shadowShader, rend.litShader, rend.panelShader} {
		if err := shader.Compile(); err != nil {
			return err
		}
		unwind.Add(shader.Delete)
	}

	if err := rend.initShadowMap(&unwind); err != nil {
		return err
	}
	rend.initPanelQuad(&unwind)

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	rend.viewport()

	unwind.Discard()
	logger.Log.Info("OpenGL render initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int32("shadowMapSize", rend.ShadowMapSize))
	return nil
}

func (rend *OpenGLRenderer) initShadowMap(unwind *Unwind) error {
	gl.GenTextures(1, &rend.shadowTexture)
	unwind.Add(func() { gl.DeleteTextures(1, &rend.shadowTexture) })
	gl.BindTexture(gl.TEXTURE_2D, rend.shadowTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT, rend.ShadowMapSize, rend.ShadowMapSize, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	border := []float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.GenFramebuffers(1, &rend.shadowFBO)
	unwind.Add(func() { gl.DeleteFramebuffers(1, &rend.shadowFBO) })
	gl.BindFramebuffer(gl.FRAMEBUFFER, rend.shadowFBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, rend.shadowTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("shadow framebuffer incomplete: 0x%x", status)
	}
	return nil
}

func (rend *OpenGLRenderer) initPanelQuad(unwind *Unwind) {
	corners := []float32{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1}
	gl.GenVertexArrays(1, &rend.panelVAO)
	unwind.Add(func() { gl.DeleteVertexArrays(1, &rend.panelVAO) })
	gl.BindVertexArray(rend.panelVAO)
	gl.GenBuffers(1, &rend.panelVBO)
	unwind.Add(func() { gl.DeleteBuffers(1, &rend.panelVBO) })
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.panelVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(corners)*4, gl.Ptr(corners), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func (rend *OpenGLRenderer) upload(mesh *Mesh) {
	if mesh.IsUploaded() {
		return
	}
	gl.GenVertexArrays(1, &mesh.VAO)
	gl.BindVertexArray(mesh.VAO)

	gl.GenBuffers(1, &mesh.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.InterleavedData)*4, gl.Ptr(mesh.InterleavedData), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Faces)*4, gl.Ptr(mesh.Faces), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(3, 3, gl.FLOAT, false, stride, gl.PtrOffset(8*4))
	gl.EnableVertexAttribArray(3)
	gl.BindVertexArray(0)

	rend.meshes = append(rend.meshes, mesh)
	logger.Log.Debug("Mesh uploaded", zap.String("mesh", mesh.Name), zap.Int("vertices", mesh.VertexCount()))
}

func (rend *OpenGLRenderer) draw(mesh *Mesh) {
	gl.BindVertexArray(mesh.VAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(mesh.Faces)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (rend *OpenGLRenderer) BeginFrame(clearColor mgl32.Vec3) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	rend.viewport()
	gl.ClearColor(clearColor.X(), clearColor.Y(), clearColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (rend *OpenGLRenderer) EndFrame() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.UseProgram(0)
}

func (rend *OpenGLRenderer) BeginShadowPass(light *Light) {
	rend.lightSpace = light.LightSpace()

	gl.Viewport(0, 0, rend.ShadowMapSize, rend.ShadowMapSize)
	gl.BindFramebuffer(gl.FRAMEBUFFER, rend.shadowFBO)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(2.0, 4.0)

	rend.shadowShader.Use()
	rend.shadowShader.Uniforms().SetMat4("lightSpace", rend.lightSpace)
}

func (rend *OpenGLRenderer) DrawMesh3D(world mgl32.Mat4, mesh *Mesh) {
	rend.upload(mesh)
	rend.shadowShader.Uniforms().SetMat4("model", world)
	rend.draw(mesh)
}

func (rend *OpenGLRenderer) EndShadowPass() ShadowMap {
	gl.Disable(gl.POLYGON_OFFSET_FILL)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	rend.viewport()
	return ShadowMap{Texture: rend.shadowTexture, LightSpace: rend.lightSpace}
}

func (rend *OpenGLRenderer) BeginLitPass(camera *Camera, light *Light) {
	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	rend.litShader.Use()
	u := rend.litShader.Uniforms()
	u.SetMat4("viewProjection", camera.GetViewProjection())
	u.SetVec3("viewPos", camera.Position)
	u.SetVec3("light.direction", light.Direction)
	u.SetVec3("light.color", light.Color)
	u.SetFloat("light.intensity", light.Intensity)
	u.SetFloat("light.ambientStrength", light.AmbientStrength)
	u.SetInt("shadowMap", 0)
	rend.SetMaterial(DefaultMaterial)
}

func (rend *OpenGLRenderer) SetMaterial(material *Material) {
	if material == nil {
		material = DefaultMaterial
	}
	u := rend.litShader.Uniforms()
	u.SetVec3("diffuseColor", material.DiffuseColor)
	u.SetVec3("specularColor", material.SpecularColor)
	u.SetFloat("shininess", material.Shininess)
	u.SetFloat("alpha", material.Alpha)
}

func (rend *OpenGLRenderer) DrawMesh3DShadowed(world mgl32.Mat4, mesh *Mesh, shadow ShadowMap) {
	rend.upload(mesh)
	u := rend.litShader.Uniforms()
	u.SetMat4("model", world)
	u.SetMat4("lightSpace", shadow.LightSpace)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, shadow.Texture)
	rend.draw(mesh)
}

func (rend *OpenGLRenderer) DrawPanel2D(rect Rect, color mgl32.Vec4) {
	if rend.width == 0 || rend.height == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w, h := float32(rend.width), float32(rend.height)
	// Window rect (origin top left) to NDC (origin bottom left).
	ndc := mgl32.Vec4{
		rect.X/w*2 - 1,
		1 - (rect.Y+rect.H)/h*2,
		rect.W / w * 2,
		rect.H / h * 2,
	}
	rend.panelShader.Use()
	rend.panelShader.Uniforms().SetVec4("rect", ndc)
	rend.panelShader.Uniforms().SetVec4("color", color)
	gl.BindVertexArray(rend.panelVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	rend.width, rend.height = width, height
	rend.viewport()
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, mesh := range rend.meshes {
		gl.DeleteVertexArrays(1, &mesh.VAO)
		gl.DeleteBuffers(1, &mesh.VBO)
		gl.DeleteBuffers(1, &mesh.EBO)
		mesh.VAO, mesh.VBO, mesh.EBO = 0, 0, 0
	}
	rend.meshes = nil
	gl.DeleteVertexArrays(1, &rend.panelVAO)
	gl.DeleteBuffers(1, &rend.panelVBO)
	gl.DeleteFramebuffers(1, &rend.shadowFBO)
	gl.DeleteTextures(1, &rend.shadowTexture)
	for _, shader := range []*Shader{rend.shadowShader, rend.litShader, rend.panelShader} {
		if shader != nil {
			shader.Delete()
		}
	}
	logger.Log.Info("OpenGL render cleaned up")
}
