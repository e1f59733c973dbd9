package blocks

import (
	"voxel-sandbox/internal/graphics"
	renderer "voxel-sandbox/internal/graphics/renderer"
	"voxel-sandbox/internal/meshing"
	"voxel-sandbox/internal/profiling"
	"voxel-sandbox/internal/world"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Light used by the lit shader.
var (
	LightPos   = mgl32.Vec3{0, 150, 0}
	LightColor = mgl32.Vec3{0.8, 0.8, 0.8}
)

// chunkMesh is the GPU copy of one chunk mesh.
type chunkMesh struct {
	vao      uint32
	vbos     [4]uint32
	ebo      uint32
	count    int32
	revision uint64
}

func (m *chunkMesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	*m = chunkMesh{}
}

// Stats counts the work of the last frame.
type Stats struct {
	Drawn     int
	Culled    int
	Uploads   int
	Triangles int
}

// Blocks draws the world's chunk meshes. It implements world.Renderer.
type Blocks struct {
	textures    *graphics.Textures
	texturePath string

	mainShader *graphics.Shader
	litShader  *graphics.Shader
	texture    uint32

	// programs maps override program IDs to their shaders; unknown IDs
	// draw with mainShader.
	programs map[uint32]*graphics.Shader

	meshes map[world.ChunkCoord]*chunkMesh

	// per-frame state set by Render
	view, proj mgl32.Mat4
	frustum    Frustum
	stats      Stats
}

// NewBlocks creates the chunk renderable. The texture is looked up in
// textures at Init.
func NewBlocks(textures *graphics.Textures, texturePath string) *Blocks {
	return &Blocks{
		textures:    textures,
		texturePath: texturePath,
		meshes:      make(map[world.ChunkCoord]*chunkMesh),
	}
}

// Init compiles both chunk shaders and resolves the block texture.
func (b *Blocks) Init() error {
	var err error
	b.mainShader, err = graphics.LoadShader("chunk.vert", "chunk.frag")
	if err != nil {
		return err
	}
	b.litShader, err = graphics.LoadShader("chunk.vert", "lit.frag")
	if err != nil {
		b.mainShader.Delete()
		return err
	}
	b.programs = map[uint32]*graphics.Shader{b.litShader.ID: b.litShader}
	b.texture = b.textures.Get(b.texturePath)
	return nil
}

// Render draws every chunk, with the lit shader when the frame asks for it.
func (b *Blocks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderBlocks")()

	b.view, b.proj = ctx.View, ctx.Proj
	b.frustum = NewFrustum(ctx.Proj.Mul4(ctx.View))
	b.stats = Stats{}

	var override uint32
	if ctx.Lit {
		override = b.litShader.ID
	}
	ctx.World.Draw(b, override)
}

// DrawMesh uploads mesh when its revision changed and draws it at origin.
func (b *Blocks) DrawMesh(coord world.ChunkCoord, revision uint64, mesh *meshing.Mesh, origin mgl32.Vec3, override uint32) {
	gm := b.ensureMesh(coord, revision, mesh)

	bounds := cube.Box(0, 0, 0, world.ChunkSize, world.ChunkSize, world.ChunkSize).Translate(origin)
	if !b.frustum.Intersects(bounds) {
		b.stats.Culled++
		return
	}

	shader := b.mainShader
	if s, ok := b.programs[override]; ok {
		shader = s
	}
	shader.Use()
	model := mgl32.Translate3D(origin.X(), origin.Y(), origin.Z())
	shader.SetMatrix4("model", &model[0])
	shader.SetMatrix4("view", &b.view[0])
	shader.SetMatrix4("projection", &b.proj[0])
	shader.SetInt("tex", 0)
	if shader == b.litShader {
		shader.SetVector3("lightPos", LightPos.X(), LightPos.Y(), LightPos.Z())
		shader.SetVector3("lightColor", LightColor.X(), LightColor.Y(), LightColor.Z())
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.BindVertexArray(gm.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, gm.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	b.stats.Drawn++
	b.stats.Triangles += int(gm.count / 3)
}

// ensureMesh returns the GPU mesh for coord, replacing it when the chunk
// published a newer revision.
func (b *Blocks) ensureMesh(coord world.ChunkCoord, revision uint64, mesh *meshing.Mesh) *chunkMesh {
	gm, ok := b.meshes[coord]
	if ok && gm.revision == revision {
		return gm
	}
	defer profiling.Track("renderer.renderBlocks.upload")()
	if !ok {
		gm = &chunkMesh{}
		b.meshes[coord] = gm
	} else {
		gm.delete()
	}
	upload(gm, mesh)
	gm.revision = revision
	b.stats.Uploads++
	return gm
}

func upload(gm *chunkMesh, mesh *meshing.Mesh) {
	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)
	gl.GenBuffers(int32(len(gm.vbos)), &gm.vbos[0])

	floatAttrib := func(index uint32, vbo uint32, data []float32, size int32) {
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(index)
		gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, size*4, 0)
	}
	floatAttrib(0, gm.vbos[0], mesh.Positions, 3)
	floatAttrib(1, gm.vbos[1], mesh.Normals, 3)
	floatAttrib(2, gm.vbos[2], mesh.TexCoords, 2)

	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbos[3])
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Colors), gl.Ptr(mesh.Colors), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 4, gl.UNSIGNED_BYTE, true, 4, 0)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	gm.count = int32(len(mesh.Indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Stats returns counters for the last rendered frame.
func (b *Blocks) Stats() Stats {
	return b.stats
}

// SetViewport is a no-op; the projection comes from the frame context.
func (b *Blocks) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (b *Blocks) Dispose() {
	for coord, gm := range b.meshes {
		gm.delete()
		delete(b.meshes, coord)
	}
	if b.mainShader != nil {
		b.mainShader.Delete()
	}
	if b.litShader != nil {
		b.litShader.Delete()
	}
}
