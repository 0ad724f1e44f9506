package model

// model is the implementation of the Model interface.
type model struct {
	name                  string
	boundingRadius        float32
	vertexData, indexData []byte
	vertexStride          int
	vertexCount           int
	indexCount            int
}

// Model defines the interface for a generated mesh packaged for upload.
// A Model is a flat, immutable view: interleaved vertex bytes, uint32 index bytes and the
// counts a collaborator needs to issue an indexed triangle draw. It never owns GPU state.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// VertexData returns the raw interleaved vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw uint32 index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// VertexStride returns the size in bytes of one vertex.
	//
	// Returns:
	//   - int: the vertex stride
	VertexStride() int

	// VertexCount returns the number of vertices in the model's mesh.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// TriangleCount returns IndexCount / 3.
	TriangleCount() int

	// BoundingRadius returns the bounding sphere radius for this model, measured as
	// the maximum vertex distance from the origin. Used to frame the camera.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) VertexStride() int {
	return m.vertexStride
}

func (m *model) VertexCount() int {
	return m.vertexCount
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) TriangleCount() int {
	return m.indexCount / 3
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
