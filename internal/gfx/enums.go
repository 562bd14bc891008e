package gfx

// GL enum values used by the core. They match the values in the Khronos
// headers so they can be handed straight to the driver.
const (
	None  = 0
	False = 0
	True  = 1

	// Errors
	NoError                     = 0
	InvalidEnum                 = 0x0500
	InvalidValue                = 0x0501
	InvalidOperation            = 0x0502
	StackOverflow               = 0x0503
	StackUnderflow              = 0x0504
	OutOfMemory                 = 0x0505
	InvalidFramebufferOperation = 0x0506

	// Scalar types
	Byte          = 0x1400
	UnsignedByte  = 0x1401
	Short         = 0x1402
	UnsignedShort = 0x1403
	Int           = 0x1404
	UnsignedInt   = 0x1405
	Float         = 0x1406
	HalfFloat     = 0x140B
	Double        = 0x140A

	// Primitives
	Points        = 0x0000
	Lines         = 0x0001
	LineStrip     = 0x0003
	Triangles     = 0x0004
	TriangleStrip = 0x0005
	TriangleFan   = 0x0006
	Patches       = 0x000E

	// Shader stages and their queries
	VertexShader         = 0x8B31
	FragmentShader       = 0x8B30
	GeometryShader       = 0x8DD9
	TessControlShader    = 0x8E88
	TessEvaluationShader = 0x8E87
	ComputeShader        = 0x91B9
	CompileStatus        = 0x8B81
	LinkStatus           = 0x8B82
	InfoLogLength        = 0x8B84
	ShaderType           = 0x8B4F

	// Texture targets
	Texture1D               = 0x0DE0
	Texture2D               = 0x0DE1
	Texture3D               = 0x806F
	Texture1DArray          = 0x8C18
	Texture2DArray          = 0x8C1A
	TextureCubeMap          = 0x8513
	TextureCubeMapPositiveX = 0x8515
	TextureCubeMapNegativeX = 0x8516
	TextureCubeMapPositiveY = 0x8517
	TextureCubeMapNegativeY = 0x8518
	TextureCubeMapPositiveZ = 0x8519
	TextureCubeMapNegativeZ = 0x851A
	TextureCubeMapArray     = 0x9009
	Texture0                = 0x84C0

	// Pixel formats
	Red            = 0x1903
	Green          = 0x1904
	Blue           = 0x1905
	Alpha          = 0x1906
	RGB            = 0x1907
	RGBA           = 0x1908
	Luminance      = 0x1909
	LuminanceAlpha = 0x190A
	RG             = 0x8227
	BGR            = 0x80E0
	BGRA           = 0x80E1
	RedInteger     = 0x8D94
	RGInteger      = 0x8228
	RGBInteger     = 0x8D98
	RGBAInteger    = 0x8D99
	BGRInteger     = 0x8D9A
	BGRAInteger    = 0x8D9B
	DepthComponent = 0x1902
	StencilIndex   = 0x1901
	DepthStencil   = 0x84F9

	// Sized internal formats
	R8    = 0x8229
	RG8   = 0x822B
	RGB8  = 0x8051
	RGBA8 = 0x8058

	// Texture parameters
	TextureMinFilter     = 0x2801
	TextureMagFilter     = 0x2800
	TextureWrapS         = 0x2802
	TextureWrapT         = 0x2803
	TextureWrapR         = 0x8072
	Nearest              = 0x2600
	Linear               = 0x2601
	LinearMipmapLinear   = 0x2703
	NearestMipmapNearest = 0x2700
	Repeat               = 0x2901
	ClampToEdge          = 0x812F
	MirroredRepeat       = 0x8370
	UnpackAlignment      = 0x0CF5

	// Buffers
	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893
	StaticDraw         = 0x88E4
	DynamicDraw        = 0x88E8
	StreamDraw         = 0x88E0

	// Framebuffer clears
	Color   = 0x1800
	Depth   = 0x1801
	Stencil = 0x1802

	// Capabilities and state
	DepthTest        = 0x0B71
	CullFace         = 0x0B44
	Blend            = 0x0BE2
	ScissorTest      = 0x0C11
	Less             = 0x0201
	Lequal           = 0x0203
	SrcAlpha         = 0x0302
	OneMinusSrcAlpha = 0x0303
	One              = 1
	Zero             = 0

	// Debug output
	DebugOutput               = 0x92E0
	DebugOutputSynchronous    = 0x8242
	DebugSeverityHigh         = 0x9146
	DebugSeverityMedium       = 0x9147
	DebugSeverityLow          = 0x9148
	DebugSeverityNotification = 0x826B
)
