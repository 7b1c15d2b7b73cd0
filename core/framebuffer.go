package core

// AttachmentTag classifies an Attachment's role; a single Attachment may
// carry several tags (e.g. a GBuffer color target is both Color and Sampled).
type AttachmentTag uint32

const (
	AttachmentColor AttachmentTag = 1 << iota
	AttachmentDepth
	AttachmentCubemap
	AttachmentSampled
	AttachmentTransferSrc
	AttachmentTransferDst
)

// AttachmentFormat names the texel format of an attachment at a level of
// abstraction both backends can map onto their native enums.
type AttachmentFormat int

const (
	FormatRGBA8 AttachmentFormat = iota
	FormatRGBA16F
	FormatRGBA32F
	FormatR16F
	FormatDepth32F
	FormatR16G16F // BRDF LUT
)

// Attachment is one bindable surface of a Framebuffer.
type Attachment struct {
	Width, Height int
	Format        AttachmentFormat
	Tags          AttachmentTag

	Native any
}

func (a *Attachment) Has(tag AttachmentTag) bool { return a.Tags&tag != 0 }

// Framebuffer groups a set of attachments sharing one width/height.
type Framebuffer struct {
	Width, Height int
	Color         []*Attachment
	Depth         *Attachment

	Native any
}

// NewGBuffer builds the deferred-geometry target: normal+roughness and
// albedo+metallic color attachments plus a depth attachment.
func NewGBuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Color: []*Attachment{
			{Width: width, Height: height, Format: FormatRGBA16F, Tags: AttachmentColor | AttachmentSampled},
			{Width: width, Height: height, Format: FormatRGBA8, Tags: AttachmentColor | AttachmentSampled},
		},
		Depth: &Attachment{Width: width, Height: height, Format: FormatDepth32F, Tags: AttachmentDepth | AttachmentSampled | AttachmentTransferSrc},
	}
}

// NewOffscreenHDR builds the HDR scene target (color + depth pair) that
// deferred shading writes into and forward/post-process read from.
func NewOffscreenHDR(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Color:  []*Attachment{{Width: width, Height: height, Format: FormatRGBA16F, Tags: AttachmentColor | AttachmentSampled}},
		Depth:  &Attachment{Width: width, Height: height, Format: FormatDepth32F, Tags: AttachmentDepth | AttachmentSampled | AttachmentTransferDst},
	}
}

// NewShadowCascadeArray builds a single size x size depth attachment with
// one layer; the cascades argument does not affect the result.
func NewShadowCascadeArray(size, cascades int) *Framebuffer {
	return &Framebuffer{
		Width:  size,
		Height: size,
		Depth:  &Attachment{Width: size, Height: size, Format: FormatDepth32F, Tags: AttachmentDepth | AttachmentSampled},
	}
}

// NewSSAOTargets builds the three half/full-res R16F targets the SSAO pass
// and its separable blur use (raw, blur-H, blur-V).
func NewSSAOTargets(fullWidth, fullHeight int) (raw, blurH, blurV *Framebuffer) {
	halfW, halfH := fullWidth/2, fullHeight/2
	raw = &Framebuffer{Width: halfW, Height: halfH, Color: []*Attachment{{Width: halfW, Height: halfH, Format: FormatR16F, Tags: AttachmentColor | AttachmentSampled}}}
	blurH = &Framebuffer{Width: fullWidth, Height: fullHeight, Color: []*Attachment{{Width: fullWidth, Height: fullHeight, Format: FormatR16F, Tags: AttachmentColor | AttachmentSampled}}}
	blurV = &Framebuffer{Width: fullWidth, Height: fullHeight, Color: []*Attachment{{Width: fullWidth, Height: fullHeight, Format: FormatR16F, Tags: AttachmentColor | AttachmentSampled}}}
	return raw, blurH, blurV
}
