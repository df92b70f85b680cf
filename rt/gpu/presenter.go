package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gekko3d/rigview/rt/shaders"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Presenter owns the wgpu surface of a glfw window and blits an RGBA canvas
// onto it every frame.
type Presenter struct {
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue
	Config  *wgpu.SurfaceConfiguration

	pipeline *wgpu.RenderPipeline
	sampler  *wgpu.Sampler

	canvasTex  *wgpu.Texture
	canvasView *wgpu.TextureView
	bindGroup  *wgpu.BindGroup
	texWidth   int
	texHeight  int
}

func NewPresenter(win *glfw.Window) (*Presenter, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	p := &Presenter{}
	p.Surface = instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(win))

	var err error
	p.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: p.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	p.Device, err = p.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "rigview device",
	})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}
	p.Queue = p.Device.GetQueue()

	width, height := win.GetFramebufferSize()
	caps := p.Surface.GetCapabilities(p.Adapter)
	p.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	p.Surface.Configure(p.Adapter, p.Device, p.Config)

	if err := p.setupPipeline(); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

func (p *Presenter) setupPipeline() error {
	module, err := p.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Blit Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.BlitWGSL},
	})
	if err != nil {
		return fmt.Errorf("blit shader: %w", err)
	}
	defer module.Release()

	p.pipeline, err = p.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Blit Pipeline",
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    p.Config.Format,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("blit pipeline: %w", err)
	}

	p.sampler, err = p.Device.CreateSampler(&wgpu.SamplerDescriptor{
		MinFilter:     wgpu.FilterModeLinear,
		MagFilter:     wgpu.FilterModeLinear,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("sampler: %w", err)
	}
	return nil
}

// ensureCanvasTexture recreates the upload texture and its bind group when
// the canvas size changed.
func (p *Presenter) ensureCanvasTexture(width, height int) error {
	if p.canvasTex != nil && width == p.texWidth && height == p.texHeight {
		return nil
	}
	p.releaseCanvasTexture()

	var err error
	p.canvasTex, err = p.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Canvas",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("canvas texture: %w", err)
	}
	p.canvasView, err = p.canvasTex.CreateView(nil)
	if err != nil {
		return fmt.Errorf("canvas view: %w", err)
	}
	p.bindGroup, err = p.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: p.pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: p.canvasView},
			{Binding: 1, Sampler: p.sampler},
		},
	})
	if err != nil {
		return fmt.Errorf("canvas bind group: %w", err)
	}
	p.texWidth, p.texHeight = width, height
	return nil
}

// Resize reconfigures the surface for a new framebuffer size. Zero sizes
// (minimized windows) are ignored.
func (p *Presenter) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.Config.Width = uint32(width)
	p.Config.Height = uint32(height)
	p.Surface.Configure(p.Adapter, p.Device, p.Config)
}

// Present uploads tightly packed RGBA pixels of the given size and draws them
// stretched over the whole surface.
func (p *Presenter) Present(pix []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if err := p.ensureCanvasTexture(width, height); err != nil {
		return err
	}
	extent := wgpu.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1}
	err := p.Queue.WriteTexture(p.canvasTex.AsImageCopy(), pix, &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(width * 4),
		RowsPerImage: uint32(height),
	}, &extent)
	if err != nil {
		return fmt.Errorf("upload canvas: %w", err)
	}

	next, err := p.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}
	defer next.Release()
	view, err := next.CreateView(nil)
	if err != nil {
		return fmt.Errorf("surface view: %w", err)
	}
	defer view.Release()

	encoder, err := p.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, p.bindGroup, nil)
	pass.Draw(3, 1, 0, 0)
	if err := pass.End(); err != nil {
		return fmt.Errorf("blit pass: %w", err)
	}
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish: %w", err)
	}
	defer cmd.Release()
	p.Queue.Submit(cmd)
	p.Surface.Present()
	return nil
}

func (p *Presenter) releaseCanvasTexture() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.canvasView != nil {
		p.canvasView.Release()
		p.canvasView = nil
	}
	if p.canvasTex != nil {
		p.canvasTex.Release()
		p.canvasTex = nil
	}
}

func (p *Presenter) Release() {
	p.releaseCanvasTexture()
	if p.sampler != nil {
		p.sampler.Release()
	}
	if p.pipeline != nil {
		p.pipeline.Release()
	}
	if p.Queue != nil {
		p.Queue.Release()
	}
	if p.Device != nil {
		p.Device.Release()
	}
	if p.Adapter != nil {
		p.Adapter.Release()
	}
	if p.Surface != nil {
		p.Surface.Release()
	}
}
