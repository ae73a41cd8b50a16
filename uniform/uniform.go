package uniform

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	mintstd140 "github.com/chubei/mint-std140"
	"github.com/chubei/mint-std140/std140"
)

var (
	// ErrNoDevice is returned when no HAL device or queue is available.
	ErrNoDevice = errors.New("uniform: no HAL device")

	// ErrEmpty is returned for values that occupy zero bytes.
	ErrEmpty = errors.New("uniform: empty value")

	// ErrTooLarge is returned when a value exceeds MaxUniformBufferBindingSize.
	ErrTooLarge = errors.New("uniform: value exceeds max uniform binding size")

	// ErrUnaligned is returned for buffer write offsets that are not a
	// multiple of 4.
	ErrUnaligned = errors.New("uniform: write offset not 4-byte aligned")
)

// Usage is the buffer usage of uniform buffers created by an Uploader.
const Usage = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst

// Uploader creates and updates uniform buffers on one device.
type Uploader struct {
	device hal.Device
	queue  hal.Queue
}

// NewUploader returns an Uploader for the given device and queue.
func NewUploader(device hal.Device, queue hal.Queue) *Uploader {
	return &Uploader{device: device, queue: queue}
}

// NewUploaderFromProvider returns an Uploader using the device and queue of
// an external provider. The provider must hand out HAL types, either from
// Device/Queue directly or through HalDevice/HalQueue accessors.
func NewUploaderFromProvider(provider gpucontext.DeviceProvider) (*Uploader, error) {
	if provider == nil {
		return nil, ErrNoDevice
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	var dev, q any = provider.Device(), provider.Queue()
	if hp, ok := provider.(halProvider); ok {
		dev, q = hp.HalDevice(), hp.HalQueue()
	}
	device, ok := dev.(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: provider device is %T", ErrNoDevice, dev)
	}
	queue, ok := q.(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: provider queue is %T", ErrNoDevice, q)
	}
	return NewUploader(device, queue), nil
}

// Create creates a uniform buffer sized to v and writes v into it.
func (u *Uploader) Create(label string, v std140.Value) (hal.Buffer, error) {
	return u.createBytes(label, std140.Marshal(v))
}

// Write encodes v and writes it at offset into buf.
func (u *Uploader) Write(buf hal.Buffer, offset uint64, v std140.Value) error {
	if u.queue == nil {
		return ErrNoDevice
	}
	if offset%4 != 0 {
		return fmt.Errorf("%w: %d", ErrUnaligned, offset)
	}
	data := std140.Marshal(v)
	if err := u.queue.WriteBuffer(buf, offset, data); err != nil {
		return fmt.Errorf("uniform: write %s: %w", v.Kind(), err)
	}
	mintstd140.Logger().Debug("uniform: write", "kind", v.Kind().String(), "offset", offset, "size", len(data))
	return nil
}

// CreateDynamic packs values with PackDynamic into one buffer and returns it
// with the dynamic offset of each value.
func (u *Uploader) CreateDynamic(label string, limits gputypes.Limits, values ...std140.Value) (hal.Buffer, []uint32, error) {
	data, offsets, err := PackDynamic(limits, values...)
	if err != nil {
		return nil, nil, err
	}
	buf, err := u.createBytes(label, data)
	if err != nil {
		return nil, nil, err
	}
	return buf, offsets, nil
}

func (u *Uploader) createBytes(label string, data []byte) (hal.Buffer, error) {
	if u.device == nil || u.queue == nil {
		return nil, ErrNoDevice
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, label)
	}
	buf, err := u.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	if err := u.queue.WriteBuffer(buf, 0, data); err != nil {
		u.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("upload %s: %w", label, err)
	}
	mintstd140.Logger().Debug("uniform: created buffer", "label", label, "size", len(data))
	return buf, nil
}

// CheckLimits reports ErrTooLarge when v does not fit in a single uniform
// binding on a device with the given limits.
func CheckLimits(limits gputypes.Limits, v std140.Value) error {
	size := uint64(v.Layout().Size)
	if size > limits.MaxUniformBufferBindingSize {
		mintstd140.Logger().Warn("uniform: value too large",
			"size", size, "max", limits.MaxUniformBufferBindingSize)
		return fmt.Errorf("%w: %d > %d", ErrTooLarge, size, limits.MaxUniformBufferBindingSize)
	}
	return nil
}

// LayoutEntry returns a uniform-buffer bind group layout entry whose
// minimum binding size is the std140 size of v.
func LayoutEntry(binding uint32, stages gputypes.ShaderStages, v std140.Value) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: stages,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: uint64(v.Layout().Size),
		},
	}
}

// DynamicLayoutEntry is LayoutEntry with HasDynamicOffset set, for buffers
// built with PackDynamic.
func DynamicLayoutEntry(binding uint32, stages gputypes.ShaderStages, v std140.Value) gputypes.BindGroupLayoutEntry {
	e := LayoutEntry(binding, stages, v)
	e.Buffer.HasDynamicOffset = true
	return e
}

// PackDynamic encodes values back to back, each starting at a multiple of
// limits.MinUniformBufferOffsetAlignment, and returns the bytes with the
// offset of every value. Each value must pass CheckLimits.
func PackDynamic(limits gputypes.Limits, values ...std140.Value) ([]byte, []uint32, error) {
	align := limits.MinUniformBufferOffsetAlignment
	if align == 0 {
		align = gputypes.DefaultLimits().MinUniformBufferOffsetAlignment
	}
	var data []byte
	offsets := make([]uint32, 0, len(values))
	for i, v := range values {
		if err := CheckLimits(limits, v); err != nil {
			return nil, nil, fmt.Errorf("value %d: %w", i, err)
		}
		off := std140.AlignUp(uint32(len(data)), align)
		for uint32(len(data)) < off {
			data = append(data, 0)
		}
		offsets = append(offsets, off)
		data = v.AppendStd140(data)
	}
	return data, offsets, nil
}
