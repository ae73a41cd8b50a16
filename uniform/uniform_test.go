package uniform

import (
	"bytes"
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
	"unsafe"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	mintstd140 "github.com/chubei/mint-std140"
	"github.com/chubei/mint-std140/mint"
	"github.com/chubei/mint-std140/std140"
)

// createNoopDevice creates a noop device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

// readBuffer copies the contents of a noop buffer.
func readBuffer(t *testing.T, device hal.Device, buf hal.Buffer, size uint64) []byte {
	t.Helper()
	m, err := device.MapBuffer(buf, 0, size)
	if err != nil {
		t.Fatalf("MapBuffer: %v", err)
	}
	out := bytes.Clone(unsafe.Slice((*byte)(m.Ptr), size))
	if err := device.UnmapBuffer(buf); err != nil {
		t.Fatalf("UnmapBuffer: %v", err)
	}
	return out
}

func sceneBlock() *std140.Struct {
	view := mint.ColumnMatrix4[float32]{
		X: mint.Vector4[float32]{X: 1},
		Y: mint.Vector4[float32]{Y: 1},
		Z: mint.Vector4[float32]{Z: 1},
		W: mint.Vector4[float32]{X: 5, Y: 6, Z: 7, W: 1},
	}
	return std140.NewStruct().
		Add("view", mintstd140.Mat4x4(view)).
		Add("light", mintstd140.Vec3(mint.Vector3[float32]{X: 0.5, Y: 1, Z: 2})).
		Add("time", mintstd140.Float(3))
}

func f32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestCreateUploadsStd140Bytes(t *testing.T) {
	device, queue := createNoopDevice(t)
	up := NewUploader(device, queue)
	block := sceneBlock()

	buf, err := up.Create("scene", block)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	defer device.DestroyBuffer(buf)

	got := readBuffer(t, device, buf, 80)
	if !bytes.Equal(got, block.Bytes()) {
		t.Errorf("buffer contents differ from block bytes")
	}
	if v := f32At(got, 48); v != 5 {
		t.Errorf("view[3].x = %v, want 5", v)
	}
	if v := f32At(got, 76); v != 3 {
		t.Errorf("time = %v, want 3", v)
	}
}

func TestWriteUpdatesMember(t *testing.T) {
	device, queue := createNoopDevice(t)
	up := NewUploader(device, queue)
	block := sceneBlock()
	buf, err := up.Create("scene", block)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	defer device.DestroyBuffer(buf)

	if err := block.Set("time", std140.Float(9)); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := up.Write(buf, 0, block); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if v := f32At(readBuffer(t, device, buf, 80), 76); v != 9 {
		t.Errorf("time = %v, want 9", v)
	}

	off, _ := block.Offset("light")
	if err := up.Write(buf, uint64(off), std140.Vec3{7, 8, 9}); err != nil {
		t.Fatalf("Write(light) error: %v", err)
	}
	if v := f32At(readBuffer(t, device, buf, 80), int(off)+8); v != 9 {
		t.Errorf("light.z = %v, want 9", v)
	}

	if err := up.Write(buf, 2, std140.Float(1)); !errors.Is(err, ErrUnaligned) {
		t.Errorf("Write(offset 2) = %v, want ErrUnaligned", err)
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := (&Uploader{}).Create("x", std140.Float(1)); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Create without device = %v, want ErrNoDevice", err)
	}
	if err := (&Uploader{}).Write(nil, 0, std140.Float(1)); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Write without queue = %v, want ErrNoDevice", err)
	}
	device, queue := createNoopDevice(t)
	if _, err := NewUploader(device, queue).Create("empty", std140.NewStruct()); !errors.Is(err, ErrEmpty) {
		t.Errorf("Create(empty) = %v, want ErrEmpty", err)
	}
}

func TestCheckLimits(t *testing.T) {
	limits := gputypes.DefaultLimits()
	if err := CheckLimits(limits, sceneBlock()); err != nil {
		t.Errorf("CheckLimits(scene) = %v", err)
	}
	big := make(std140.Array[std140.Vec4], limits.MaxUniformBufferBindingSize/16+1)
	if err := CheckLimits(limits, big); !errors.Is(err, ErrTooLarge) {
		t.Errorf("CheckLimits(big) = %v, want ErrTooLarge", err)
	}
}

func TestCheckLimitsLogsWarning(t *testing.T) {
	orig := mintstd140.Logger()
	t.Cleanup(func() { mintstd140.SetLogger(orig) })
	var out bytes.Buffer
	mintstd140.SetLogger(slog.New(slog.NewTextHandler(&out, nil)))

	limits := gputypes.Limits{MaxUniformBufferBindingSize: 16}
	if err := CheckLimits(limits, std140.Mat2x2{}); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("CheckLimits = %v, want ErrTooLarge", err)
	}
	if !strings.Contains(out.String(), "too large") {
		t.Errorf("expected warning, got %q", out.String())
	}
}

func TestLayoutEntry(t *testing.T) {
	e := LayoutEntry(2, gputypes.ShaderStagesVertexFragment, sceneBlock())
	if e.Binding != 2 || e.Visibility != gputypes.ShaderStagesVertexFragment {
		t.Errorf("entry = %+v", e)
	}
	if e.Buffer == nil || e.Buffer.Type != gputypes.BufferBindingTypeUniform {
		t.Fatalf("buffer layout = %+v", e.Buffer)
	}
	if e.Buffer.MinBindingSize != 80 || e.Buffer.HasDynamicOffset {
		t.Errorf("buffer layout = %+v, want size 80 without dynamic offset", *e.Buffer)
	}
	d := DynamicLayoutEntry(0, gputypes.ShaderStageCompute, std140.Vec4{})
	if !d.Buffer.HasDynamicOffset || d.Buffer.MinBindingSize != 16 {
		t.Errorf("dynamic layout = %+v", *d.Buffer)
	}
}

func TestPackDynamic(t *testing.T) {
	limits := gputypes.DefaultLimits()
	data, offsets, err := PackDynamic(limits, std140.Vec4{1, 2, 3, 4}, std140.Float(5), sceneBlock())
	if err != nil {
		t.Fatalf("PackDynamic() error: %v", err)
	}
	a := limits.MinUniformBufferOffsetAlignment
	want := []uint32{0, a, 2 * a}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offset %d = %d, want %d", i, offsets[i], want[i])
		}
	}
	if len(data) != int(2*a+80) {
		t.Errorf("len = %d, want %d", len(data), 2*a+80)
	}
	if v := f32At(data, int(a)); v != 5 {
		t.Errorf("value 1 = %v, want 5", v)
	}

	_, _, err = PackDynamic(gputypes.Limits{MaxUniformBufferBindingSize: 8, MinUniformBufferOffsetAlignment: 256}, std140.Float(1), std140.Vec4{})
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("PackDynamic(oversize) = %v, want ErrTooLarge", err)
	}
}

func TestCreateDynamic(t *testing.T) {
	device, queue := createNoopDevice(t)
	up := NewUploader(device, queue)
	limits := gputypes.DefaultLimits()
	buf, offsets, err := up.CreateDynamic("draws", limits, std140.Float(1), std140.Float(2))
	if err != nil {
		t.Fatalf("CreateDynamic() error: %v", err)
	}
	defer device.DestroyBuffer(buf)
	size := uint64(offsets[1]) + 4
	got := readBuffer(t, device, buf, size)
	if v := f32At(got, int(offsets[1])); v != 2 {
		t.Errorf("second draw = %v, want 2", v)
	}
}

type fakeProvider struct {
	device gpucontext.Device
	queue  gpucontext.Queue
}

func (p fakeProvider) Device() gpucontext.Device             { return p.device }
func (p fakeProvider) Queue() gpucontext.Queue               { return p.queue }
func (p fakeProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatUndefined }
func (p fakeProvider) Adapter() gpucontext.Adapter           { return nil }
func (p fakeProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

type fakeHalProvider struct {
	fakeProvider
	halDevice, halQueue any
}

func (p fakeHalProvider) HalDevice() any { return p.halDevice }
func (p fakeHalProvider) HalQueue() any  { return p.halQueue }

func TestNewUploaderFromProvider(t *testing.T) {
	device, queue := createNoopDevice(t)

	up, err := NewUploaderFromProvider(fakeProvider{device: device, queue: queue})
	if err != nil {
		t.Fatalf("NewUploaderFromProvider() error: %v", err)
	}
	if up.device != device || up.queue != queue {
		t.Error("uploader does not use provider device and queue")
	}

	up, err = NewUploaderFromProvider(fakeHalProvider{halDevice: device, halQueue: queue})
	if err != nil {
		t.Fatalf("NewUploaderFromProvider(hal) error: %v", err)
	}
	if up.device != device {
		t.Error("uploader does not use HalDevice")
	}

	if _, err := NewUploaderFromProvider(fakeProvider{}); !errors.Is(err, ErrNoDevice) {
		t.Errorf("NewUploaderFromProvider(empty) = %v, want ErrNoDevice", err)
	}
	if _, err := NewUploaderFromProvider(nil); !errors.Is(err, ErrNoDevice) {
		t.Errorf("NewUploaderFromProvider(nil) = %v, want ErrNoDevice", err)
	}
}
