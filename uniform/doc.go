// Package uniform uploads std140 values into GPU uniform buffers through the
// wgpu HAL.
//
// An Uploader wraps a hal.Device and hal.Queue, either passed directly or
// taken from a gpucontext.DeviceProvider:
//
//	up := uniform.NewUploader(device, queue)
//	buf, err := up.Create("camera", block)
//	...
//	_ = block.Set("time", std140.Float(t))
//	err = up.Write(buf, 0, block)
//
// LayoutEntry and CheckLimits describe and validate the binding side, and
// PackDynamic places several values at dynamic-offset boundaries of one
// buffer.
package uniform
