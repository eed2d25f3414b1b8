package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Uniform buffer errors.
var (
	// ErrNoHALDevice is returned when the provider does not expose HAL
	// device and queue handles.
	ErrNoHALDevice = errors.New("gpu: provider does not expose HAL device and queue")

	// ErrBufferDestroyed is returned when writing to a destroyed buffer.
	ErrBufferDestroyed = errors.New("gpu: uniform buffer has been destroyed")

	// ErrSizeMismatch is returned when data exceeds the buffer size.
	ErrSizeMismatch = errors.New("gpu: data exceeds uniform buffer size")
)

// halFrom extracts HAL device and queue handles from a shared-device
// provider. The provider must expose HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue (the gpucontext HAL provider
// convention).
func halFrom(provider any) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALDevice)
	}
	return device, queue, nil
}

// UniformBuffer owns a GPU-side uniform buffer holding renderer-wide
// shader inputs such as the projection matrix. The buffer is created once
// and rewritten in place every frame.
type UniformBuffer struct {
	device hal.Device
	queue  hal.Queue
	buf    hal.Buffer
	size   uint64
}

// NewUniformBuffer creates a uniform buffer of the given size on the
// provider's shared GPU device.
func NewUniformBuffer(provider any, label string, size uint64) (*UniformBuffer, error) {
	device, queue, err := halFrom(provider)
	if err != nil {
		return nil, err
	}

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform buffer %q: %w", label, err)
	}

	return &UniformBuffer{device: device, queue: queue, buf: buf, size: size}, nil
}

// Write uploads data to the buffer at offset zero.
func (u *UniformBuffer) Write(data []byte) error {
	if u.buf == nil {
		return ErrBufferDestroyed
	}
	if uint64(len(data)) > u.size {
		return fmt.Errorf("%w: %d > %d", ErrSizeMismatch, len(data), u.size)
	}
	u.queue.WriteBuffer(u.buf, 0, data)
	return nil
}

// Size returns the buffer size in bytes.
func (u *UniformBuffer) Size() uint64 {
	return u.size
}

// Raw returns the underlying buffer handle for bind group creation.
// Returns nil if the buffer has been destroyed.
func (u *UniformBuffer) Raw() hal.Buffer {
	return u.buf
}

// Destroy releases the GPU buffer. The shared device is left untouched;
// it belongs to the host.
func (u *UniformBuffer) Destroy() {
	if u.buf != nil {
		u.device.DestroyBuffer(u.buf)
		u.buf = nil
	}
}
