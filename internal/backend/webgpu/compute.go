package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// compileShader compiles WGSL shader code into a ShaderModule.
// Results are cached in the Backend's shaders map.
func (b *Backend) compileShader(name, code string) *wgpu.ShaderModule {
	b.mu.RLock()
	if shader, exists := b.shaders[name]; exists {
		b.mu.RUnlock()
		return shader
	}
	b.mu.RUnlock()

	shader := b.device.CreateShaderModuleWGSL(code)

	b.mu.Lock()
	b.shaders[name] = shader
	b.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (b *Backend) getOrCreatePipeline(name string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	b.mu.RLock()
	if pipeline, exists := b.pipelines[name]; exists {
		b.mu.RUnlock()
		return pipeline
	}
	b.mu.RUnlock()

	pipeline := b.device.CreateComputePipelineSimple(nil, shader, "main")

	b.mu.Lock()
	b.pipelines[name] = pipeline
	b.mu.Unlock()

	return pipeline
}

// createBuffer creates a GPU buffer and uploads initial data.
func (b *Backend) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))
	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	mappedPtr := buffer.GetMappedRange(0, size)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()
	return buffer
}

// createUniformBuffer creates a 16-byte aligned uniform buffer.
func (b *Backend) createUniformBuffer(data []byte) *wgpu.Buffer {
	size := uint64(len(data))
	alignedSize := (size + 15) &^ 15
	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:             alignedSize,
		MappedAtCreation: wgpu.True,
	})
	mappedPtr := buffer.GetMappedRange(0, alignedSize)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), alignedSize)
	copy(mappedSlice, data)
	buffer.Unmap()
	return buffer
}

// readBuffer reads data back from a GPU buffer through a staging buffer.
func (b *Backend) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	stagingBuffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	err := stagingBuffer.MapAsync(b.device, wgpu.MapModeRead, 0, size)
	if err != nil {
		return nil, fmt.Errorf("failed to map staging buffer: %w", err)
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)
	stagingBuffer.Unmap()

	return result, nil
}

// uploadMatrix uploads a complex matrix as interleaved f32 pairs.
func (b *Backend) uploadMatrix(matrix []complex128) (*wgpu.Buffer, error) {
	return b.createBuffer(complexToBytes(matrix), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc), nil
}

// dispatchGate runs the gate-application shader over one state vector.
func (b *Backend) dispatchGate(state []complex128, wires []int, gateBuf *wgpu.Buffer, adjoint bool) error {
	k := len(wires)
	if k > maxGateWires {
		return fmt.Errorf("webgpu: gates larger than %d wires are not supported, got %d", maxGateWires, k)
	}
	dim := 1 << k
	nBases := len(state) >> k

	// meta: k ascending bit positions, then dim amplitude offsets.
	sorted := make([]int, k)
	copy(sorted, wires)
	for i := 1; i < k; i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	meta := make([]byte, 4*(k+dim))
	for j, bit := range sorted {
		binary.LittleEndian.PutUint32(meta[4*j:], uint32(bit))
	}
	for p := 0; p < dim; p++ {
		o := 0
		for j, bit := range wires {
			if p>>(k-1-j)&1 == 1 {
				o |= 1 << bit
			}
		}
		binary.LittleEndian.PutUint32(meta[4*(k+p):], uint32(o))
	}

	shader := b.compileShader("applyGate", applyGateShader)
	pipeline := b.getOrCreatePipeline("applyGate", shader)

	stateBytes := complexToBytes(state)
	stateSize := uint64(len(stateBytes))
	bufferState := b.createBuffer(stateBytes, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc|wgpu.BufferUsageCopyDst)
	defer bufferState.Release()

	bufferMeta := b.createBuffer(meta, wgpu.BufferUsageStorage)
	defer bufferMeta.Release()

	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], uint32(nBases))
	binary.LittleEndian.PutUint32(params[4:8], uint32(k))
	binary.LittleEndian.PutUint32(params[8:12], uint32(dim))
	if adjoint {
		binary.LittleEndian.PutUint32(params[12:16], 1)
	}
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	gateSize := uint64(8 * dim * dim) // interleaved f32 pairs
	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferState, 0, stateSize),
		wgpu.BufferBindingEntry(1, gateBuf, 0, gateSize),
		wgpu.BufferBindingEntry(2, bufferMeta, 0, uint64(len(meta))),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	workgroups := uint32((nBases + workgroupSize - 1) / workgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()
	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	resultData, err := b.readBuffer(bufferState, stateSize)
	if err != nil {
		return err
	}
	bytesToComplex(resultData, state)
	return nil
}

// complexToBytes flattens complex amplitudes to interleaved f32 pairs.
func complexToBytes(data []complex128) []byte {
	out := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(out[8*i:], math.Float32bits(float32(real(v))))
		binary.LittleEndian.PutUint32(out[8*i+4:], math.Float32bits(float32(imag(v))))
	}
	return out
}

// bytesToComplex unpacks interleaved f32 pairs into complex amplitudes.
func bytesToComplex(raw []byte, out []complex128) {
	for i := range out {
		re := math.Float32frombits(binary.LittleEndian.Uint32(raw[8*i:]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(raw[8*i+4:]))
		out[i] = complex(float64(re), float64(im))
	}
}
