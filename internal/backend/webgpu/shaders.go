// Package webgpu provides the embedded WGSL compute shader for gate application.
package webgpu

// workgroupSize is the number of threads per workgroup.
const workgroupSize = 256

// maxGateWires bounds the gate size the shader can apply; the largest
// supported gate family (DoubleExcitation) spans four wires.
const maxGateWires = 4

// applyGateShader applies a 2^k x 2^k complex matrix to a state vector.
// Amplitudes and matrix entries are interleaved (re, im) f32 pairs. The
// meta buffer holds k ascending bit positions followed by 2^k amplitude
// offsets, one per sub-index pattern. Each invocation owns one base index
// (all selected bits zero), so writes never overlap.
const applyGateShader = `
@group(0) @binding(0) var<storage, read_write> state: array<f32>;
@group(0) @binding(1) var<storage, read> gate: array<f32>;
@group(0) @binding(2) var<storage, read> meta: array<u32>;

struct Params {
    n_bases: u32,
    k: u32,
    dim: u32,
    adjoint: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let t = global_id.x;
    if (t >= params.n_bases) {
        return;
    }

    // Spread t across the index space, leaving zeros at the gate bits.
    var base = t;
    for (var j = 0u; j < params.k; j = j + 1u) {
        let b = meta[j];
        let low = base & ((1u << b) - 1u);
        base = ((base >> b) << (b + 1u)) | low;
    }

    var re: array<f32, 16>;
    var im: array<f32, 16>;
    for (var p = 0u; p < params.dim; p = p + 1u) {
        let idx = base | meta[params.k + p];
        re[p] = state[2u * idx];
        im[p] = state[2u * idx + 1u];
    }

    for (var r = 0u; r < params.dim; r = r + 1u) {
        var acc_re = 0.0;
        var acc_im = 0.0;
        for (var c = 0u; c < params.dim; c = c + 1u) {
            var m_re: f32;
            var m_im: f32;
            if (params.adjoint == 1u) {
                m_re = gate[2u * (c * params.dim + r)];
                m_im = -gate[2u * (c * params.dim + r) + 1u];
            } else {
                m_re = gate[2u * (r * params.dim + c)];
                m_im = gate[2u * (r * params.dim + c) + 1u];
            }
            acc_re = acc_re + m_re * re[c] - m_im * im[c];
            acc_im = acc_im + m_re * im[c] + m_im * re[c];
        }
        let idx = base | meta[params.k + r];
        state[2u * idx] = acc_re;
        state[2u * idx + 1u] = acc_im;
    }
}
`
