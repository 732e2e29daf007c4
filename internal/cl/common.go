package cl

// CommonDefines returns the type prologue shared by generated kernels. FLT and
// FLT4 are the storage element types; accumulation always happens in float.
func CommonDefines(p Precision) string {
	switch p {
	case PrecisionF16:
		return `#pragma OPENCL EXTENSION cl_khr_fp16 : enable
#define FLT half
#define FLT4 half4
#define TO_FLT4 convert_half4
`
	default:
		return `#define FLT float
#define FLT4 float4
#define TO_FLT4 convert_float4
`
	}
}
