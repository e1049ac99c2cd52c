package prefilter

import "golang.org/x/sys/cpu"

// hasSSE42 hints whether the host CPU advertises SSE4.2, the instruction set
// most platform string libraries (including the runtime's own IndexByte) use
// to vectorize byte search. No assembly lives in this package; the flag only
// chooses between relying on bytes.Index's vectorized fast path and a
// conservative scalar scan on CPUs where that fast path is unavailable.
var hasSSE42 = cpu.X86.HasSSE42
