// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the hioload-slab library: the Buffer handle returned
// to callers, the Pool and Allocator interfaces, the tier enumeration, the
// error taxonomy, and the statistics DTOs. Implementations live in the pool
// and facade packages.
package api
