package tinsel

import "github.com/tinselkit/tinsel/internal/catalog"

// Handle is a 32-bit opaque value addressing a byte inside an archive:
// the high 7 bits select the archive, the low 25 bits are a byte offset
// into that archive's decompressed image.
type Handle = catalog.Handle

// NullHandle never resolves to anything; it terminates Frames lists and
// marks absent optional script/description references.
const NullHandle Handle = catalog.NullHandle
