// Package sink delivers rendered PNG icons to their destination.
//
// A [Sink] receives the encoded bytes of one icon together with the icon's
// path relative to the walk root and reports where the result went.
//
// Available sinks:
//
//   - [FileSink]: mirrors the source tree under an output directory,
//     replacing the extension with .png
//   - [MemorySink]: keeps outputs in memory in arrival order
//   - [Discard]: accepts everything and writes nothing (dry runs)
//
// All sinks are safe for concurrent use.
package sink
