// Package worklist turns the raw strings supplied on the command line into
// the ordered list of (source, destination) bindings that the archive
// assembler writes.
//
// The first two entries are always the metadata file bound to
// sce_sys/param.sfo and the executable bound to eboot.bin. Every extra
// src=dst token follows in the order given, split on its first '='.
//
// Every source is checked to exist (file or directory) when its entry is
// built. The first missing source aborts the build with a MISSING_INPUT
// error and no partial worklist is returned.
package worklist
