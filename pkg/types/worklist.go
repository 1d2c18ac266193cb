package types

// Archive paths mandated by the VPK format
const (
	// MetadataDestination is where the param.sfo metadata file lives
	MetadataDestination Destination = "sce_sys/param.sfo"

	// ExecutableDestination is where the executable lives
	ExecutableDestination Destination = "eboot.bin"

	// DefaultOutputFile is used when no output path is given
	DefaultOutputFile = "output.vpk"
)

// WorklistEntry binds one existing source path to its path inside the archive
type WorklistEntry struct {
	// Source is a filesystem path, checked to exist when the entry was built
	Source string `json:"source"`

	// Destination is the entry name inside the archive
	Destination Destination `json:"destination"`
}

// Worklist is the ordered list of entries to write. The metadata and
// executable entries are always first, followed by extra entries in the
// order they were given.
type Worklist []WorklistEntry

// Destinations returns the archive paths in worklist order
func (w Worklist) Destinations() []string {
	out := make([]string, len(w))
	for i, e := range w {
		out[i] = e.Destination.String()
	}
	return out
}

// Extras returns the user-specified entries after the two mandatory ones
func (w Worklist) Extras() Worklist {
	if len(w) <= 2 {
		return nil
	}
	return w[2:]
}
