package model

// FileReport is the per-input accounting for one processed file.
type FileReport struct {
	File  string
	Units int   // lines or records emitted, depending on mode
	Err   error // non-nil when the file was skipped
}

// Skipped reports whether the file produced no output because of an error.
func (r FileReport) Skipped() bool {
	return r.Err != nil
}
