package main

// editorRequest holds a command's --edit and --no-edit flags.
type editorRequest struct {
	force bool
	skip  bool
}

// open reports whether to open $EDITOR. An explicit flag decides, with
// --edit beating --no-edit. Otherwise the editor opens only in an interactive
// session where no todo fields came from the command line.
func (r editorRequest) open(fieldsGiven, interactive bool) bool {
	switch {
	case r.force:
		return true
	case r.skip:
		return false
	default:
		return !fieldsGiven && interactive
	}
}
