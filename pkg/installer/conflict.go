package installer

import (
	"github.com/devops-template/devopstemplate/pkg/types"
)

// Decision is the three-way outcome of a conflict check. Skip is an expected,
// non-error control path; it is returned by value rather than signalled
// through error propagation.
type Decision int

const (
	// Proceed means the write may go ahead
	Proceed Decision = iota
	// Skip means the target exists and the session asks to leave it alone
	Skip
	// Fail means the target exists and neither skip nor overwrite applies
	Fail
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case Skip:
		return "skip"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// CheckTarget decides whether a write to path proceeds, is skipped, or fails.
// The ordering makes skip win over a simultaneous overwrite request.
func CheckTarget(fsys types.FS, path string, sess Session) Decision {
	if _, err := fsys.Stat(path); err != nil {
		return Proceed
	}
	if sess.Skip {
		return Skip
	}
	if !sess.Overwrite {
		return Fail
	}
	return Proceed
}
