package view

// ControlKind identifies a pagination control descriptor.
type ControlKind string

// Control kinds emitted by Controls.
const (
	ControlPrev     ControlKind = "prev"
	ControlNext     ControlKind = "next"
	ControlFirst    ControlKind = "first"
	ControlLast     ControlKind = "last"
	ControlPage     ControlKind = "page"
	ControlEllipsis ControlKind = "ellipsis"
)

// Control is a plain descriptor for one pagination control. The
// presentation layer binds behavior to these structurally instead of the
// engine emitting any markup.
type Control struct {
	Kind     ControlKind `json:"kind" yaml:"kind"`
	Target   int         `json:"target,omitempty" yaml:"target,omitempty"`
	Disabled bool        `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Active   bool        `json:"active,omitempty" yaml:"active,omitempty"`
}

// Controls derives the pagination control strip for the current page:
// prev/next at the edges (disabled at the bounds), a numbered window of
// up to two pages either side of the current one, and jump-to-first /
// jump-to-last shortcuts with ellipsis markers when the window does not
// touch the ends. Returns nil when there are no pages at all.
func Controls(page, totalPages int) []Control {
	if totalPages <= 0 {
		return nil
	}
	page = ClampPage(page, totalPages)

	prevTarget := page - 1
	if prevTarget < 1 {
		prevTarget = 1
	}
	controls := []Control{{Kind: ControlPrev, Target: prevTarget, Disabled: page == 1}}

	start := page - 2
	if start < 1 {
		start = 1
	}
	end := page + 2
	if end > totalPages {
		end = totalPages
	}

	if start > 1 {
		controls = append(controls, Control{Kind: ControlFirst, Target: 1})
		if start > 2 {
			controls = append(controls, Control{Kind: ControlEllipsis})
		}
	}

	for i := start; i <= end; i++ {
		controls = append(controls, Control{Kind: ControlPage, Target: i, Active: i == page})
	}

	if end < totalPages {
		if end < totalPages-1 {
			controls = append(controls, Control{Kind: ControlEllipsis})
		}
		controls = append(controls, Control{Kind: ControlLast, Target: totalPages})
	}

	nextTarget := page + 1
	if nextTarget > totalPages {
		nextTarget = totalPages
	}
	controls = append(controls, Control{Kind: ControlNext, Target: nextTarget, Disabled: page == totalPages})

	return controls
}
