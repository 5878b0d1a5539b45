package timegrid

// mode selects the extraction strategy.
type mode int

const (
	// modeAuto picks geometry for positioned sources and line for text.
	modeAuto mode = iota
	modeGeometry
	modeLine
)

// extractOptions holds configuration for section extraction.
type extractOptions struct {
	// Page selection (1-indexed; nil means all pages)
	pages []int

	// Strategy selection
	mode mode
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		pages: nil,
		mode:  modeAuto,
	}
}

// clone creates a deep copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	newOpts := extractOptions{
		mode: o.mode,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
