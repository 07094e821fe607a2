package feature

import (
	"github.com/google/uuid"
)

// Queryable is implemented by features that support hit-testing.
type Queryable interface {
	// PointSearch returns the elements whose footprint covers a display point.
	PointSearch(display Point) (PickResult, error)

	// BoxSearch returns the indices of elements positioned inside a world box.
	BoxSearch(lowerLeft, upperRight Point) ([]int, error)
}

// Buildable is implemented by features an external renderer draws.
//
// The renderer calls NeedsRebuild and NeedsUpdate every frame, pulls data and
// resolved styles when either is true, and then calls MarkBuilt or MarkUpdated.
type Buildable interface {
	NeedsRebuild() bool
	NeedsUpdate() bool
	MarkBuilt()
	MarkUpdated()
}

// FeatureCore holds the state shared by every feature kind: modification
// stamps, the style table and the element sequence.
//
// A FeatureCore is not safe for concurrent use.
type FeatureCore struct {
	id   uuid.UUID
	kind string
	opts Options
	log  *Logger

	modified   Timestamp // visual properties owned by the feature itself
	dataTime   Timestamp
	buildTime  Timestamp
	updateTime Timestamp

	style *StyleTable
	data  []any

	// positions is non-nil after SetPositions and then takes the place of
	// the position style.
	positions []Point

	// geometryProps are style properties that move or resize elements.
	// Setting one also marks the data modified.
	geometryProps map[string]bool

	visible bool
	bin     int
}

func newFeatureCore(kind string, opts Options, geometryProps ...string) *FeatureCore {
	opts = opts.withDefaults()

	c := &FeatureCore{
		id:            uuid.New(),
		kind:          kind,
		opts:          opts,
		modified:      NewTimestamp(opts.Clock),
		dataTime:      NewTimestamp(opts.Clock),
		buildTime:     NewTimestamp(opts.Clock),
		updateTime:    NewTimestamp(opts.Clock),
		style:         NewStyleTable(opts.Clock),
		geometryProps: make(map[string]bool, len(geometryProps)),
		visible:       true,
	}
	for _, name := range geometryProps {
		c.geometryProps[name] = true
	}
	c.log = opts.Logger.WithFeature(c.id.String(), kind)
	c.style.onSet = c.styleChanged

	return c
}

func (c *FeatureCore) styleChanged(name string) {
	if c.geometryProps[name] {
		c.dataTime.Modified()
	}
	c.modified.Modified()
}

// ID returns the unique feature identifier.
func (c *FeatureCore) ID() uuid.UUID { return c.id }

// Kind returns the feature kind, e.g. "point" or "line".
func (c *FeatureCore) Kind() string { return c.kind }

// Style returns the feature's style table.
func (c *FeatureCore) Style() *StyleTable { return c.style }

// SetStyle sets one style property. It is shorthand for Style().Set.
func (c *FeatureCore) SetStyle(name string, value StyleValue) {
	c.style.Set(name, value)
}

// Visible reports whether the renderer should draw the feature.
func (c *FeatureCore) Visible() bool { return c.visible }

// SetVisible shows or hides the feature. Only the update stamp is affected.
func (c *FeatureCore) SetVisible(visible bool) {
	c.visible = visible
	c.modified.Modified()
}

// Bin returns the draw-order bin.
func (c *FeatureCore) Bin() int { return c.bin }

// SetBin sets the draw-order bin. Only the update stamp is affected.
func (c *FeatureCore) SetBin(bin int) {
	c.bin = bin
	c.modified.Modified()
}

// Stamp returns the feature's own modification stamp.
func (c *FeatureCore) Stamp() Stamp { return c.modified.Stamp() }

// DataStamp returns the stamp of the last data assignment.
func (c *FeatureCore) DataStamp() Stamp { return c.dataTime.Stamp() }

// StyleStamp returns the stamp of the last style change.
func (c *FeatureCore) StyleStamp() Stamp { return c.style.Stamp() }
