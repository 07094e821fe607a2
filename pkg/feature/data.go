package feature

import "fmt"

// SetData replaces the element sequence.
//
// The slice is copied; later changes to data are not seen by the feature.
// Element indices returned by earlier queries are invalidated.
func (c *FeatureCore) SetData(data []any) {
	c.data = append([]any(nil), data...)
	c.positions = nil
	c.dataTime.Modified()
	c.modified.Modified()
}

// Data returns a copy of the element sequence.
func (c *FeatureCore) Data() []any {
	return append([]any(nil), c.data...)
}

// Len returns the number of elements.
func (c *FeatureCore) Len() int {
	return len(c.data)
}

// Datum returns the element at index.
func (c *FeatureCore) Datum(index int) (any, error) {
	if index < 0 || index >= len(c.data) {
		return nil, &IndexRangeError{Index: index, Len: len(c.data)}
	}
	return c.data[index], nil
}

// SetPositions replaces the element sequence with raw positions.
//
// Each element's datum is its Point. Until the next SetData the raw
// positions are used as is and the position style is not consulted.
func (c *FeatureCore) SetPositions(positions []Point) {
	data := make([]any, len(positions))
	for i, p := range positions {
		data[i] = p
	}
	c.data = data
	c.positions = append(make([]Point, 0, len(positions)), positions...)
	c.dataTime.Modified()
	c.modified.Modified()
}

// Positions resolves the position property for every element.
func (c *FeatureCore) Positions() ([]Point, error) {
	positions := make([]Point, len(c.data))
	for i, d := range c.data {
		p, err := c.position(d, i)
		if err != nil {
			return nil, fmt.Errorf("resolve positions: %w", err)
		}
		positions[i] = p
	}
	return positions, nil
}

// position returns the world position of element i.
func (c *FeatureCore) position(d any, i int) (Point, error) {
	if c.positions != nil {
		return c.positions[i], nil
	}
	return c.style.ResolvePoint(StylePosition, d, i)
}

// Extent returns the world bounding box of all finite element positions.
// ok is false when there is no finite position.
func (c *FeatureCore) Extent() (bounds Bounds, ok bool, err error) {
	positions, err := c.Positions()
	if err != nil {
		return Bounds{}, false, err
	}
	bounds, ok = pointsBounds(positions)
	return bounds, ok, nil
}
