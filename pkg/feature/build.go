package feature

// NeedsRebuild reports whether the renderer must rebuild its representation
// because data or style changed since the last MarkBuilt.
func (c *FeatureCore) NeedsRebuild() bool {
	build := c.buildTime.Stamp()
	return c.dataTime.Stamp() > build || c.style.Stamp() > build
}

// NeedsUpdate reports whether the feature's own visual properties changed
// since the last MarkUpdated.
func (c *FeatureCore) NeedsUpdate() bool {
	return c.modified.Stamp() > c.updateTime.Stamp()
}

// MarkBuilt records that the renderer finished a rebuild pass.
func (c *FeatureCore) MarkBuilt() {
	c.buildTime.Modified()
}

// MarkUpdated records that the renderer finished an update pass.
func (c *FeatureCore) MarkUpdated() {
	c.updateTime.Modified()
}

// BuildStamp returns the stamp of the last MarkBuilt.
func (c *FeatureCore) BuildStamp() Stamp { return c.buildTime.Stamp() }

// UpdateStamp returns the stamp of the last MarkUpdated.
func (c *FeatureCore) UpdateStamp() Stamp { return c.updateTime.Stamp() }
