package profiler

// SettingsFor exposes settingsFor to tests.
func (c *Composite) SettingsFor(i int, settings ScenarioSettings) ScenarioSettings {
	return c.settingsFor(i, settings)
}
